package repository

import "github.com/jackc/pgx/v5/pgxpool"

// Set bundles every repository a binary may wire. With a nil pool the set
// falls back to the in-memory variants, mirroring how the servers start
// without a POSTGRES_DSN.
type Set struct {
	Employees     EmployeeRepository
	Beneficiaries BeneficiaryRepository
	Counselors    CounselorRepository
	Companies     CompanyRepository
	Dossiers      DossierRepository
}

// NewSet builds a repository set over the given pool.
func NewSet(pool *pgxpool.Pool) Set {
	if pool == nil {
		return Set{
			Employees:     NewMemoryEmployeeRepository(),
			Beneficiaries: NewMemoryBeneficiaryRepository(),
			Counselors:    NewMemoryCounselorRepository(),
			Companies:     NewMemoryCompanyRepository(),
			Dossiers:      NewMemoryDossierRepository(),
		}
	}
	return Set{
		Employees:     NewEmployeeRepository(pool),
		Beneficiaries: NewBeneficiaryRepository(pool),
		Counselors:    NewCounselorRepository(pool),
		Companies:     NewCompanyRepository(pool),
		Dossiers:      NewDossierRepository(pool),
	}
}
