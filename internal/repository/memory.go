package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-platform/internal/domain"
)

// In-memory implementations back the services when no Postgres DSN is
// configured and carry the unit tests. They return pgx.ErrNoRows for missing
// rows so the services see the same sentinel as the Postgres variants.

type MemoryEmployeeRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Employee
}

func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{nextID: 1, rows: make(map[int64]domain.Employee)}
}

func (r *MemoryEmployeeRepository) Create(_ context.Context, employee *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	employee.ID = r.nextID
	r.nextID++
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = employee.CreatedAt
	r.rows[employee.ID] = *employee
	return nil
}

// Seed inserts a record with a caller-chosen identifier. Test helper.
func (r *MemoryEmployeeRepository) Seed(employee domain.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if employee.ID >= r.nextID {
		r.nextID = employee.ID + 1
	}
	r.rows[employee.ID] = employee
}

func (r *MemoryEmployeeRepository) Update(_ context.Context, employee *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[employee.ID]; !ok {
		return pgx.ErrNoRows
	}
	employee.UpdatedAt = time.Now()
	r.rows[employee.ID] = *employee
	return nil
}

func (r *MemoryEmployeeRepository) SetAuthenticated(_ context.Context, id int64, authenticated bool) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	row.Authenticated = authenticated
	row.UpdatedAt = time.Now()
	r.rows[id] = row
	return &row, nil
}

func (r *MemoryEmployeeRepository) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &row, nil
}

func (r *MemoryEmployeeRepository) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Email == email {
			row := row
			return &row, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *MemoryEmployeeRepository) List(_ context.Context) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Employee, 0, len(r.rows))
	for _, row := range r.rows {
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *MemoryEmployeeRepository) Delete(_ context.Context, id int64) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(r.rows, id)
	return &row, nil
}

type MemoryBeneficiaryRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Beneficiary
}

func NewMemoryBeneficiaryRepository() *MemoryBeneficiaryRepository {
	return &MemoryBeneficiaryRepository{nextID: 1, rows: make(map[int64]domain.Beneficiary)}
}

func (r *MemoryBeneficiaryRepository) Create(_ context.Context, beneficiary *domain.Beneficiary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	beneficiary.ID = r.nextID
	r.nextID++
	beneficiary.CreatedAt = time.Now()
	beneficiary.UpdatedAt = beneficiary.CreatedAt
	r.rows[beneficiary.ID] = *beneficiary
	return nil
}

func (r *MemoryBeneficiaryRepository) Update(_ context.Context, beneficiary *domain.Beneficiary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[beneficiary.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	beneficiary.CreatedAt = row.CreatedAt
	beneficiary.UpdatedAt = time.Now()
	r.rows[beneficiary.ID] = *beneficiary
	return nil
}

func (r *MemoryBeneficiaryRepository) GetByID(_ context.Context, id int64) (*domain.Beneficiary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &row, nil
}

func (r *MemoryBeneficiaryRepository) Delete(_ context.Context, id int64) (*domain.Beneficiary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(r.rows, id)
	return &row, nil
}

type MemoryCounselorRepository struct {
	mu   sync.Mutex
	rows map[string]domain.Counselor
}

func NewMemoryCounselorRepository() *MemoryCounselorRepository {
	return &MemoryCounselorRepository{rows: make(map[string]domain.Counselor)}
}

func (r *MemoryCounselorRepository) Create(_ context.Context, counselor *domain.Counselor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[counselor.ID] = *counselor
	return nil
}

type MemoryCompanyRepository struct {
	mu   sync.Mutex
	rows map[string]domain.Company
}

func NewMemoryCompanyRepository() *MemoryCompanyRepository {
	return &MemoryCompanyRepository{rows: make(map[string]domain.Company)}
}

func (r *MemoryCompanyRepository) Create(_ context.Context, company *domain.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[company.ID] = *company
	return nil
}

type MemoryDossierRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Dossier
}

func NewMemoryDossierRepository() *MemoryDossierRepository {
	return &MemoryDossierRepository{nextID: 1, rows: make(map[int64]domain.Dossier)}
}

func (r *MemoryDossierRepository) Create(_ context.Context, dossier *domain.Dossier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	dossier.ID = r.nextID
	r.nextID++
	dossier.CreatedAt = time.Now()
	dossier.UpdatedAt = dossier.CreatedAt
	r.rows[dossier.ID] = *dossier
	return nil
}

func (r *MemoryDossierRepository) UpdateBeneficiary(_ context.Context, id, beneficiaryID int64) (*domain.Dossier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	row.BeneficiaryID = beneficiaryID
	row.UpdatedAt = time.Now()
	r.rows[id] = row
	return &row, nil
}

func (r *MemoryDossierRepository) GetByID(_ context.Context, id int64) (*domain.Dossier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &row, nil
}

func (r *MemoryDossierRepository) FindFirstByEmployee(_ context.Context, employeeID int64) (*domain.Dossier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var found *domain.Dossier
	for _, row := range r.rows {
		row := row
		if row.EmployeeID != employeeID {
			continue
		}
		if found == nil || row.ID < found.ID {
			found = &row
		}
	}
	if found == nil {
		return nil, pgx.ErrNoRows
	}
	return found, nil
}
