package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-platform/internal/domain"
)

// DossierRepository encapsulates dossier persistence. FindFirstByEmployee is
// the lookup behind the upsert; first match wins when duplicates exist.
type DossierRepository interface {
	Create(ctx context.Context, dossier *domain.Dossier) error
	UpdateBeneficiary(ctx context.Context, id, beneficiaryID int64) (*domain.Dossier, error)
	GetByID(ctx context.Context, id int64) (*domain.Dossier, error)
	FindFirstByEmployee(ctx context.Context, employeeID int64) (*domain.Dossier, error)
}

type dossierRepository struct {
	pool *pgxpool.Pool
}

// NewDossierRepository returns a Postgres-backed implementation.
func NewDossierRepository(pool *pgxpool.Pool) DossierRepository {
	return &dossierRepository{pool: pool}
}

func (r *dossierRepository) Create(ctx context.Context, dossier *domain.Dossier) error {
	const query = `
        INSERT INTO dossiers (employee_id, beneficiary_id)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query, dossier.EmployeeID, dossier.BeneficiaryID).
		Scan(&dossier.ID, &dossier.CreatedAt, &dossier.UpdatedAt)
}

func (r *dossierRepository) UpdateBeneficiary(ctx context.Context, id, beneficiaryID int64) (*domain.Dossier, error) {
	const query = `
        UPDATE dossiers SET beneficiary_id=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING id, employee_id, beneficiary_id, created_at, updated_at`

	return r.scanOne(r.pool.QueryRow(ctx, query, beneficiaryID, id))
}

func (r *dossierRepository) GetByID(ctx context.Context, id int64) (*domain.Dossier, error) {
	const query = `
        SELECT id, employee_id, beneficiary_id, created_at, updated_at
        FROM dossiers WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *dossierRepository) FindFirstByEmployee(ctx context.Context, employeeID int64) (*domain.Dossier, error) {
	const query = `
        SELECT id, employee_id, beneficiary_id, created_at, updated_at
        FROM dossiers WHERE employee_id=$1 ORDER BY id LIMIT 1`

	return r.scanOne(r.pool.QueryRow(ctx, query, employeeID))
}

func (r *dossierRepository) scanOne(row pgx.Row) (*domain.Dossier, error) {
	var dossier domain.Dossier
	if err := row.Scan(
		&dossier.ID,
		&dossier.EmployeeID,
		&dossier.BeneficiaryID,
		&dossier.CreatedAt,
		&dossier.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &dossier, nil
}
