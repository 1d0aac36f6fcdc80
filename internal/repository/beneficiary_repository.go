package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-platform/internal/domain"
)

// BeneficiaryRepository encapsulates beneficiary persistence.
type BeneficiaryRepository interface {
	Create(ctx context.Context, beneficiary *domain.Beneficiary) error
	Update(ctx context.Context, beneficiary *domain.Beneficiary) error
	GetByID(ctx context.Context, id int64) (*domain.Beneficiary, error)
	Delete(ctx context.Context, id int64) (*domain.Beneficiary, error)
}

type beneficiaryRepository struct {
	pool *pgxpool.Pool
}

// NewBeneficiaryRepository returns a Postgres-backed implementation.
func NewBeneficiaryRepository(pool *pgxpool.Pool) BeneficiaryRepository {
	return &beneficiaryRepository{pool: pool}
}

func (r *beneficiaryRepository) Create(ctx context.Context, beneficiary *domain.Beneficiary) error {
	const query = `
        INSERT INTO beneficiaries (name)
        VALUES ($1)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query, beneficiary.Name).
		Scan(&beneficiary.ID, &beneficiary.CreatedAt, &beneficiary.UpdatedAt)
}

func (r *beneficiaryRepository) Update(ctx context.Context, beneficiary *domain.Beneficiary) error {
	const query = `
        UPDATE beneficiaries SET name=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query, beneficiary.Name, beneficiary.ID).
		Scan(&beneficiary.CreatedAt, &beneficiary.UpdatedAt)
}

func (r *beneficiaryRepository) GetByID(ctx context.Context, id int64) (*domain.Beneficiary, error) {
	const query = `
        SELECT id, name, created_at, updated_at
        FROM beneficiaries WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *beneficiaryRepository) Delete(ctx context.Context, id int64) (*domain.Beneficiary, error) {
	const query = `
        DELETE FROM beneficiaries WHERE id=$1
        RETURNING id, name, created_at, updated_at`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *beneficiaryRepository) scanOne(row pgx.Row) (*domain.Beneficiary, error) {
	var beneficiary domain.Beneficiary
	if err := row.Scan(
		&beneficiary.ID,
		&beneficiary.Name,
		&beneficiary.CreatedAt,
		&beneficiary.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &beneficiary, nil
}
