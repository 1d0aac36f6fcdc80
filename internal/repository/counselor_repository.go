package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-platform/internal/domain"
)

// CounselorRepository persists HR counselor records. Only the write path is
// exercised by the orchestration workflow.
type CounselorRepository interface {
	Create(ctx context.Context, counselor *domain.Counselor) error
}

// CompanyRepository persists insurance company records.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
}

type counselorRepository struct {
	pool *pgxpool.Pool
}

// NewCounselorRepository returns a Postgres-backed implementation.
func NewCounselorRepository(pool *pgxpool.Pool) CounselorRepository {
	return &counselorRepository{pool: pool}
}

func (r *counselorRepository) Create(ctx context.Context, counselor *domain.Counselor) error {
	const query = `INSERT INTO counselors (id, name) VALUES ($1, $2)`
	_, err := r.pool.Exec(ctx, query, counselor.ID, counselor.Name)
	return err
}

type companyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository returns a Postgres-backed implementation.
func NewCompanyRepository(pool *pgxpool.Pool) CompanyRepository {
	return &companyRepository{pool: pool}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	const query = `INSERT INTO companies (id, name) VALUES ($1, $2)`
	_, err := r.pool.Exec(ctx, query, company.ID, company.Name)
	return err
}
