package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-platform/internal/domain"
	"github.com/spec-kit/hr-platform/internal/repository"
	"github.com/spec-kit/hr-platform/pkg/util"
)

// EmployeeCreateInput describes employee creation payload.
type EmployeeCreateInput struct {
	Name    string
	Address string
	Email   string
	SSN     string
}

// EmployeeUpdateInput describes a partial employee update; nil fields keep
// their stored value.
type EmployeeUpdateInput struct {
	Name          *string
	Address       *string
	Email         *string
	SSN           *string
	Authenticated *bool
}

// RegistryService owns employee and counselor records.
type RegistryService struct {
	employees  repository.EmployeeRepository
	counselors repository.CounselorRepository
}

// NewRegistryService constructs the service.
func NewRegistryService(employees repository.EmployeeRepository, counselors repository.CounselorRepository) *RegistryService {
	return &RegistryService{employees: employees, counselors: counselors}
}

// CreateEmployee registers a new employee with the authenticated flag down.
// Email uniqueness is checked first; the window between check and insert is
// closed by the store's unique constraint, not here.
func (s *RegistryService) CreateEmployee(ctx context.Context, input EmployeeCreateInput) (*domain.Employee, error) {
	if _, err := s.employees.GetByEmail(ctx, input.Email); err == nil {
		return nil, util.NewConflict("email already in use", map[string]any{"email": input.Email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	employee := &domain.Employee{
		Name:    input.Name,
		Address: input.Address,
		Email:   input.Email,
		SSN:     input.SSN,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// ListEmployees returns every employee record.
func (s *RegistryService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

// GetEmployee fetches one employee by identifier.
func (s *RegistryService) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

// UpdateEmployee applies a partial update over the stored record.
func (s *RegistryService) UpdateEmployee(ctx context.Context, id int64, input EmployeeUpdateInput) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Address != nil {
		employee.Address = *input.Address
	}
	if input.Email != nil {
		employee.Email = *input.Email
	}
	if input.SSN != nil {
		employee.SSN = *input.SSN
	}
	if input.Authenticated != nil {
		employee.Authenticated = *input.Authenticated
	}

	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// SetAuthenticated flips the authenticated flag.
func (s *RegistryService) SetAuthenticated(ctx context.Context, id int64, authenticated bool) (*domain.Employee, error) {
	return s.employees.SetAuthenticated(ctx, id, authenticated)
}

// DeleteEmployee removes an employee and returns the deleted record.
func (s *RegistryService) DeleteEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.employees.Delete(ctx, id)
}

// CreateCounselor stores an HR counselor.
func (s *RegistryService) CreateCounselor(ctx context.Context, id, name string) (*domain.Counselor, error) {
	counselor := &domain.Counselor{ID: id, Name: name}
	if err := s.counselors.Create(ctx, counselor); err != nil {
		return nil, err
	}
	return counselor, nil
}
