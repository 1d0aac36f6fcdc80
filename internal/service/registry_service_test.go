package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-platform/internal/repository"
	"github.com/spec-kit/hr-platform/pkg/util"
)

func newRegistryService() *RegistryService {
	return NewRegistryService(repository.NewMemoryEmployeeRepository(), repository.NewMemoryCounselorRepository())
}

func TestCreateEmployeeAssignsIDAndStartsUnauthenticated(t *testing.T) {
	svc := newRegistryService()

	employee, err := svc.CreateEmployee(context.Background(), EmployeeCreateInput{
		Name:    "A",
		Address: "B",
		Email:   "a@corp.local",
		SSN:     "123",
	})
	require.NoError(t, err)
	assert.NotZero(t, employee.ID)
	assert.False(t, employee.Authenticated)
}

func TestCreateEmployeeRejectsDuplicateEmail(t *testing.T) {
	svc := newRegistryService()
	ctx := context.Background()

	input := EmployeeCreateInput{Name: "A", Address: "B", Email: "a@corp.local", SSN: "123"}
	_, err := svc.CreateEmployee(ctx, input)
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, input)
	require.Error(t, err)
	domainErr := util.ToDomainError(err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, 409, domainErr.HTTPStatus)
}

func TestUpdateEmployeeAppliesOnlyProvidedFields(t *testing.T) {
	svc := newRegistryService()
	ctx := context.Background()

	employee, err := svc.CreateEmployee(ctx, EmployeeCreateInput{
		Name: "A", Address: "B", Email: "a@corp.local", SSN: "123",
	})
	require.NoError(t, err)

	newAddress := "C"
	updated, err := svc.UpdateEmployee(ctx, employee.ID, EmployeeUpdateInput{Address: &newAddress})
	require.NoError(t, err)
	assert.Equal(t, "C", updated.Address)
	assert.Equal(t, "A", updated.Name)
	assert.Equal(t, "a@corp.local", updated.Email)
}

func TestDeleteEmployeeReturnsDeletedRecord(t *testing.T) {
	svc := newRegistryService()
	ctx := context.Background()

	employee, err := svc.CreateEmployee(ctx, EmployeeCreateInput{
		Name: "A", Address: "B", Email: "a@corp.local", SSN: "123",
	})
	require.NoError(t, err)

	deleted, err := svc.DeleteEmployee(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.ID, deleted.ID)

	_, err = svc.GetEmployee(ctx, employee.ID)
	assert.Error(t, err)
}

func TestListEmployeesOrderedByID(t *testing.T) {
	svc := newRegistryService()
	ctx := context.Background()

	for _, email := range []string{"a@corp.local", "b@corp.local", "c@corp.local"} {
		_, err := svc.CreateEmployee(ctx, EmployeeCreateInput{Name: "N", Address: "A", Email: email, SSN: "1"})
		require.NoError(t, err)
	}

	employees, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 3)
	assert.Less(t, employees[0].ID, employees[1].ID)
	assert.Less(t, employees[1].ID, employees[2].ID)
}

func TestCreateCounselor(t *testing.T) {
	svc := newRegistryService()

	counselor, err := svc.CreateCounselor(context.Background(), "c-1", "Dana")
	require.NoError(t, err)
	assert.Equal(t, "c-1", counselor.ID)
	assert.Equal(t, "Dana", counselor.Name)
}
