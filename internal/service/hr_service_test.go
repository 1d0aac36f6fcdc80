package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-platform/internal/config"
	"github.com/spec-kit/hr-platform/internal/domain"
	"github.com/spec-kit/hr-platform/internal/outbox"
	"github.com/spec-kit/hr-platform/internal/remote"
	"github.com/spec-kit/hr-platform/internal/repository"
	"github.com/spec-kit/hr-platform/pkg/util"
)

type hrFixture struct {
	hr        *HRService
	employees *repository.MemoryEmployeeRepository
	queue     *outbox.MemoryQueue
	assoc     *AssociationService
	server    *httptest.Server
}

// newHRFixture wires an HR service against a live association collaborator
// served over loopback HTTP, the way the two processes talk in deployment.
func newHRFixture(t *testing.T) *hrFixture {
	t.Helper()

	assoc := NewAssociationService(repository.NewMemoryDossierRepository(), zap.NewNop())
	mux := http.NewServeMux()
	mux.HandleFunc("POST /associate", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			EmployeeID    int64 `json:"employeeId"`
			BeneficiaryID int64 `json:"beneficiaryId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		dossier, created, err := assoc.Associate(r.Context(), req.EmployeeID, req.BeneficiaryID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"dossier": dossier, "created": created})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	employees := repository.NewMemoryEmployeeRepository()
	queue := outbox.NewMemoryQueue(16)
	client := remote.NewClient(config.RemoteConfig{TimeoutSeconds: 2, Retries: 1}, zap.NewNop())

	hr := NewHRService(config.CollaboratorConfig{AssociationURL: server.URL}, HRDependencies{
		EmployeeRepo: employees,
		CompanyRepo:  repository.NewMemoryCompanyRepository(),
		Remote:       client,
		Outbox:       queue,
	}, zap.NewNop())

	return &hrFixture{hr: hr, employees: employees, queue: queue, assoc: assoc, server: server}
}

func seedEmployee(f *hrFixture, authenticated bool) domain.Employee {
	employee := domain.Employee{
		ID:            42,
		Name:          "A",
		Address:       "B",
		Email:         "a@corp.local",
		SSN:           "123",
		Authenticated: authenticated,
	}
	f.employees.Seed(employee)
	return employee
}

func TestVerifyIdentityMismatchLeavesFlagUnchanged(t *testing.T) {
	f := newHRFixture(t)
	seedEmployee(f, false)
	ctx := context.Background()

	cases := []VerifyInput{
		{EmployeeID: 42, Name: "X", Address: "B", SSN: "123"},
		{EmployeeID: 42, Name: "A", Address: "X", SSN: "123"},
		{EmployeeID: 42, Name: "A", Address: "B", SSN: "999"},
		{EmployeeID: 42, Name: "a", Address: "B", SSN: "123"}, // case-sensitive
		{EmployeeID: 7, Name: "A", Address: "B", SSN: "123"},  // unknown employee
	}
	for _, input := range cases {
		_, err := f.hr.VerifyIdentity(ctx, input)
		require.Error(t, err)
		assert.Equal(t, "IDENTITY_MISMATCH", util.ToDomainError(err).Code)
	}

	stored, err := f.employees.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.False(t, stored.Authenticated)
}

func TestVerifyIdentityMatchSetsFlagIdempotently(t *testing.T) {
	f := newHRFixture(t)
	seedEmployee(f, false)
	ctx := context.Background()

	input := VerifyInput{EmployeeID: 42, Name: "A", Address: "B", SSN: "123"}

	updated, err := f.hr.VerifyIdentity(ctx, input)
	require.NoError(t, err)
	assert.True(t, updated.Authenticated)

	// repeating keeps the flag true
	updated, err = f.hr.VerifyIdentity(ctx, input)
	require.NoError(t, err)
	assert.True(t, updated.Authenticated)
}

func TestCreateDossierForbiddenWhenNotAuthenticated(t *testing.T) {
	f := newHRFixture(t)
	seedEmployee(f, false)

	_, err := f.hr.CreateDossier(context.Background(), 42, 7)
	require.Error(t, err)
	assert.Equal(t, "NOT_AUTHENTICATED", util.ToDomainError(err).Code)
	assert.Zero(t, f.queue.Len(), "no side effect may be queued")
}

func TestCreateDossierForbiddenWhenEmployeeMissing(t *testing.T) {
	f := newHRFixture(t)

	_, err := f.hr.CreateDossier(context.Background(), 42, 7)
	require.Error(t, err)
	assert.Equal(t, "NOT_AUTHENTICATED", util.ToDomainError(err).Code)
}

func TestCreateDossierUpsertsAndQueuesSideEffect(t *testing.T) {
	f := newHRFixture(t)
	employee := seedEmployee(f, true)
	ctx := context.Background()

	result, err := f.hr.CreateDossier(ctx, 42, 7)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, int64(42), result.Dossier.EmployeeID)
	assert.Equal(t, int64(7), result.Dossier.BeneficiaryID)

	job, err := f.queue.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, result.Dossier.ID, job.DossierID)
	assert.Equal(t, employee.Email, job.Email)
	assert.NotEmpty(t, job.ID)
}

func TestCreateDossierRepeatUpdatesSameDossier(t *testing.T) {
	f := newHRFixture(t)
	seedEmployee(f, true)
	ctx := context.Background()

	first, err := f.hr.CreateDossier(ctx, 42, 7)
	require.NoError(t, err)

	second, err := f.hr.CreateDossier(ctx, 42, 9)
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Dossier.ID, second.Dossier.ID)
	assert.Equal(t, int64(9), second.Dossier.BeneficiaryID)
}

func TestCreateDossierSurfacesCollaboratorFailure(t *testing.T) {
	f := newHRFixture(t)
	seedEmployee(f, true)
	f.server.Close() // association collaborator goes away

	_, err := f.hr.CreateDossier(context.Background(), 42, 7)
	require.Error(t, err)
	assert.Equal(t, "REMOTE_CALL_FAILED", util.ToDomainError(err).Code)
	assert.Zero(t, f.queue.Len(), "no side effect after an aborted workflow")
}

func TestVerifyThenCreateDossierEndToEnd(t *testing.T) {
	f := newHRFixture(t)
	seedEmployee(f, false)
	ctx := context.Background()

	// unauthenticated employee cannot create a dossier
	_, err := f.hr.CreateDossier(ctx, 42, 7)
	require.Error(t, err)

	_, err = f.hr.VerifyIdentity(ctx, VerifyInput{EmployeeID: 42, Name: "A", Address: "B", SSN: "123"})
	require.NoError(t, err)

	first, err := f.hr.CreateDossier(ctx, 42, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), first.Dossier.BeneficiaryID)

	second, err := f.hr.CreateDossier(ctx, 42, 9)
	require.NoError(t, err)
	assert.Equal(t, first.Dossier.ID, second.Dossier.ID, "repeat must update, not duplicate")
	assert.Equal(t, int64(9), second.Dossier.BeneficiaryID)
}

func TestCreateCompany(t *testing.T) {
	f := newHRFixture(t)

	company, err := f.hr.CreateCompany(context.Background(), "ins-1", "Acme Insurance")
	require.NoError(t, err)
	assert.Equal(t, "ins-1", company.ID)
	assert.Equal(t, "Acme Insurance", company.Name)
}
