package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-platform/internal/config"
	"github.com/spec-kit/hr-platform/internal/domain"
	"github.com/spec-kit/hr-platform/internal/outbox"
	"github.com/spec-kit/hr-platform/internal/remote"
	"github.com/spec-kit/hr-platform/internal/repository"
	"github.com/spec-kit/hr-platform/pkg/util"
)

// VerifyInput carries the identity claims an employee submits.
type VerifyInput struct {
	EmployeeID int64
	Name       string
	Address    string
	SSN        string
}

// AssociateResult is the association service's answer to an upsert.
type AssociateResult struct {
	Dossier domain.Dossier `json:"dossier"`
	Created bool           `json:"created"`
}

// HRService drives the beneficiary-update workflow: verify identity, upsert
// the dossier through the association service, then confirm out of band.
// It reads and writes employee records against the shared store directly;
// only the dossier write and the change notification cross the network.
type HRService struct {
	employees repository.EmployeeRepository
	companies repository.CompanyRepository
	remote    *remote.Client
	outbox    outbox.Queue
	assocURL  string
	logger    *zap.Logger
}

// HRDependencies bundles collaborator requirements for the HR service.
type HRDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	CompanyRepo  repository.CompanyRepository
	Remote       *remote.Client
	Outbox       outbox.Queue
}

// NewHRService builds the service.
func NewHRService(collaborators config.CollaboratorConfig, deps HRDependencies, logger *zap.Logger) *HRService {
	return &HRService{
		employees: deps.EmployeeRepo,
		companies: deps.CompanyRepo,
		remote:    deps.Remote,
		outbox:    deps.Outbox,
		assocURL:  collaborators.AssociationURL,
		logger:    logger,
	}
}

// VerifyIdentity compares the claimed fields byte-for-byte against the stored
// record. On a match the authenticated flag is set true and the updated
// record returned; on any mismatch (or missing record) nothing is mutated.
// Repeating a valid call keeps the flag true.
func (s *HRService) VerifyIdentity(ctx context.Context, input VerifyInput) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, input.EmployeeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, util.NewIdentityMismatch()
	}
	if err != nil {
		return nil, err
	}

	if employee.Name != input.Name || employee.Address != input.Address || employee.SSN != input.SSN {
		return nil, util.NewIdentityMismatch()
	}

	updated, err := s.employees.SetAuthenticated(ctx, input.EmployeeID, true)
	if err != nil {
		return nil, err
	}
	s.logger.Info("employee authenticated", zap.Int64("employee_id", updated.ID))
	return updated, nil
}

// CreateDossier runs the update-beneficiary workflow. Any failure before the
// association upsert aborts with nothing written. Once the upsert committed,
// the confirmation email and insurer notification are queued as a best-effort
// side effect and can never undo the dossier.
func (s *HRService) CreateDossier(ctx context.Context, employeeID, beneficiaryID int64) (*AssociateResult, error) {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, util.NewNotAuthenticated()
	}
	if err != nil {
		return nil, err
	}
	if !employee.Authenticated {
		return nil, util.NewNotAuthenticated()
	}

	result, err := s.associate(ctx, employeeID, beneficiaryID)
	if err != nil {
		return nil, err
	}

	// Dossier is durable from here on; side effects are queued, not inlined.
	job := outbox.Job{
		ID:         uuid.NewString(),
		DossierID:  result.Dossier.ID,
		Email:      employee.Email,
		EnqueuedAt: time.Now(),
	}
	if err := s.outbox.Enqueue(ctx, job); err != nil {
		s.logger.Error("side-effect enqueue failed; dossier stays committed",
			zap.Int64("dossier_id", result.Dossier.ID),
			zap.Error(err))
	}

	return result, nil
}

// associate calls the association service's upsert endpoint. The retry client
// repeats the POST on transient failure, which can in principle create a
// duplicate dossier; the upsert's find-first semantics absorb that in the
// sequential case.
func (s *HRService) associate(ctx context.Context, employeeID, beneficiaryID int64) (*AssociateResult, error) {
	body, err := json.Marshal(map[string]int64{
		"employeeId":    employeeID,
		"beneficiaryId": beneficiaryID,
	})
	if err != nil {
		return nil, err
	}

	res, err := s.remote.Call(ctx, s.assocURL+"/associate", remote.CallOptions{
		Method:  http.MethodPost,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	})
	if err != nil {
		return nil, util.NewRemoteCallFailed("association service", err)
	}

	var result AssociateResult
	if err := res.Decode(&result); err != nil {
		return nil, util.NewRemoteCallFailed("association service", err)
	}
	return &result, nil
}

// CreateCompany stores an insurance company record.
func (s *HRService) CreateCompany(ctx context.Context, id, name string) (*domain.Company, error) {
	company := &domain.Company{ID: id, Name: name}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}
