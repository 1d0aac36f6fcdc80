package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-platform/internal/domain"
	"github.com/spec-kit/hr-platform/internal/repository"
)

// AssociationService owns the employee-to-beneficiary dossiers.
type AssociationService struct {
	dossiers repository.DossierRepository
	logger   *zap.Logger
}

// NewAssociationService constructs the service.
func NewAssociationService(dossiers repository.DossierRepository, logger *zap.Logger) *AssociationService {
	return &AssociationService{dossiers: dossiers, logger: logger}
}

// Associate upserts the dossier for an employee: the first existing dossier
// is pointed at the new beneficiary, otherwise a fresh dossier is created.
// The find-then-write pair is not guarded by a lock; concurrent calls for the
// same employee can race into duplicate rows.
func (s *AssociationService) Associate(ctx context.Context, employeeID, beneficiaryID int64) (*domain.Dossier, bool, error) {
	existing, err := s.dossiers.FindFirstByEmployee(ctx, employeeID)
	if err == nil {
		updated, err := s.dossiers.UpdateBeneficiary(ctx, existing.ID, beneficiaryID)
		if err != nil {
			return nil, false, err
		}
		s.logger.Info("dossier updated",
			zap.Int64("dossier_id", updated.ID),
			zap.Int64("employee_id", employeeID),
			zap.Int64("beneficiary_id", beneficiaryID))
		return updated, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	dossier := &domain.Dossier{EmployeeID: employeeID, BeneficiaryID: beneficiaryID}
	if err := s.dossiers.Create(ctx, dossier); err != nil {
		return nil, false, err
	}
	s.logger.Info("dossier created",
		zap.Int64("dossier_id", dossier.ID),
		zap.Int64("employee_id", employeeID),
		zap.Int64("beneficiary_id", beneficiaryID))
	return dossier, true, nil
}

// GetDossier fetches one dossier by identifier.
func (s *AssociationService) GetDossier(ctx context.Context, id int64) (*domain.Dossier, error) {
	return s.dossiers.GetByID(ctx, id)
}
