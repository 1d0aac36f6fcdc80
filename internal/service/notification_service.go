package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-platform/internal/repository"
)

// NotificationService accepts beneficiary-change events and relays them to
// the downstream insurer. Delivery is stubbed as a log record; the contract
// ends at HTTP-level accept.
type NotificationService struct {
	dossiers      repository.DossierRepository
	employees     repository.EmployeeRepository
	beneficiaries repository.BeneficiaryRepository
	logger        *zap.Logger
}

// NewNotificationService constructs the service.
func NewNotificationService(repos repository.Set, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dossiers:      repos.Dossiers,
		employees:     repos.Employees,
		beneficiaries: repos.Beneficiaries,
		logger:        logger,
	}
}

// Accept records that the insurer was notified for the given dossier. Full
// dossier context is attached when the store can resolve it; a missing
// dossier is not an error.
func (s *NotificationService) Accept(ctx context.Context, dossierID int64) {
	fields := []zap.Field{zap.Int64("dossier_id", dossierID)}

	dossier, err := s.dossiers.GetByID(ctx, dossierID)
	if err != nil {
		s.logger.Info("insurer notified", fields...)
		return
	}

	fields = append(fields,
		zap.Int64("employee_id", dossier.EmployeeID),
		zap.Int64("beneficiary_id", dossier.BeneficiaryID))

	if employee, err := s.employees.GetByID(ctx, dossier.EmployeeID); err == nil {
		fields = append(fields, zap.String("employee_name", employee.Name))
	}
	if beneficiary, err := s.beneficiaries.GetByID(ctx, dossier.BeneficiaryID); err == nil {
		fields = append(fields, zap.String("beneficiary_name", beneficiary.Name))
	}

	s.logger.Info("insurer notified", fields...)
}
