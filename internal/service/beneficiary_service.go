package service

import (
	"context"

	"github.com/spec-kit/hr-platform/internal/domain"
	"github.com/spec-kit/hr-platform/internal/repository"
)

// BeneficiaryService owns beneficiary records. The registry wires the read
// and delete paths; the HR service wires create and update.
type BeneficiaryService struct {
	beneficiaries repository.BeneficiaryRepository
}

// NewBeneficiaryService constructs the service.
func NewBeneficiaryService(beneficiaries repository.BeneficiaryRepository) *BeneficiaryService {
	return &BeneficiaryService{beneficiaries: beneficiaries}
}

// Create stores a new beneficiary.
func (s *BeneficiaryService) Create(ctx context.Context, name string) (*domain.Beneficiary, error) {
	beneficiary := &domain.Beneficiary{Name: name}
	if err := s.beneficiaries.Create(ctx, beneficiary); err != nil {
		return nil, err
	}
	return beneficiary, nil
}

// Update renames an existing beneficiary.
func (s *BeneficiaryService) Update(ctx context.Context, id int64, name string) (*domain.Beneficiary, error) {
	beneficiary := &domain.Beneficiary{ID: id, Name: name}
	if err := s.beneficiaries.Update(ctx, beneficiary); err != nil {
		return nil, err
	}
	return beneficiary, nil
}

// Get fetches one beneficiary.
func (s *BeneficiaryService) Get(ctx context.Context, id int64) (*domain.Beneficiary, error) {
	return s.beneficiaries.GetByID(ctx, id)
}

// Delete removes a beneficiary and returns the deleted record.
func (s *BeneficiaryService) Delete(ctx context.Context, id int64) (*domain.Beneficiary, error) {
	return s.beneficiaries.Delete(ctx, id)
}
