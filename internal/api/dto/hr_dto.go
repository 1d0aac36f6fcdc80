package dto

import "github.com/spec-kit/hr-platform/internal/domain"

// VerifyRequest carries the identity claims for POST /auth/verify.
type VerifyRequest struct {
	EmployeeID int64  `json:"employeeId"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	SSN        string `json:"ssn"`
}

// VerifyResponse reports the verification outcome. Employee is set only for
// a valid identity.
type VerifyResponse struct {
	IsValid  bool             `json:"isValid"`
	Employee *domain.Employee `json:"employee,omitempty"`
}

// DossierCreateRequest carries the workflow input for POST /dossiers.
type DossierCreateRequest struct {
	EmployeeID    int64 `json:"employeeId"`
	BeneficiaryID int64 `json:"beneficiaryId"`
}

// BeneficiaryRequest payload for beneficiary create/update.
type BeneficiaryRequest struct {
	Name string `json:"name"`
}

// CompanyCreateRequest payload for insurance companies.
type CompanyCreateRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CounselorCreateRequest payload for HR counselors.
type CounselorCreateRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
