package dto

// AssociateRequest carries the upsert input for POST /associate.
type AssociateRequest struct {
	EmployeeID    int64 `json:"employeeId"`
	BeneficiaryID int64 `json:"beneficiaryId"`
}

// BeneficiaryChangeRequest is the notification event body.
type BeneficiaryChangeRequest struct {
	DossierID int64 `json:"dossierId"`
}
