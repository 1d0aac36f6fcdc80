package domain

import "time"

// Dossier links one employee to one beneficiary. The association upsert looks
// up the first dossier per employee and rewrites its beneficiary; nothing at
// this layer prevents a second row from being created directly.
type Dossier struct {
	ID            int64     `json:"id"`
	EmployeeID    int64     `json:"employeeId"`
	BeneficiaryID int64     `json:"beneficiaryId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
