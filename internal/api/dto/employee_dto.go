package dto

// EmployeeCreateRequest payload for new employees. Identifiers are
// system-assigned; one submitted by the caller is ignored.
type EmployeeCreateRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	SSN     string `json:"ssn"`
}

// EmployeeUpdateRequest payload for partial updates.
type EmployeeUpdateRequest struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	Email         *string `json:"email"`
	SSN           *string `json:"ssn"`
	Authenticated *bool   `json:"authenticated"`
}

// EmployeeAuthRequest payload for the authenticated-flag endpoint.
type EmployeeAuthRequest struct {
	Authenticated bool `json:"authenticated"`
}
