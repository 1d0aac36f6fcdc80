package domain

import "time"

// Employee is the registry record for one employee. The Authenticated flag is
// flipped only by the HR identity-verification operation; it starts false.
type Employee struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Email         string    `json:"email"`
	SSN           string    `json:"ssn"`
	Authenticated bool      `json:"authenticated"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
