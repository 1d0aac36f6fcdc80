package domain

import "time"

// Beneficiary is created and renamed independently of employees.
type Beneficiary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
