package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	// EventBeneficiaryChanged fires after a dossier write committed. Its
	// side effects (confirmation mail, insurer notification) are best-effort.
	EventBeneficiaryChanged EventType = "beneficiary_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// BeneficiaryChangedPayload carries the committed dossier and the employee
// address to confirm to.
type BeneficiaryChangedPayload struct {
	DossierID int64  `json:"dossierId"`
	Email     string `json:"email"`
}
