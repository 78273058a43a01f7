package models

import "time"

const (
	InteractionTypeManual = "interaction" // logged by hand
	InteractionTypeTask   = "task"        // synthesized on task completion
)

// Interaction is an immutable log entry attached to a contact. It is never
// updated or deleted after creation.
type Interaction struct {
	ID          string    `json:"id"`
	ContactID   string    `json:"contact_id"`
	OwnerID     string    `json:"owner_id"`
	Timestamp   time.Time `json:"timestamp"`
	Channel     string    `json:"channel"`
	Summary     string    `json:"summary"`
	Type        string    `json:"type"` // interaction, task
	Attachments []string  `json:"attachments,omitempty"`
}
