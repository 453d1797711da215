package entity

import (
	"time"
)

// Participant statuses.
const (
	ParticipantStatusRegistered = "registered"
	ParticipantStatusCancelled  = "cancelled"
	ParticipantStatusAttended   = "attended"
)

// Participant references an event by id. The reference is validated when the
// participant is created or re-pointed, never afterwards: deleting the event
// leaves the reference dangling and Event comes back nil on reads.
type Participant struct {
	ID        string        `json:"id"`
	EventID   string        `json:"event_id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Status    string        `json:"status"`
	Event     *EventSummary `json:"event"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
