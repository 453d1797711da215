package entity

import (
	"time"
)

// Event types.
const (
	EventTypeVolunteering = "volunteering"
	EventTypeFundraising  = "fundraising"
	EventTypeAwareness    = "awareness"
	EventTypeWorkshop     = "workshop"
	EventTypeOther        = "other"
)

// Event lifecycle statuses.
const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"
)

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Organizer   string    `json:"organizer"`
	Type        string    `json:"type"`
	Capacity    int       `json:"capacity"`
	Status      string    `json:"status"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventSummary is the reduced projection embedded in participant reads.
type EventSummary struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
	Status   string    `json:"status"`
}
