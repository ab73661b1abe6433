package domain

import (
	"context"
	"time"
)

// Event is a scheduled gathering users can RSVP to.
// swagger:model Event
type Event struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	Description     *string      `json:"description"`
	StartDate       *time.Time   `json:"start_date"`
	EndDate         *time.Time   `json:"end_date"`
	Location        *string      `json:"location"`
	LocationType    *string      `json:"location_type"`
	MaxParticipants *int64       `json:"max_participants"`
	IsPrivate       bool         `json:"is_private"`
	Status          *string      `json:"status"`
	CreatorID       int64        `json:"creator_id"`
	GroupID         *int64       `json:"group_id"`
	Creator         *UserSummary `json:"creator,omitempty"`
}

// NewEvent returns a new Event with the required fields set. ID is assigned by the repository on create.
func NewEvent(title string, creatorID int64) *Event {
	return &Event{
		Title:     title,
		CreatorID: creatorID,
	}
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	// GetByID returns the event with its creator projection. Creator is nil when the
	// creator_id references no user.
	GetByID(ctx context.Context, id int64) (*Event, error)
	Create(ctx context.Context, event *Event) error
}

// EventService defines event operations exposed to the delivery layer.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id int64) (*Event, error)
	CreateEvent(ctx context.Context, event *Event) error
}
