package domain

import (
	"context"
	"time"
)

// RSVP is a user's attendance response for an event. There is at most one RSVP per
// (EventID, UserID) pair.
// swagger:model RSVP
type RSVP struct {
	ID           int64     `json:"id"`
	EventID      int64     `json:"event_id"`
	UserID       int64     `json:"user_id"`
	Status       string    `json:"status"`
	ResponseDate time.Time `json:"response_date"`
	Notes        *string   `json:"notes"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewRSVP returns a new RSVP for the given event and user. ID and UpdatedAt are set by the repository.
func NewRSVP(eventID, userID int64, status string, responseDate time.Time, notes *string) *RSVP {
	return &RSVP{
		EventID:      eventID,
		UserID:       userID,
		Status:       status,
		ResponseDate: responseDate,
		Notes:        notes,
	}
}

// RSVPRepository defines storage operations for RSVPs.
type RSVPRepository interface {
	// Insert creates a new row and fails with ErrConstraintViolation when the
	// (event, user) pair already has one.
	Insert(ctx context.Context, rsvp *RSVP) error
	// Upsert inserts the RSVP or, when the (event, user) pair already exists, updates
	// status, response_date and notes in a single statement. created reports which
	// branch the store took.
	Upsert(ctx context.Context, rsvp *RSVP) (created bool, err error)
	// Update sets status and notes on the RSVP with the given id. It returns (nil, nil)
	// when no row matches.
	Update(ctx context.Context, id int64, status string, notes *string) (*RSVP, error)
	ListByEventID(ctx context.Context, eventID int64) ([]*RSVP, error)
}

// RSVPService defines RSVP operations on behalf of an acting user.
type RSVPService interface {
	// SubmitRSVP creates or updates the acting user's RSVP for the event.
	SubmitRSVP(ctx context.Context, rsvp *RSVP) error
	UpdateRSVP(ctx context.Context, id int64, status string, notes *string) (*RSVP, error)
	ListEventRSVPs(ctx context.Context, eventID int64) ([]*RSVP, error)
}
