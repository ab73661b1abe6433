package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventrsvp/internal/domain"
)

type rsvpService struct {
	rsvpRepo       domain.RSVPRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewRSVPService creates an RSVPService backed by the given repository.
func NewRSVPService(rsvpRepo domain.RSVPRepository, logger *slog.Logger, timeout time.Duration) domain.RSVPService {
	return &rsvpService{
		rsvpRepo:       rsvpRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *rsvpService) SubmitRSVP(ctx context.Context, rsvp *domain.RSVP) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(rsvp.Status) == "" {
		return fmt.Errorf("%w: status is required", domain.ErrInvalidInput)
	}
	if rsvp.ResponseDate.IsZero() {
		return fmt.Errorf("%w: response_date is required", domain.ErrInvalidInput)
	}
	if rsvp.UserID == 0 {
		return fmt.Errorf("%w: acting user is required", domain.ErrInvalidInput)
	}

	created, err := s.rsvpRepo.Upsert(ctx, rsvp)
	if err != nil {
		return fmt.Errorf("upsert rsvp: %w", err)
	}
	s.logger.DebugContext(ctx, "rsvp submitted",
		"rsvp_id", rsvp.ID, "event_id", rsvp.EventID, "user_id", rsvp.UserID, "created", created)
	return nil
}

func (s *rsvpService) UpdateRSVP(ctx context.Context, id int64, status string, notes *string) (*domain.RSVP, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rsvp, err := s.rsvpRepo.Update(ctx, id, status, notes)
	if err != nil {
		return nil, fmt.Errorf("update rsvp: %w", err)
	}
	return rsvp, nil
}

func (s *rsvpService) ListEventRSVPs(ctx context.Context, eventID int64) ([]*domain.RSVP, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rsvps, err := s.rsvpRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	if rsvps == nil {
		rsvps = []*domain.RSVP{}
	}
	return rsvps, nil
}
