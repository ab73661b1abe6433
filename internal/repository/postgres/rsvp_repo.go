package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventrsvp/internal/domain"
)

const rsvpColumns = `id, event_id, user_id, status, response_date, notes, updated_at`

type rsvpRepository struct {
	DB *sql.DB
}

func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{
		DB: db,
	}
}

func scanRSVP(row rowScanner, rsvp *domain.RSVP, extra ...any) error {
	var notes sql.NullString
	dest := append([]any{
		&rsvp.ID, &rsvp.EventID, &rsvp.UserID, &rsvp.Status, &rsvp.ResponseDate, &notes, &rsvp.UpdatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	rsvp.Notes = nil
	if notes.Valid {
		rsvp.Notes = &notes.String
	}
	return nil
}

func (r *rsvpRepository) Insert(ctx context.Context, rsvp *domain.RSVP) error {
	query := `
		INSERT INTO EventRSVPs (status, response_date, notes, event_id, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + rsvpColumns
	err := scanRSVP(r.DB.QueryRowContext(ctx, query,
		rsvp.Status, rsvp.ResponseDate, rsvp.Notes, rsvp.EventID, rsvp.UserID,
	), rsvp)
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}

// Upsert relies on the (event_id, user_id) unique constraint: concurrent callers for
// the same pair serialize on the conflicting row and never produce a second row.
// xmax is zero only for a freshly inserted tuple.
func (r *rsvpRepository) Upsert(ctx context.Context, rsvp *domain.RSVP) (bool, error) {
	query := `
		INSERT INTO EventRSVPs (status, response_date, notes, event_id, user_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (event_id, user_id) DO UPDATE
		SET status = EXCLUDED.status,
			response_date = EXCLUDED.response_date,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING ` + rsvpColumns + `, (xmax = 0) AS inserted`
	var inserted bool
	err := scanRSVP(r.DB.QueryRowContext(ctx, query,
		rsvp.Status, rsvp.ResponseDate, rsvp.Notes, rsvp.EventID, rsvp.UserID,
	), rsvp, &inserted)
	if err != nil {
		return false, mapWriteError(err)
	}
	return inserted, nil
}

func (r *rsvpRepository) Update(ctx context.Context, id int64, status string, notes *string) (*domain.RSVP, error) {
	query := `
		UPDATE EventRSVPs SET status = $1, notes = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + rsvpColumns
	rsvp := &domain.RSVP{}
	err := scanRSVP(r.DB.QueryRowContext(ctx, query, status, notes, id), rsvp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, mapWriteError(err)
	}
	return rsvp, nil
}

func (r *rsvpRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.RSVP, error) {
	query := `
		SELECT ` + rsvpColumns + `
		FROM EventRSVPs
		WHERE event_id = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rsvps := make([]*domain.RSVP, 0)
	for rows.Next() {
		rsvp := &domain.RSVP{}
		if err := scanRSVP(rows, rsvp); err != nil {
			return nil, err
		}
		rsvps = append(rsvps, rsvp)
	}
	return rsvps, rows.Err()
}
