package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventrsvp/internal/domain"
)

const eventColumns = `id, title, description, start_date, end_date, location, location_type,
		max_participants, is_private, status, creator_id, group_id`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// eventNulls holds the nullable event columns until they are copied into a domain.Event.
type eventNulls struct {
	description     sql.NullString
	startDate       sql.NullTime
	endDate         sql.NullTime
	location        sql.NullString
	locationType    sql.NullString
	maxParticipants sql.NullInt64
	status          sql.NullString
	groupID         sql.NullInt64
}

func (n *eventNulls) targets(e *domain.Event) []any {
	return []any{
		&e.ID, &e.Title, &n.description, &n.startDate, &n.endDate, &n.location, &n.locationType,
		&n.maxParticipants, &e.IsPrivate, &n.status, &e.CreatorID, &n.groupID,
	}
}

func (n *eventNulls) apply(e *domain.Event) {
	e.Description, e.StartDate, e.EndDate, e.Location = nil, nil, nil, nil
	e.LocationType, e.MaxParticipants, e.Status, e.GroupID = nil, nil, nil, nil
	if n.description.Valid {
		e.Description = &n.description.String
	}
	if n.startDate.Valid {
		e.StartDate = &n.startDate.Time
	}
	if n.endDate.Valid {
		e.EndDate = &n.endDate.Time
	}
	if n.location.Valid {
		e.Location = &n.location.String
	}
	if n.locationType.Valid {
		e.LocationType = &n.locationType.String
	}
	if n.maxParticipants.Valid {
		e.MaxParticipants = &n.maxParticipants.Int64
	}
	if n.status.Valid {
		e.Status = &n.status.String
	}
	if n.groupID.Valid {
		e.GroupID = &n.groupID.Int64
	}
}

func scanEvent(row rowScanner, e *domain.Event) error {
	var n eventNulls
	if err := row.Scan(n.targets(e)...); err != nil {
		return err
	}
	n.apply(e)
	return nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := scanEvent(rows, e); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetByID left-joins users so an event whose creator row is gone is still returned,
// with a nil Creator.
func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT e.id, e.title, e.description, e.start_date, e.end_date, e.location, e.location_type,
			e.max_participants, e.is_private, e.status, e.creator_id, e.group_id,
			u.id, u.firstname, u.lastname
		FROM events e
		LEFT JOIN users u ON u.id = e.creator_id
		WHERE e.id = $1
	`
	e := &domain.Event{}
	var n eventNulls
	var userID sql.NullInt64
	var firstName, lastName sql.NullString
	dest := append(n.targets(e), &userID, &firstName, &lastName)
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	n.apply(e)
	if userID.Valid {
		e.Creator = &domain.UserSummary{
			ID:        userID.Int64,
			FirstName: firstName.String,
			LastName:  lastName.String,
		}
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, start_date, end_date, location, location_type,
			max_participants, is_private, status, creator_id, group_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + eventColumns
	err := scanEvent(r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.StartDate, e.EndDate, e.Location, e.LocationType,
		e.MaxParticipants, e.IsPrivate, e.Status, e.CreatorID, e.GroupID,
	), e)
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}
