package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventrsvp/internal/delivery/http/helpers"
	"eventrsvp/internal/delivery/http/middleware"
	"eventrsvp/internal/domain"
)

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Title           string     `json:"title" validate:"required"`
	Description     *string    `json:"description"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Location        *string    `json:"location"`
	LocationType    *string    `json:"location_type"`
	MaxParticipants *int64     `json:"max_participants"`
	IsPrivate       *bool      `json:"is_private"`
	Status          *string    `json:"status"`
	CreatorID       *int64     `json:"creator_id"`
	GroupID         *int64     `json:"group_id"`
}

// Validate implements helpers.Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		errs = append(errs, "end_date must not be before start_date")
	}
	return errs
}

// toEvent builds the domain event. The creator defaults to the acting user.
func (c CreateEventRequest) toEvent(actingUserID int64) *domain.Event {
	creatorID := actingUserID
	if c.CreatorID != nil {
		creatorID = *c.CreatorID
	}
	e := domain.NewEvent(c.Title, creatorID)
	e.Description = c.Description
	e.StartDate = c.StartDate
	e.EndDate = c.EndDate
	e.Location = c.Location
	e.LocationType = c.LocationType
	e.MaxParticipants = c.MaxParticipants
	e.Status = c.Status
	e.GroupID = c.GroupID
	if c.IsPrivate != nil {
		e.IsPrivate = *c.IsPrivate
	}
	return e
}

// EventSuccessResponse is the success response envelope for POST /events (201).
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success response envelope for GET /events (200).
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventDetail is the GET /events/{eventID} projection. creator is always present and
// is null when the creator row no longer exists.
type EventDetail struct {
	*domain.Event
	Creator *domain.UserSummary `json:"creator"`
}

// EventDetailSuccessResponse is the success response envelope for GET /events/{eventID} (200).
type EventDetailSuccessResponse struct {
	Data  []EventDetail     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns every event. No filtering or pagination.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.EventListSuccessResponse "data is an array of events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event with its creator
// @Description Returns a one-element array holding the event and its creator summary. creator is null when the creator no longer exists.
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.EventDetailSuccessResponse "data is a one-element array"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathInt64(r, "eventID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	event, err := c.Service.GetEvent(r.Context(), eventID)
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, []EventDetail{{Event: event, Creator: event.Creator}})
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event. creator_id defaults to the authenticated user. Fields are stored as given; only title is required.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	event := req.toEvent(userID)
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}
