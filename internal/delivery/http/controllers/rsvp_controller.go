package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"eventrsvp/internal/delivery/http/helpers"
	"eventrsvp/internal/delivery/http/middleware"
	"eventrsvp/internal/domain"
)

// SubmitRSVPRequest is the request body for POST /events/{eventID}/rsvps.
type SubmitRSVPRequest struct {
	Status       string     `json:"status" validate:"required"`
	ResponseDate *time.Time `json:"response_date" validate:"required"`
	Notes        *string    `json:"notes"`
}

// UpdateRSVPRequest is the request body for PUT /events/{eventID}/rsvps/{rsvpID}.
type UpdateRSVPRequest struct {
	Status string  `json:"status" validate:"required"`
	Notes  *string `json:"notes"`
}

// RSVPSuccessResponse is the success response envelope for RSVP writes. data is null
// when PUT targets an id that does not exist.
type RSVPSuccessResponse struct {
	Data  *domain.RSVP      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// RSVPListSuccessResponse is the success response envelope for GET /events/{eventID}/rsvps (200).
type RSVPListSuccessResponse struct {
	Data  []*domain.RSVP    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type RSVPController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
}

func NewRSVPController(logger *slog.Logger, svc domain.RSVPService) *RSVPController {
	return &RSVPController{
		Logger:  logger,
		Service: svc,
	}
}

// SubmitRSVP godoc
// @Summary Create or update the current user's RSVP
// @Description Inserts the authenticated user's RSVP for the event or, if one already exists, updates its status, response_date and notes. Always answers 201, for an insert and for an update alike.
// @Tags rsvps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param body body SubmitRSVPRequest true "RSVP data"
// @Success 201 {object} controllers.RSVPSuccessResponse "data contains the stored RSVP"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/rsvps [post]
func (c *RSVPController) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathInt64(r, "eventID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	var req SubmitRSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	rsvp := domain.NewRSVP(eventID, userID, req.Status, *req.ResponseDate, req.Notes)
	if err := c.Service.SubmitRSVP(r.Context(), rsvp); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, rsvp)
}

// UpdateRSVP godoc
// @Summary Update an RSVP by id
// @Description Sets status and notes on the RSVP. An unknown id is not an error: data is null.
// @Tags rsvps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param rsvpID path int true "RSVP ID"
// @Param body body UpdateRSVPRequest true "Fields to set"
// @Success 200 {object} controllers.RSVPSuccessResponse "data contains the updated RSVP or null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/rsvps/{rsvpID} [put]
func (c *RSVPController) UpdateRSVP(w http.ResponseWriter, r *http.Request) {
	if _, err := helpers.PathInt64(r, "eventID"); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	rsvpID, err := helpers.PathInt64(r, "rsvpID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	var req UpdateRSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	rsvp, err := c.Service.UpdateRSVP(r.Context(), rsvpID, req.Status, req.Notes)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rsvp)
}

// ListRSVPs godoc
// @Summary List RSVPs of an event
// @Tags rsvps
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.RSVPListSuccessResponse "data is an array of RSVPs"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/rsvps [get]
func (c *RSVPController) ListRSVPs(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathInt64(r, "eventID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	rsvps, err := c.Service.ListEventRSVPs(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rsvps)
}
