package http

import (
	"net/http"

	"eventrsvp/internal/delivery/http/controllers"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes.
// requireAuth wraps the handlers that need an acting user.
func NewRouter(
	eventController *controllers.EventController,
	rsvpController *controllers.RSVPController,
	healthController *controllers.HealthController,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /api/v1/events", eventController.ListEvents)
	mux.HandleFunc("GET /api/v1/events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("POST /api/v1/events", requireAuth(eventController.CreateEvent))

	// RSVPs
	mux.HandleFunc("GET /api/v1/events/{eventID}/rsvps", rsvpController.ListRSVPs)
	mux.HandleFunc("POST /api/v1/events/{eventID}/rsvps", requireAuth(rsvpController.SubmitRSVP))
	mux.HandleFunc("PUT /api/v1/events/{eventID}/rsvps/{rsvpID}", requireAuth(rsvpController.UpdateRSVP))

	mux.HandleFunc("GET /healthz", healthController.Healthz)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
