package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventdesk/internal/delivery/http/controllers"
)

// NewRouter wires the event endpoints onto a ServeMux. authMW wraps every
// handler that needs an authenticated caller.
func NewRouter(
	eventController *controllers.EventController,
	authMW func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("POST /events", authMW(eventController.CreateEvent))
	mux.HandleFunc("GET /events", authMW(eventController.ListEvents))
	mux.HandleFunc("GET /events/{eventID}", authMW(eventController.GetEvent))
	mux.HandleFunc("PUT /events/{eventID}", authMW(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", authMW(eventController.DeleteEvent))

	mux.HandleFunc("POST /events/{eventID}/register", authMW(eventController.RegisterForEvent))
	mux.HandleFunc("GET /events/{eventID}/registration", authMW(eventController.GetRegistration))

	mux.HandleFunc("POST /events/{eventID}/start", authMW(eventController.StartMeeting))
	mux.HandleFunc("GET /events/{eventID}/join", authMW(eventController.JoinMeeting))

	return mux
}
