package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/delivery/http/middleware"
	"eventdesk/internal/domain"
)

// EventController handles the event lifecycle endpoints. Every endpoint runs
// behind the auth middleware; the verified user handle is the caller identity
// passed to the service.
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

// EventRequest is the request body for creating or updating an event.
type EventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	Categories  []string  `json:"categories,omitempty"`
}

// StartMeetingRequest is the request body for starting an event's meeting.
type StartMeetingRequest struct {
	MeetingURL string `json:"meeting_url"`
}

// RegistrationStatus reports whether the caller is registered for an event.
type RegistrationStatus struct {
	Registered bool `json:"registered"`
}

// MeetingStarted reports a successful meeting start.
type MeetingStarted struct {
	Started bool `json:"started"`
}

// MeetingJoin carries the unmasked meeting URL returned by join.
type MeetingJoin struct {
	MeetingURL string `json:"meeting_url"`
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create a scheduled event. The authenticated user becomes the owner. An optional locale query parameter stores the title and description as a locale overlay as well.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param locale query string false "BCP-47 language subtag, e.g. de"
// @Param event body EventRequest true "Event draft"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	user, ok := middleware.UserHandleFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	locale := r.URL.Query().Get("locale")
	event, err := c.Service.Create(r.Context(), req.Categories, user, locale,
		domain.NewEvent(req.Title, req.Description, req.EventDate))
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// GetEvent godoc
// @Summary Read one event
// @Description Returns the locale-resolved event. The meeting URL is hidden unless the caller owns the event.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param locale query string false "BCP-47 language subtag"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserHandleFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	event, err := c.Service.Read(r.Context(), user, r.PathValue("eventID"), r.URL.Query().Get("locale"))
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Without a locale the canonical row is rewritten; with a locale the overlay for that language is upserted. Only the owner can update.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param locale query string false "BCP-47 language subtag"
// @Param event body EventRequest true "Event draft"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	user, ok := middleware.UserHandleFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	event, err := c.Service.Update(r.Context(), r.PathValue("eventID"), user, r.URL.Query().Get("locale"),
		domain.NewEvent(req.Title, req.Description, req.EventDate))
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// ListEvents godoc
// @Summary List events
// @Description Without category parameters: future events the caller owns or is registered for. With one or more category parameters: future events tagged with every given category. Meeting URLs are masked per entry.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param locale query string false "BCP-47 language subtag"
// @Param category query []string false "Category labels; all must match"
// @Success 200 {object} helpers.APIResponse
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserHandleFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	locale := r.URL.Query().Get("locale")
	categories := r.URL.Query()["category"]

	var events []*domain.Event
	var err error
	if len(categories) > 0 {
		events, err = c.Service.ListByCategories(r.Context(), user, locale, categories)
	} else {
		events, err = c.Service.List(r.Context(), user, locale)
	}
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event and all its child rows. Only the owner can delete.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 204 "event removed"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserHandleFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	deleted, err := c.Service.Delete(r.Context(), user, r.PathValue("eventID"))
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	if !deleted {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, domain.ErrNotFound.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RegisterForEvent godoc
// @Summary Register for an event
// @Description Registers the caller as a learner. Owners cannot register for their own event; a second registration fails.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 201 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /events/{eventID}/register [post]
func (c *EventController) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserHandleFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	registered, err := c.Service.Register(r.Context(), user, r.PathValue("eventID"))
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, RegistrationStatus{Registered: registered})
}

// GetRegistration godoc
// @Summary Registration status
// @Description Reports whether the caller is registered for the event.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse
// @Router /events/{eventID}/registration [get]
func (c *EventController) GetRegistration(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserHandleFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	registered, err := c.Service.IsRegistered(r.Context(), user, r.PathValue("eventID"))
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationStatus{Registered: registered})
}

// StartMeeting godoc
// @Summary Start the event's meeting
// @Description Stores the meeting URL. Only the owner may start, only within ten minutes of the event date, and only once.
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param meeting body StartMeetingRequest true "Meeting URL"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /events/{eventID}/start [post]
func (c *EventController) StartMeeting(w http.ResponseWriter, r *http.Request) {
	var req StartMeetingRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	user, ok := middleware.UserHandleFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	started, err := c.Service.Start(r.Context(), user, r.PathValue("eventID"), req.MeetingURL)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, MeetingStarted{Started: started})
}

// JoinMeeting godoc
// @Summary Join the event's meeting
// @Description Returns the meeting URL unmasked. Allowed for the owner and registered learners once a meeting was started.
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /events/{eventID}/join [get]
func (c *EventController) JoinMeeting(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserHandleFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	meetingURL, err := c.Service.Join(r.Context(), user, r.PathValue("eventID"))
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MeetingJoin{MeetingURL: meetingURL})
}

// writeServiceError maps service errors onto the API error taxonomy.
func (c *EventController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var violations domain.Violations
	switch {
	case errors.As(err, &violations):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeValidation, violations.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrOwnEvent),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrMeetingExists),
		errors.Is(err, domain.ErrMeetingNotStarted),
		errors.Is(err, domain.ErrNotReadyToStart),
		errors.Is(err, domain.ErrJoinNotAllowed):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}
