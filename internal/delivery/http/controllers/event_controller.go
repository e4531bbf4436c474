package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"agendahub/internal/delivery/http/helpers"
	"agendahub/internal/domain"
)

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Category    string     `json:"category"`
}

// Validate implements Validator. Presence checks only; length, range, and
// scheduling rules belong to the domain so their error kinds stay intact.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if c.StartTime.IsZero() {
		errs = append(errs, "start_time is required")
	}
	if strings.TrimSpace(c.Category) == "" {
		errs = append(errs, "category is required")
	}
	return errs
}

// RescheduleEventRequest is the request body for PUT /events/{eventID}/schedule.
type RescheduleEventRequest struct {
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

// Validate implements Validator.
func (r RescheduleEventRequest) Validate() []string {
	if r.StartTime.IsZero() {
		return []string{"start_time is required"}
	}
	return nil
}

type EventController struct {
	Logger     *slog.Logger
	Service    domain.EventService
	Classifier *helpers.Classifier
}

func NewEventController(logger *slog.Logger, svc domain.EventService, classifier *helpers.Classifier) *EventController {
	return &EventController{
		Logger:     logger,
		Service:    svc,
		Classifier: classifier,
	}
}

func (c *EventController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message, classified := c.Classifier.Classify(err)
	if !classified {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	helpers.WriteJSONError(w, status, code, message)
}

// parseEventID validates the eventID path parameter. A malformed id is a
// caller error, not a lookup miss.
func parseEventID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("eventID")
	if _, err := uuid.Parse(id); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid event id")
		return "", false
	}
	return id, true
}

// Create godoc
// @Summary Create an agenda event
// @Description Create a scheduled event. The event must start at least one day in the future and reference a category by name.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 422 {object} helpers.APIResponse "error.code: create_too_soon or category_not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), req.Name, req.Description, req.StartTime, req.EndTime, strings.TrimSpace(req.Category))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// Get godoc
// @Summary Get an event by id
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(w, r)
	if !ok {
		return
	}
	event, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// List godoc
// @Summary List events
// @Description Paginated list of events ordered by start time ascending.
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination meta"
// @Failure 400 {object} helpers.APIResponse "error.code: invalid_pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	params, err := helpers.ParsePagination(r)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	events, total, err := c.Service.ListEvents(r.Context(), params)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	if events == nil {
		events = []*domain.AgendaEvent{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.PaginatedResponse{
		Items: events,
		Meta:  helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// ListWindow godoc
// @Summary List events overlapping a date window
// @Description Returns events whose interval intersects [start, end]. Omitting end makes the window open-ended.
// @Tags events
// @Produce json
// @Param start query string true "Window start (RFC 3339)"
// @Param end query string false "Window end (RFC 3339)"
// @Success 200 {object} helpers.APIResponse "data contains the matching events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/window [get]
func (c *EventController) ListWindow(w http.ResponseWriter, r *http.Request) {
	startRaw := r.URL.Query().Get("start")
	if startRaw == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "start is required")
		return
	}
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "start must be an RFC 3339 timestamp")
		return
	}
	var end *time.Time
	if endRaw := r.URL.Query().Get("end"); endRaw != "" {
		t, err := time.Parse(time.RFC3339, endRaw)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "end must be an RFC 3339 timestamp")
			return
		}
		end = &t
	}
	window, err := domain.NewDateRange(start, end)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	events, err := c.Service.ListEventsInWindow(r.Context(), window)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	if events == nil {
		events = []*domain.AgendaEvent{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Reschedule godoc
// @Summary Change an event's schedule
// @Description Set a new start and optional end for an existing event.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param schedule body RescheduleEventRequest true "New schedule"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/schedule [put]
func (c *EventController) Reschedule(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(w, r)
	if !ok {
		return
	}
	var req RescheduleEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.RescheduleEvent(r.Context(), id, req.StartTime, req.EndTime)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 204 "no content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), id); err != nil {
		c.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
