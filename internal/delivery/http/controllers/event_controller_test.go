package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendahub/internal/delivery/http/helpers"
	"agendahub/internal/domain"
)

// testLogger is a no-op logger so tests don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const testEventID = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"

func timePtr(t time.Time) *time.Time { return &t }

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createErr     error
	createResult  *domain.AgendaEvent
	getErr        error
	getResult     *domain.AgendaEvent
	listErr       error
	listResult    []*domain.AgendaEvent
	listTotal     int
	windowErr     error
	windowResult  []*domain.AgendaEvent
	rescheduleErr error
	deleteErr     error

	lastCreateName     string
	lastCreateCategory string
	lastGetID          string
	lastListParams     domain.PaginationParams
	lastWindow         domain.DateRange
	lastRescheduleID   string
	lastDeleteID       string
}

func (f *fakeEventService) CreateEvent(ctx context.Context, name string, description *string, start time.Time, end *time.Time, categoryName string) (*domain.AgendaEvent, error) {
	f.lastCreateName = name
	f.lastCreateCategory = categoryName
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResult, nil
}

func (f *fakeEventService) GetEvent(ctx context.Context, id string) (*domain.AgendaEvent, error) {
	f.lastGetID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeEventService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.AgendaEvent, int, error) {
	f.lastListParams = params
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listResult, f.listTotal, nil
}

func (f *fakeEventService) ListEventsInWindow(ctx context.Context, window domain.DateRange) ([]*domain.AgendaEvent, error) {
	f.lastWindow = window
	if f.windowErr != nil {
		return nil, f.windowErr
	}
	return f.windowResult, nil
}

func (f *fakeEventService) RescheduleEvent(ctx context.Context, id string, start time.Time, end *time.Time) (*domain.AgendaEvent, error) {
	f.lastRescheduleID = id
	if f.rescheduleErr != nil {
		return nil, f.rescheduleErr
	}
	return f.getResult, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteErr
}

func newEventController(svc domain.EventService) *EventController {
	return NewEventController(testLogger, svc, helpers.NewClassifier(false))
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) helpers.APIResponse {
	t.Helper()
	var resp helpers.APIResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

func TestEventController_Create(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	validBody := fmt.Sprintf(`{"name":"standup","start_time":%q,"category":"work"}`, start.Format(time.RFC3339))

	tests := []struct {
		name       string
		body       string
		svc        *fakeEventService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created",
			body:       validBody,
			svc:        &fakeEventService{createResult: &domain.AgendaEvent{ID: testEventID, Name: "standup", StartTime: start}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			svc:        &fakeEventService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown field rejected",
			body:       `{"name":"standup","bogus":true}`,
			svc:        &fakeEventService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "missing fields",
			body:       `{"name":""}`,
			svc:        &fakeEventService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "lead time violation",
			body:       validBody,
			svc:        &fakeEventService{createErr: domain.ErrCreateTooSoon},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   helpers.ErrCodeCreateTooSoon,
		},
		{
			name:       "category missing",
			body:       validBody,
			svc:        &fakeEventService{createErr: domain.ErrCategoryNotFound},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   helpers.ErrCodeCategoryNotFound,
		},
		{
			name:       "structural violation",
			body:       validBody,
			svc:        &fakeEventService{createErr: &domain.ValidationError{Reason: domain.ReasonInvalidName, Message: "event name must be between 3 and 50 characters"}},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeValidation,
		},
		{
			name:       "storage fault is unclassified",
			body:       validBody,
			svc:        &fakeEventService{createErr: errors.New("connection refused")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := newEventController(tt.svc)
			w := httptest.NewRecorder()
			r := httptest.NewRequest("POST", "/events", bytes.NewBufferString(tt.body))
			ctrl.Create(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeEnvelope(t, w.Body)
			if tt.wantCode != "" {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
			} else {
				assert.Nil(t, resp.Error)
				assert.NotNil(t, resp.Data)
			}
		})
	}
}

func TestEventController_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &fakeEventService{getResult: &domain.AgendaEvent{ID: testEventID, Name: "standup"}}
		ctrl := newEventController(svc)
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/events/"+testEventID, nil)
		r.SetPathValue("eventID", testEventID)
		ctrl.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, testEventID, svc.lastGetID)
	})
	t.Run("not found", func(t *testing.T) {
		ctrl := newEventController(&fakeEventService{getErr: domain.ErrNotFound})
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/events/"+testEventID, nil)
		r.SetPathValue("eventID", testEventID)
		ctrl.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeEnvelope(t, w.Body)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, resp.Error.Code)
	})
	t.Run("malformed id", func(t *testing.T) {
		ctrl := newEventController(&fakeEventService{})
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/events/not-a-uuid", nil)
		r.SetPathValue("eventID", "not-a-uuid")
		ctrl.Get(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEventController_List(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		svc := &fakeEventService{listResult: []*domain.AgendaEvent{{ID: testEventID}}, listTotal: 1}
		ctrl := newEventController(svc)
		w := httptest.NewRecorder()
		ctrl.List(w, httptest.NewRequest("GET", "/events", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.PaginationParams{Page: 1, PageSize: 20}, svc.lastListParams)
	})
	t.Run("explicit pagination forwarded", func(t *testing.T) {
		svc := &fakeEventService{listTotal: 25}
		ctrl := newEventController(svc)
		w := httptest.NewRecorder()
		ctrl.List(w, httptest.NewRequest("GET", "/events?page=3&page_size=10", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.PaginationParams{Page: 3, PageSize: 10}, svc.lastListParams)
	})
	t.Run("invalid pagination", func(t *testing.T) {
		ctrl := newEventController(&fakeEventService{})
		w := httptest.NewRecorder()
		ctrl.List(w, httptest.NewRequest("GET", "/events?page=0", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w.Body)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeInvalidPagination, resp.Error.Code)
	})
}

func TestEventController_ListWindow(t *testing.T) {
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	t.Run("bounded window", func(t *testing.T) {
		svc := &fakeEventService{windowResult: []*domain.AgendaEvent{{ID: testEventID}}}
		ctrl := newEventController(svc)
		w := httptest.NewRecorder()
		url := fmt.Sprintf("/events/window?start=%s&end=%s", start.Format(time.RFC3339), end.Format(time.RFC3339))
		ctrl.ListWindow(w, httptest.NewRequest("GET", url, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, svc.lastWindow.Start.Equal(start))
		require.NotNil(t, svc.lastWindow.End)
		assert.True(t, svc.lastWindow.End.Equal(end))
	})
	t.Run("open window", func(t *testing.T) {
		svc := &fakeEventService{}
		ctrl := newEventController(svc)
		w := httptest.NewRecorder()
		ctrl.ListWindow(w, httptest.NewRequest("GET", "/events/window?start="+start.Format(time.RFC3339), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, svc.lastWindow.End)
	})
	t.Run("missing start", func(t *testing.T) {
		ctrl := newEventController(&fakeEventService{})
		w := httptest.NewRecorder()
		ctrl.ListWindow(w, httptest.NewRequest("GET", "/events/window", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("unparseable start", func(t *testing.T) {
		ctrl := newEventController(&fakeEventService{})
		w := httptest.NewRecorder()
		ctrl.ListWindow(w, httptest.NewRequest("GET", "/events/window?start=tomorrow", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("end before start", func(t *testing.T) {
		ctrl := newEventController(&fakeEventService{})
		w := httptest.NewRecorder()
		url := fmt.Sprintf("/events/window?start=%s&end=%s", end.Format(time.RFC3339), start.Format(time.RFC3339))
		ctrl.ListWindow(w, httptest.NewRequest("GET", url, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w.Body)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeValidation, resp.Error.Code)
	})
}

func TestEventController_Reschedule(t *testing.T) {
	start := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	body := fmt.Sprintf(`{"start_time":%q}`, start.Format(time.RFC3339))

	t.Run("updated", func(t *testing.T) {
		svc := &fakeEventService{getResult: &domain.AgendaEvent{ID: testEventID, StartTime: start}}
		ctrl := newEventController(svc)
		w := httptest.NewRecorder()
		r := httptest.NewRequest("PUT", "/events/"+testEventID+"/schedule", bytes.NewBufferString(body))
		r.SetPathValue("eventID", testEventID)
		ctrl.Reschedule(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, testEventID, svc.lastRescheduleID)
	})
	t.Run("invalid range", func(t *testing.T) {
		svc := &fakeEventService{rescheduleErr: &domain.ValidationError{Reason: domain.ReasonInvalidDateRange, Message: "event end time must not precede its start time"}}
		ctrl := newEventController(svc)
		w := httptest.NewRecorder()
		r := httptest.NewRequest("PUT", "/events/"+testEventID+"/schedule", bytes.NewBufferString(body))
		r.SetPathValue("eventID", testEventID)
		ctrl.Reschedule(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("missing start_time", func(t *testing.T) {
		ctrl := newEventController(&fakeEventService{})
		w := httptest.NewRecorder()
		r := httptest.NewRequest("PUT", "/events/"+testEventID+"/schedule", bytes.NewBufferString(`{}`))
		r.SetPathValue("eventID", testEventID)
		ctrl.Reschedule(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEventController_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := &fakeEventService{}
		ctrl := newEventController(svc)
		w := httptest.NewRecorder()
		r := httptest.NewRequest("DELETE", "/events/"+testEventID, nil)
		r.SetPathValue("eventID", testEventID)
		ctrl.Delete(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, testEventID, svc.lastDeleteID)
	})
	t.Run("not found", func(t *testing.T) {
		ctrl := newEventController(&fakeEventService{deleteErr: domain.ErrNotFound})
		w := httptest.NewRecorder()
		r := httptest.NewRequest("DELETE", "/events/"+testEventID, nil)
		r.SetPathValue("eventID", testEventID)
		ctrl.Delete(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
