package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

// Bounds for AgendaEvent fields, enforced by the factory and every
// mutation operation.
const (
	EventNameMinLen        = 3
	EventNameMaxLen        = 50
	EventDescriptionMaxLen = 500
)

// AgendaEvent is a scheduled entry in the agenda. ID is assigned by the
// repository on create and is empty before the first save. Instances are
// only produced by NewAgendaEvent and the named mutation operations, all
// of which re-validate the structural invariants.
type AgendaEvent struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	StartTime   time.Time      `json:"start_time"`
	EndTime     *time.Time     `json:"end_time,omitempty"`
	CategoryID  string         `json:"category_id"`
	Category    *EventCategory `json:"category,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// NewAgendaEvent returns a validated AgendaEvent or a *ValidationError.
// Validation here is purely structural: no clock and no storage state is
// consulted, so results are deterministic for a given input.
func NewAgendaEvent(name string, description *string, start time.Time, end *time.Time, category *EventCategory) (*AgendaEvent, error) {
	name = strings.TrimSpace(name)
	if err := validateEventName(name); err != nil {
		return nil, err
	}
	if err := validateEventDescription(description); err != nil {
		return nil, err
	}
	if err := validateEventSchedule(start, end); err != nil {
		return nil, err
	}
	if category == nil {
		return nil, newValidationError(ReasonMissingCategory, "event category is required")
	}
	return &AgendaEvent{
		Name:        name,
		Description: copyStringPtr(description),
		StartTime:   start,
		EndTime:     copyTimePtr(end),
		CategoryID:  category.ID,
		Category:    category,
	}, nil
}

// ChangeSchedule returns a copy of the event with the new start and
// optional end, or a *ValidationError when end precedes start. The
// receiver is not modified.
func (e *AgendaEvent) ChangeSchedule(start time.Time, end *time.Time) (*AgendaEvent, error) {
	if err := validateEventSchedule(start, end); err != nil {
		return nil, err
	}
	out := *e
	out.StartTime = start
	out.EndTime = copyTimePtr(end)
	return &out, nil
}

// Rename returns a copy of the event with the new validated name.
func (e *AgendaEvent) Rename(name string) (*AgendaEvent, error) {
	name = strings.TrimSpace(name)
	if err := validateEventName(name); err != nil {
		return nil, err
	}
	out := *e
	out.Name = name
	return &out, nil
}

// ChangeDescription returns a copy of the event with the new optional
// description.
func (e *AgendaEvent) ChangeDescription(description *string) (*AgendaEvent, error) {
	if err := validateEventDescription(description); err != nil {
		return nil, err
	}
	out := *e
	out.Description = copyStringPtr(description)
	return &out, nil
}

func validateEventName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < EventNameMinLen || n > EventNameMaxLen {
		return newValidationError(ReasonInvalidName,
			"event name must be between %d and %d characters", EventNameMinLen, EventNameMaxLen)
	}
	return nil
}

func validateEventDescription(description *string) error {
	if description != nil && utf8.RuneCountInString(*description) > EventDescriptionMaxLen {
		return newValidationError(ReasonInvalidDescription,
			"event description must be at most %d characters", EventDescriptionMaxLen)
	}
	return nil
}

func validateEventSchedule(start time.Time, end *time.Time) error {
	if start.IsZero() {
		return newValidationError(ReasonInvalidDateRange, "event start time is required")
	}
	if end != nil && end.Before(start) {
		return newValidationError(ReasonInvalidDateRange, "event end time must not precede its start time")
	}
	return nil
}

func copyStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// EventRepository defines the interface for agenda event storage.
type EventRepository interface {
	Create(ctx context.Context, event *AgendaEvent) error
	GetByID(ctx context.Context, id string) (*AgendaEvent, error)
	// List returns events ordered by start time ascending.
	List(ctx context.Context, offset, limit int) ([]*AgendaEvent, error)
	Count(ctx context.Context) (int, error)
	// ListWindow returns events overlapping the window, ordered by start
	// time ascending.
	ListWindow(ctx context.Context, window DateRange) ([]*AgendaEvent, error)
	CountByCategoryID(ctx context.Context, categoryID string) (int, error)
	Update(ctx context.Context, event *AgendaEvent) error
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for agenda events.
type EventService interface {
	CreateEvent(ctx context.Context, name string, description *string, start time.Time, end *time.Time, categoryName string) (*AgendaEvent, error)
	GetEvent(ctx context.Context, id string) (*AgendaEvent, error)
	ListEvents(ctx context.Context, params PaginationParams) (events []*AgendaEvent, total int, err error)
	ListEventsInWindow(ctx context.Context, window DateRange) ([]*AgendaEvent, error)
	RescheduleEvent(ctx context.Context, id string, start time.Time, end *time.Time) (*AgendaEvent, error)
	DeleteEvent(ctx context.Context, id string) error
}
