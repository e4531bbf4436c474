package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"agendahub/internal/domain"
)

// MinimumLeadTime is how far in the future an event must start at creation
// time. The bound is inclusive: a start of exactly now+MinimumLeadTime is
// accepted.
const MinimumLeadTime = 24 * time.Hour

type eventService struct {
	events             domain.EventRepository
	categories         domain.CategoryRepository
	email              domain.EmailService
	logger             *slog.Logger
	now                func() time.Time
	autoCreateCategory bool
	notifyAddress      string
	contextTimeout     time.Duration
}

// NewEventService returns the EventService implementation. The clock is
// injected so the lead-time rule is deterministic under test; production
// wiring passes time.Now. When autoCreateCategory is true, creating an
// event with an unknown category name creates the category; otherwise the
// category must pre-exist. notifyAddress may be empty to disable
// confirmation emails.
func NewEventService(
	events domain.EventRepository,
	categories domain.CategoryRepository,
	email domain.EmailService,
	logger *slog.Logger,
	now func() time.Time,
	autoCreateCategory bool,
	notifyAddress string,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		events:             events,
		categories:         categories,
		email:              email,
		logger:             logger,
		now:                now,
		autoCreateCategory: autoCreateCategory,
		notifyAddress:      notifyAddress,
		contextTimeout:     timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, name string, description *string, start time.Time, end *time.Time, categoryName string) (*domain.AgendaEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	category, err := s.resolveCategory(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	event, err := domain.NewAgendaEvent(name, description, start, end, category)
	if err != nil {
		return nil, err
	}

	if err := checkLeadTime(event.StartTime, s.now()); err != nil {
		return nil, err
	}

	stamp := s.now()
	event.CreatedAt = stamp
	event.UpdatedAt = stamp

	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	if s.notifyAddress != "" && s.email != nil {
		if err := s.email.SendEventCreated(ctx, s.notifyAddress, event); err != nil {
			s.logger.WarnContext(ctx, "confirmation email failed", "event_id", event.ID, "err", err)
		}
	}

	return event, nil
}

// checkLeadTime enforces the creation lead-time rule against an explicit
// current moment. It never reads the clock itself.
func checkLeadTime(start, now time.Time) error {
	if start.Before(now.Add(MinimumLeadTime)) {
		return domain.ErrCreateTooSoon
	}
	return nil
}

// resolveCategory looks up the category by exact name. On a miss it either
// creates the category (autoCreateCategory) or fails with
// ErrCategoryNotFound. An empty name is left for the entity factory to
// reject as a missing category.
func (s *eventService) resolveCategory(ctx context.Context, name string) (*domain.EventCategory, error) {
	if name == "" {
		return nil, nil
	}
	category, err := s.categories.GetByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, fmt.Errorf("resolve category %q: %w", name, err)
	}
	if !s.autoCreateCategory {
		return nil, domain.ErrCategoryNotFound
	}
	category, err = domain.NewEventCategory(name)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("auto-create category %q: %w", name, err)
	}
	return category, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.AgendaEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.events.GetByID(ctx, id)
}

func (s *eventService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.AgendaEvent, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := params.Validate(); err != nil {
		return nil, 0, err
	}
	events, err := s.events.List(ctx, params.Offset(), params.Limit())
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	total, err := s.events.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}
	return events, total, nil
}

func (s *eventService) ListEventsInWindow(ctx context.Context, window domain.DateRange) ([]*domain.AgendaEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.events.ListWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("list events in window: %w", err)
	}
	// The repository narrows with the same predicate in SQL; re-filtering
	// keeps the overlap semantics independent of the storage implementation.
	return domain.FilterOverlapping(window, events), nil
}

func (s *eventService) RescheduleEvent(ctx context.Context, id string, start time.Time, end *time.Time) (*domain.AgendaEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := event.ChangeSchedule(start, end)
	if err != nil {
		return nil, err
	}
	updated.UpdatedAt = s.now()
	if err := s.events.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update event %s: %w", id, err)
	}
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.events.Delete(ctx, id)
}
