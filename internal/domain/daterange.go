package domain

import "time"

// DateRange is a query window over the agenda. A nil End means the window
// is open-ended (extends indefinitely forward). A window where Start
// equals End is a single instant.
type DateRange struct {
	Start time.Time
	End   *time.Time
}

// NewDateRange returns a validated DateRange or a *ValidationError when
// End precedes Start.
func NewDateRange(start time.Time, end *time.Time) (DateRange, error) {
	if start.IsZero() {
		return DateRange{}, newValidationError(ReasonInvalidDateRange, "window start time is required")
	}
	if end != nil && end.Before(start) {
		return DateRange{}, newValidationError(ReasonInvalidDateRange, "window end time must not precede its start time")
	}
	return DateRange{Start: start, End: copyTimePtr(end)}, nil
}

// Overlaps reports whether an interval [start, end] intersects the window.
// A nil end on either side is treated as extending indefinitely forward.
// Bounds are inclusive: an event ending exactly at the window start, or
// starting exactly at the window end, overlaps.
func (r DateRange) Overlaps(start time.Time, end *time.Time) bool {
	if r.End != nil && start.After(*r.End) {
		return false
	}
	if end != nil && end.Before(r.Start) {
		return false
	}
	return true
}

// FilterOverlapping returns the events whose interval overlaps the window,
// preserving the order of the input slice.
func FilterOverlapping(window DateRange, events []*AgendaEvent) []*AgendaEvent {
	var out []*AgendaEvent
	for _, e := range events {
		if window.Overlaps(e.StartTime, e.EndTime) {
			out = append(out, e)
		}
	}
	return out
}
