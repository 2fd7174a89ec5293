package booking

import (
	"errors"
	"strings"
	"time"

	"backline/internal/domain/schedule"
)

var ErrEmptyTitle = errors.New("event title must not be empty")

// EventDetails carries the free-form contact fields attached to an event.
type EventDetails struct {
	Location     string
	ContactName  string
	ContactPhone string
	Notes        string
}

// Event is a booked engagement: a rental window plus the buffers that pad
// it for prep and return handling.
type Event struct {
	id      int64
	title   string
	window  schedule.Window
	buffers schedule.Buffers
	details EventDetails
	status  Status
}

func NewEvent(title string, window schedule.Window, buffers schedule.Buffers, details EventDetails) (*Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Event{
		title:   title,
		window:  window,
		buffers: buffers,
		details: details,
		status:  StatusConfirmed,
	}, nil
}

// ReconstructEvent rebuilds an Event from persisted state without
// revalidating, for repository use.
func ReconstructEvent(id int64, title string, window schedule.Window, buffers schedule.Buffers, details EventDetails, status Status) *Event {
	return &Event{
		id:      id,
		title:   title,
		window:  window,
		buffers: buffers,
		details: details,
		status:  status,
	}
}

func (e *Event) ID() int64                 { return e.id }
func (e *Event) Title() string             { return e.title }
func (e *Event) Window() schedule.Window   { return e.window }
func (e *Event) Buffers() schedule.Buffers { return e.buffers }
func (e *Event) Details() EventDetails     { return e.details }
func (e *Event) Status() Status            { return e.status }

// EffectiveWindow is the span an event actually occupies on the calendar,
// rental window padded by its buffers.
func (e *Event) EffectiveWindow() schedule.Window {
	return e.window.Buffered(e.buffers)
}

// Reservation ties one physical item to one event.
type Reservation struct {
	ID        int64
	EventID   int64
	ItemID    int64
	Status    Status
	CreatedAt time.Time
}
