package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidWindow  = errors.New("window end must be after start")
	ErrNegativeBuffer = errors.New("buffer minutes cannot be negative")
)

// Window is a half-open time interval [start, end).
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !end.After(start) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

func (w Window) IsZero() bool {
	return w.start.IsZero() && w.end.IsZero()
}

// Buffered expands the window by the buffer padding on each side.
func (w Window) Buffered(b Buffers) Window {
	return Window{
		start: w.start.Add(-time.Duration(b.BeforeMin) * time.Minute),
		end:   w.end.Add(time.Duration(b.AfterMin) * time.Minute),
	}
}

// Overlaps reports whether the two windows share any interior point.
// Windows that merely touch at an endpoint do not overlap: a booking is
// allowed to end exactly when another's buffer begins.
func (w Window) Overlaps(other Window) bool {
	return w.start.Before(other.end) && w.end.After(other.start)
}

func (w Window) String() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

// Buffers is the setup/teardown padding around an event, in minutes.
type Buffers struct {
	BeforeMin int
	AfterMin  int
}

func NewBuffers(beforeMin, afterMin int) (Buffers, error) {
	if beforeMin < 0 || afterMin < 0 {
		return Buffers{}, ErrNegativeBuffer
	}
	return Buffers{BeforeMin: beforeMin, AfterMin: afterMin}, nil
}

func (b Buffers) IsZero() bool {
	return b.BeforeMin == 0 && b.AfterMin == 0
}
