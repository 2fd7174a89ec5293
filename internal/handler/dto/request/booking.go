package request

import (
	"strings"
	"time"

	"backline/internal/domain/booking"
	"backline/internal/domain/schedule"
	"backline/internal/pkg/config"
)

type CreateBookingRequest struct {
	Title           string    `json:"title" binding:"required"`
	StartTime       time.Time `json:"start_time" binding:"required"`
	EndTime         time.Time `json:"end_time" binding:"required"`
	BufferBeforeMin *int      `json:"buffer_before_min,omitempty"`
	BufferAfterMin  *int      `json:"buffer_after_min,omitempty"`
	ItemIDs         []int64   `json:"item_ids"`
	Location        *string   `json:"location,omitempty"`
	ContactName     *string   `json:"contact_name,omitempty"`
	ContactPhone    *string   `json:"contact_phone,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
}

func (r CreateBookingRequest) Window() (schedule.Window, error) {
	return schedule.NewWindow(r.StartTime, r.EndTime)
}

func (r CreateBookingRequest) Buffers(cfg config.BookingConfig) (schedule.Buffers, error) {
	return buffersOrDefault(r.BufferBeforeMin, r.BufferAfterMin, cfg)
}

func (r CreateBookingRequest) Details() booking.EventDetails {
	return booking.EventDetails{
		Location:     trimmed(r.Location),
		ContactName:  trimmed(r.ContactName),
		ContactPhone: trimmed(r.ContactPhone),
		Notes:        trimmed(r.Notes),
	}
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
