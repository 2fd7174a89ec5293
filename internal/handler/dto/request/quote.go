package request

import (
	"time"

	"backline/internal/domain/schedule"
	"backline/internal/pkg/config"
)

type QuoteLineRequest struct {
	ModelID int64 `json:"model_id" binding:"required"`
	Qty     int   `json:"qty" binding:"required,min=1"`
}

type CreateQuoteRequest struct {
	Title           string             `json:"title" binding:"required"`
	StartTime       time.Time          `json:"start_time" binding:"required"`
	EndTime         time.Time          `json:"end_time" binding:"required"`
	BufferBeforeMin *int               `json:"buffer_before_min,omitempty"`
	BufferAfterMin  *int               `json:"buffer_after_min,omitempty"`
	Lines           []QuoteLineRequest `json:"lines" binding:"required,min=1,dive"`
}

func (r CreateQuoteRequest) Window() (schedule.Window, error) {
	return schedule.NewWindow(r.StartTime, r.EndTime)
}

// Buffers falls back to the configured defaults for any side the request
// leaves unset.
func (r CreateQuoteRequest) Buffers(cfg config.BookingConfig) (schedule.Buffers, error) {
	return buffersOrDefault(r.BufferBeforeMin, r.BufferAfterMin, cfg)
}

func buffersOrDefault(before, after *int, cfg config.BookingConfig) (schedule.Buffers, error) {
	b := cfg.DefaultBufferBeforeMin
	if before != nil {
		b = *before
	}
	a := cfg.DefaultBufferAfterMin
	if after != nil {
		a = *after
	}
	return schedule.NewBuffers(b, a)
}
