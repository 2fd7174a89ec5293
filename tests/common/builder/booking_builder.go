//go:build unit || e2e

package builder

import (
	"time"

	reqdto "backline/internal/handler/dto/request"
)

type BookingBuilder struct {
	Title           string
	StartTime       time.Time
	EndTime         time.Time
	BufferBeforeMin *int
	BufferAfterMin  *int
	ItemIDs         []int64
	Location        *string
	ContactName     *string
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	location := "Main Hall"
	contact := "Dana Reyes"
	return &BookingBuilder{
		Title:       "Corporate Summer Party",
		StartTime:   start,
		EndTime:     start.Add(4 * time.Hour),
		ItemIDs:     []int64{1},
		Location:    &location,
		ContactName: &contact,
	}
}

func (b *BookingBuilder) WithTitle(title string) *BookingBuilder {
	b.Title = title
	return b
}

func (b *BookingBuilder) WithWindow(start, end time.Time) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithBuffers(beforeMin, afterMin int) *BookingBuilder {
	b.BufferBeforeMin = &beforeMin
	b.BufferAfterMin = &afterMin
	return b
}

func (b *BookingBuilder) WithItems(itemIDs ...int64) *BookingBuilder {
	b.ItemIDs = itemIDs
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Title:           b.Title,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		BufferBeforeMin: b.BufferBeforeMin,
		BufferAfterMin:  b.BufferAfterMin,
		ItemIDs:         b.ItemIDs,
		Location:        b.Location,
		ContactName:     b.ContactName,
	}
}
