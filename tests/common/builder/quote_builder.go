//go:build unit || e2e

package builder

import (
	"time"

	reqdto "backline/internal/handler/dto/request"
	"backline/internal/usecase/commands"
)

type QuoteBuilder struct {
	Title           string
	StartTime       time.Time
	EndTime         time.Time
	BufferBeforeMin *int
	BufferAfterMin  *int
	Lines           []reqdto.QuoteLineRequest
}

func NewQuoteBuilder() *QuoteBuilder {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	return &QuoteBuilder{
		Title:     "Corporate Summer Party",
		StartTime: start,
		EndTime:   start.Add(4 * time.Hour),
		Lines: []reqdto.QuoteLineRequest{
			{ModelID: 1, Qty: 1},
		},
	}
}

func (b *QuoteBuilder) WithTitle(title string) *QuoteBuilder {
	b.Title = title
	return b
}

func (b *QuoteBuilder) WithWindow(start, end time.Time) *QuoteBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *QuoteBuilder) WithBuffers(beforeMin, afterMin int) *QuoteBuilder {
	b.BufferBeforeMin = &beforeMin
	b.BufferAfterMin = &afterMin
	return b
}

func (b *QuoteBuilder) WithLines(lines ...reqdto.QuoteLineRequest) *QuoteBuilder {
	b.Lines = lines
	return b
}

func (b *QuoteBuilder) BuildCreateRequestDTO() reqdto.CreateQuoteRequest {
	return reqdto.CreateQuoteRequest{
		Title:           b.Title,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		BufferBeforeMin: b.BufferBeforeMin,
		BufferAfterMin:  b.BufferAfterMin,
		Lines:           b.Lines,
	}
}

func (b *QuoteBuilder) BuildCommandLines() []commands.QuoteLine {
	lines := make([]commands.QuoteLine, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = commands.QuoteLine{ModelID: l.ModelID, Qty: l.Qty}
	}
	return lines
}
