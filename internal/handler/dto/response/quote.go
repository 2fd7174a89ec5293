package response

import (
	"time"

	"github.com/google/uuid"

	"backline/internal/domain/booking"
	"backline/internal/usecase/queries"
)

type QuoteLineResponse struct {
	ModelID   int64   `json:"modelId"`
	ModelName string  `json:"modelName"`
	Requested int     `json:"requested"`
	Assigned  int     `json:"assigned"`
	Shortfall int     `json:"shortfall"`
	ItemIDs   []int64 `json:"itemIds"`
}

type AccessoryLineResponse struct {
	ModelName string  `json:"modelName"`
	Required  int     `json:"required"`
	Assigned  int     `json:"assigned"`
	ItemIDs   []int64 `json:"itemIds"`
}

type QuoteResponse struct {
	ID              uuid.UUID               `json:"id"`
	Title           string                  `json:"title"`
	StartTime       time.Time               `json:"startTime"`
	EndTime         time.Time               `json:"endTime"`
	BufferBeforeMin int                     `json:"bufferBeforeMin"`
	BufferAfterMin  int                     `json:"bufferAfterMin"`
	Lines           []QuoteLineResponse     `json:"lines"`
	Accessories     []AccessoryLineResponse `json:"accessories"`
	HasShortfall    bool                    `json:"hasShortfall"`
	CreatedAt       time.Time               `json:"createdAt"`
}

func FromQuote(q *booking.Quote) *QuoteResponse {
	lines := make([]QuoteLineResponse, len(q.Lines))
	for i, line := range q.Lines {
		lines[i] = QuoteLineResponse{
			ModelID:   line.ModelID,
			ModelName: line.ModelName,
			Requested: line.Requested,
			Assigned:  line.Assigned(),
			Shortfall: line.Shortfall(),
			ItemIDs:   emptyIfNil(line.ItemIDs),
		}
	}

	accessories := make([]AccessoryLineResponse, len(q.Accessories))
	for i, acc := range q.Accessories {
		accessories[i] = AccessoryLineResponse{
			ModelName: acc.ModelName,
			Required:  acc.Required,
			Assigned:  len(acc.ItemIDs),
			ItemIDs:   emptyIfNil(acc.ItemIDs),
		}
	}

	return &QuoteResponse{
		ID:              q.ID,
		Title:           q.Title,
		StartTime:       q.Window.Start(),
		EndTime:         q.Window.End(),
		BufferBeforeMin: q.Buffers.BeforeMin,
		BufferAfterMin:  q.Buffers.AfterMin,
		Lines:           lines,
		Accessories:     accessories,
		HasShortfall:    q.HasShortfall(),
		CreatedAt:       q.CreatedAt,
	}
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	lines := make([]QuoteLineResponse, len(v.Lines))
	for i, line := range v.Lines {
		lines[i] = QuoteLineResponse{
			ModelID:   line.ModelID,
			ModelName: line.ModelName,
			Requested: line.Requested,
			Assigned:  line.Assigned,
			Shortfall: line.Shortfall,
			ItemIDs:   emptyIfNil(line.ItemIDs),
		}
	}

	accessories := make([]AccessoryLineResponse, len(v.Accessories))
	for i, acc := range v.Accessories {
		accessories[i] = AccessoryLineResponse{
			ModelName: acc.ModelName,
			Required:  acc.Required,
			Assigned:  acc.Assigned,
			ItemIDs:   emptyIfNil(acc.ItemIDs),
		}
	}

	return &QuoteResponse{
		ID:              v.ID,
		Title:           v.Title,
		StartTime:       v.StartTime,
		EndTime:         v.EndTime,
		BufferBeforeMin: v.BufferBeforeMin,
		BufferAfterMin:  v.BufferAfterMin,
		Lines:           lines,
		Accessories:     accessories,
		HasShortfall:    v.HasShortfall,
		CreatedAt:       v.CreatedAt,
	}
}

func emptyIfNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
