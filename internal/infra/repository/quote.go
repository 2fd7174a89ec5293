package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"backline/internal/domain/booking"
	"backline/internal/infra"
	"backline/internal/usecase/shared"
)

type QuoteRepository struct{}

func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{}
}

type quoteLineRecord struct {
	ModelID   int64   `json:"model_id"`
	ModelName string  `json:"model_name"`
	Requested int     `json:"requested"`
	Assigned  int     `json:"assigned"`
	Shortfall int     `json:"shortfall"`
	ItemIDs   []int64 `json:"item_ids"`
}

type accessoryLineRecord struct {
	ModelName string  `json:"model_name"`
	Required  int     `json:"required"`
	Assigned  int     `json:"assigned"`
	ItemIDs   []int64 `json:"item_ids"`
}

func (r *QuoteRepository) Create(ctx context.Context, db shared.DB, quote *booking.Quote) (uuid.UUID, error) {
	lines := make([]quoteLineRecord, len(quote.Lines))
	for i, line := range quote.Lines {
		itemIDs := line.ItemIDs
		if itemIDs == nil {
			itemIDs = []int64{}
		}
		lines[i] = quoteLineRecord{
			ModelID:   line.ModelID,
			ModelName: line.ModelName,
			Requested: line.Requested,
			Assigned:  line.Assigned(),
			Shortfall: line.Shortfall(),
			ItemIDs:   itemIDs,
		}
	}

	accessories := make([]accessoryLineRecord, len(quote.Accessories))
	for i, acc := range quote.Accessories {
		itemIDs := acc.ItemIDs
		if itemIDs == nil {
			itemIDs = []int64{}
		}
		accessories[i] = accessoryLineRecord{
			ModelName: acc.ModelName,
			Required:  acc.Required,
			Assigned:  len(acc.ItemIDs),
			ItemIDs:   itemIDs,
		}
	}

	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode quote lines", err, infra.KindInvalidData)
	}
	accessoriesJSON, err := json.Marshal(accessories)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode quote accessories", err, infra.KindInvalidData)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO quotes (
			id, title, start_time, end_time, buffer_before_min, buffer_after_min,
			lines, accessories, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		quote.ID,
		quote.Title,
		quote.Window.Start(),
		quote.Window.End(),
		quote.Buffers.BeforeMin,
		quote.Buffers.AfterMin,
		linesJSON,
		accessoriesJSON,
		quote.CreatedAt,
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create quote", err)
	}
	return quote.ID, nil
}
