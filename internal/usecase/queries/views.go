package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ModelView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	BrandName    string `json:"brand_name"`
	CategoryName string `json:"category_name"`
	UnitCount    int    `json:"unit_count"`
}

type ItemView struct {
	ID        int64  `json:"id"`
	ModelID   int64  `json:"model_id"`
	ModelName string `json:"model_name"`
	Condition string `json:"condition"`
}

type QuoteLineView struct {
	ModelID   int64   `json:"model_id"`
	ModelName string  `json:"model_name"`
	Requested int     `json:"requested"`
	Assigned  int     `json:"assigned"`
	Shortfall int     `json:"shortfall"`
	ItemIDs   []int64 `json:"item_ids"`
}

type AccessoryLineView struct {
	ModelName string  `json:"model_name"`
	Required  int     `json:"required"`
	Assigned  int     `json:"assigned"`
	ItemIDs   []int64 `json:"item_ids"`
}

type QuoteView struct {
	ID              uuid.UUID           `json:"id"`
	Title           string              `json:"title"`
	StartTime       time.Time           `json:"start_time"`
	EndTime         time.Time           `json:"end_time"`
	BufferBeforeMin int                 `json:"buffer_before_min"`
	BufferAfterMin  int                 `json:"buffer_after_min"`
	Lines           []QuoteLineView     `json:"lines"`
	Accessories     []AccessoryLineView `json:"accessories"`
	HasShortfall    bool                `json:"has_shortfall"`
	CreatedAt       time.Time           `json:"created_at"`
}
