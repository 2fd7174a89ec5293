package booking

import (
	"time"

	"github.com/google/uuid"

	"backline/internal/domain/schedule"
)

// CartLine is one requested model with a quantity.
type CartLine struct {
	ModelID   int64
	ModelName string
	Qty       int
}

type Cart []CartLine

// LineResult is the availability outcome for a single cart line.
type LineResult struct {
	ModelID   int64
	ModelName string
	Requested int
	ItemIDs   []int64
}

func (r LineResult) Assigned() int {
	return len(r.ItemIDs)
}

// Shortfall is the number of requested units no usable item could cover.
func (r LineResult) Shortfall() int {
	if s := r.Requested - len(r.ItemIDs); s > 0 {
		return s
	}
	return 0
}

// AccessoryLine is an expanded accessory requirement aggregated across the
// whole cart, with the concrete units found for it.
type AccessoryLine struct {
	ModelName string
	Required  int
	ItemIDs   []int64
}

// Quote is a resolved availability check: what was asked for, what can be
// assigned, and the accessories the cart pulls in. It reserves nothing.
type Quote struct {
	ID          uuid.UUID
	Title       string
	Window      schedule.Window
	Buffers     schedule.Buffers
	Lines       []LineResult
	Accessories []AccessoryLine
	CreatedAt   time.Time
}

// AssignedItemIDs is the full assignment the quote proposes, main lines
// first then accessories, deduplicated.
func (q Quote) AssignedItemIDs() []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	add := func(itemIDs []int64) {
		for _, id := range itemIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, line := range q.Lines {
		add(line.ItemIDs)
	}
	for _, acc := range q.Accessories {
		add(acc.ItemIDs)
	}
	return ids
}

// HasShortfall reports whether any main line or accessory could not be
// fully covered.
func (q Quote) HasShortfall() bool {
	for _, line := range q.Lines {
		if line.Shortfall() > 0 {
			return true
		}
	}
	for _, acc := range q.Accessories {
		if acc.Required > len(acc.ItemIDs) {
			return true
		}
	}
	return false
}
