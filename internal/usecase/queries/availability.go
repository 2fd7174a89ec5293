package queries

import (
	"context"

	"backline/internal/domain/schedule"
	"backline/internal/usecase/shared"
)

// AccessoryNeeds is the expanded accessory demand for one model line,
// keyed by accessory model name.
type AccessoryNeeds struct {
	Required map[string]int `json:"required"`
	Optional map[string]int `json:"optional"`
}

type AvailabilityQueries interface {
	// IsItemAvailable answers whether a single unit is free over the
	// window once the candidate buffers are applied.
	IsItemAvailable(ctx context.Context, itemID int64, w schedule.Window, b schedule.Buffers) (bool, error)
	// AssignUnits proposes concrete units for qty rentals of a model.
	AssignUnits(ctx context.Context, modelID int64, qty int, w schedule.Window, b schedule.Buffers) ([]int64, error)
	// AccessoriesForModel expands the model's category rule for count units.
	AccessoriesForModel(ctx context.Context, modelID int64, count int) (AccessoryNeeds, error)
}

type availabilityQueriesImpl struct {
	snapshots shared.SnapshotSource
}

func NewAvailabilityQueries(snapshots shared.SnapshotSource) AvailabilityQueries {
	return &availabilityQueriesImpl{snapshots: snapshots}
}

func (q *availabilityQueriesImpl) IsItemAvailable(ctx context.Context, itemID int64, w schedule.Window, b schedule.Buffers) (bool, error) {
	snap, err := q.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return false, err
	}
	return snap.IsItemAvailable(itemID, w, b), nil
}

func (q *availabilityQueriesImpl) AssignUnits(ctx context.Context, modelID int64, qty int, w schedule.Window, b schedule.Buffers) ([]int64, error) {
	snap, err := q.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.AssignUnits(modelID, qty, w, b), nil
}

func (q *availabilityQueriesImpl) AccessoriesForModel(ctx context.Context, modelID int64, count int) (AccessoryNeeds, error) {
	snap, err := q.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return AccessoryNeeds{}, err
	}
	required, optional := snap.AccessoriesForModel(modelID, count)
	return AccessoryNeeds{Required: required, Optional: optional}, nil
}
