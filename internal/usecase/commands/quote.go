package commands

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"backline/internal/domain/availability"
	"backline/internal/domain/booking"
	"backline/internal/domain/schedule"
	"backline/internal/pkg/clock"
	"backline/internal/pkg/errs"
	"backline/internal/usecase/shared"
)

var (
	ErrEmptyCart        = errs.New("cart has no lines")
	ErrUnknownModel     = errs.New("unknown model")
	ErrDomainValidation = errs.New("domain validation error")
)

type QuoteLine struct {
	ModelID int64
	Qty     int
}

type BuildQuoteParams struct {
	Title   string
	Window  schedule.Window
	Buffers schedule.Buffers
	Lines   []QuoteLine
}

type QuoteCommands interface {
	// BuildQuote resolves the cart against current availability, expands
	// accessories, persists the result and returns it. Nothing is reserved.
	BuildQuote(ctx context.Context, params BuildQuoteParams) (*booking.Quote, error)
}

type quoteUseCaseImpl struct {
	snapshots shared.SnapshotSource
	uow       shared.UnitOfWork
	clock     clock.Clock
}

func NewQuoteUseCase(snapshots shared.SnapshotSource, uow shared.UnitOfWork, clock clock.Clock) QuoteCommands {
	return &quoteUseCaseImpl{
		snapshots: snapshots,
		uow:       uow,
		clock:     clock,
	}
}

func (u *quoteUseCaseImpl) BuildQuote(ctx context.Context, params BuildQuoteParams) (*booking.Quote, error) {
	if len(params.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	snap, err := u.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	lines, err := u.resolveLines(snap, params)
	if err != nil {
		return nil, err
	}

	accessories := u.resolveAccessories(snap, params, lines)

	quote := &booking.Quote{
		ID:          uuid.New(),
		Title:       params.Title,
		Window:      params.Window,
		Buffers:     params.Buffers,
		Lines:       lines,
		Accessories: accessories,
		CreatedAt:   u.clock.Now(),
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Quotes().Create(ctx, tx.DB(), quote)
		return createErr
	})
	if err != nil {
		return nil, err
	}

	return quote, nil
}

// resolveLines assigns units per cart line against the shared snapshot.
// Earlier lines claim units first, so a line never proposes a unit an
// earlier line already took.
func (u *quoteUseCaseImpl) resolveLines(snap *availability.Snapshot, params BuildQuoteParams) ([]booking.LineResult, error) {
	taken := make(map[int64]struct{})
	lines := make([]booking.LineResult, 0, len(params.Lines))

	for _, line := range params.Lines {
		model, ok := snap.ModelByID(line.ModelID)
		if !ok {
			return nil, errs.Wrapf(ErrUnknownModel, "model id %d", line.ModelID)
		}

		candidates := snap.AssignUnits(line.ModelID, line.Qty+len(taken), params.Window, params.Buffers)
		itemIDs := pickFree(candidates, line.Qty, taken)

		lines = append(lines, booking.LineResult{
			ModelID:   line.ModelID,
			ModelName: model.Name,
			Requested: line.Qty,
			ItemIDs:   itemIDs,
		})
	}

	return lines, nil
}

// resolveAccessories sums required accessory demand across all cart lines
// by accessory model name, then assigns units for each accessory model in
// ascending name order.
func (u *quoteUseCaseImpl) resolveAccessories(snap *availability.Snapshot, params BuildQuoteParams, lines []booking.LineResult) []booking.AccessoryLine {
	totals := make(map[string]int)
	for _, line := range lines {
		required, _ := snap.AccessoriesForModel(line.ModelID, line.Requested)
		for name, qty := range required {
			totals[name] += qty
		}
	}
	if len(totals) == 0 {
		return []booking.AccessoryLine{}
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	taken := make(map[int64]struct{})
	for _, line := range lines {
		for _, id := range line.ItemIDs {
			taken[id] = struct{}{}
		}
	}

	accessories := make([]booking.AccessoryLine, 0, len(names))
	for _, name := range names {
		required := totals[name]
		acc := booking.AccessoryLine{ModelName: name, Required: required}

		modelID, ok := snap.ModelIDByName(name)
		if !ok {
			slog.Warn("accessory rule references unknown model", "model_name", name)
			accessories = append(accessories, acc)
			continue
		}

		candidates := snap.AssignUnits(modelID, required+len(taken), params.Window, params.Buffers)
		acc.ItemIDs = pickFree(candidates, required, taken)
		accessories = append(accessories, acc)
	}

	return accessories
}

func pickFree(candidates []int64, want int, taken map[int64]struct{}) []int64 {
	picked := []int64{}
	for _, id := range candidates {
		if len(picked) == want {
			break
		}
		if _, claimed := taken[id]; claimed {
			continue
		}
		taken[id] = struct{}{}
		picked = append(picked, id)
	}
	return picked
}
