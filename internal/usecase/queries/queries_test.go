//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"backline/internal/domain/availability"
	"backline/internal/domain/catalog"
	"backline/internal/domain/schedule"
	"backline/internal/pkg/errs"
	"backline/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSnapshotSource struct {
	snap *availability.Snapshot
	err  error
}

func (s *stubSnapshotSource) LoadSnapshot(_ context.Context) (*availability.Snapshot, error) {
	return s.snap, s.err
}

type stubQuoteRepo struct {
	view *queries.QuoteView
	err  error
}

func (r *stubQuoteRepo) FindByID(_ context.Context, _ uuid.UUID) (*queries.QuoteView, error) {
	return r.view, r.err
}

func testSnapshot(t *testing.T) (*availability.Snapshot, schedule.Window, schedule.Buffers) {
	t.Helper()

	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	w, err := schedule.NewWindow(start, start.Add(4*time.Hour))
	require.NoError(t, err)
	b, err := schedule.NewBuffers(0, 0)
	require.NoError(t, err)

	conflictWin, err := schedule.NewWindow(start, start.Add(time.Hour))
	require.NoError(t, err)

	snap := availability.NewSnapshot(availability.SnapshotData{
		Categories: []catalog.Category{{ID: 1, Name: "Microphones"}},
		Brands:     []catalog.Brand{{ID: 1, Name: "Shure"}},
		Models: []catalog.Model{
			{ID: 1, Name: "SM58", CategoryID: 1, BrandID: 1},
			{ID: 4, Name: "XLR-Cable", CategoryID: 3, BrandID: 1},
		},
		Items: []catalog.Item{
			{ID: 10, ModelID: 1, Condition: catalog.ConditionOK},
			{ID: 11, ModelID: 1, Condition: catalog.ConditionOK},
		},
		Conflicts: []availability.ReservationConflict{
			{ItemID: 10, Window: conflictWin},
		},
		Rules: []catalog.AccessoryRule{
			{CategoryID: 1, Required: catalog.NewRuleSide(map[string]int{"XLR-Cable": 1})},
		},
	})
	return snap, w, b
}

func TestAvailabilityQueries(t *testing.T) {
	snap, w, b := testSnapshot(t)
	ctx := context.Background()

	t.Run("delegates to the snapshot", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&stubSnapshotSource{snap: snap})

		free, err := q.IsItemAvailable(ctx, 11, w, b)
		require.NoError(t, err)
		assert.True(t, free)

		busy, err := q.IsItemAvailable(ctx, 10, w, b)
		require.NoError(t, err)
		assert.False(t, busy)

		units, err := q.AssignUnits(ctx, 1, 2, w, b)
		require.NoError(t, err)
		assert.Equal(t, []int64{11}, units, "conflicted unit is skipped, shortfall is not an error")

		needs, err := q.AccessoriesForModel(ctx, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"XLR-Cable": 3}, needs.Required)
		assert.Empty(t, needs.Optional)
	})

	t.Run("propagates snapshot load failures", func(t *testing.T) {
		loadErr := errs.New("connection refused")
		q := queries.NewAvailabilityQueries(&stubSnapshotSource{err: loadErr})

		_, err := q.IsItemAvailable(ctx, 10, w, b)
		assert.ErrorIs(t, err, loadErr)

		_, err = q.AssignUnits(ctx, 1, 1, w, b)
		assert.ErrorIs(t, err, loadErr)

		_, err = q.AccessoriesForModel(ctx, 1, 1)
		assert.ErrorIs(t, err, loadErr)
	})
}

func TestQuoteQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored view", func(t *testing.T) {
		view := &queries.QuoteView{ID: uuid.New(), Title: "Corporate Summer Party"}
		q := queries.NewQuoteQueries(&stubQuoteRepo{view: view})

		got, err := q.GetQuote(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("maps a missing row to ErrQuoteNotFound", func(t *testing.T) {
		q := queries.NewQuoteQueries(&stubQuoteRepo{})

		_, err := q.GetQuote(ctx, uuid.New())
		assert.ErrorIs(t, err, queries.ErrQuoteNotFound)
	})

	t.Run("passes repository failures through", func(t *testing.T) {
		repoErr := errs.New("db down")
		q := queries.NewQuoteQueries(&stubQuoteRepo{err: repoErr})

		_, err := q.GetQuote(ctx, uuid.New())
		assert.ErrorIs(t, err, repoErr)
	})
}
