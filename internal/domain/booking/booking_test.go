//go:build unit

package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backline/internal/domain/schedule"
)

func mustWindow(t *testing.T, start, end string) schedule.Window {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)
	w, err := schedule.NewWindow(s, e)
	require.NoError(t, err)
	return w
}

func TestNewEvent(t *testing.T) {
	w := mustWindow(t, "2026-06-01T10:00:00Z", "2026-06-01T14:00:00Z")
	buffers, err := schedule.NewBuffers(60, 60)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		ev, err := NewEvent("Club Night", w, buffers, EventDetails{Location: "Koenji"})
		require.NoError(t, err)
		assert.Equal(t, "Club Night", ev.Title())
		assert.Equal(t, StatusConfirmed, ev.Status())
		assert.Equal(t, "Koenji", ev.Details().Location)
	})

	t.Run("title is trimmed", func(t *testing.T) {
		ev, err := NewEvent("  Club Night  ", w, buffers, EventDetails{})
		require.NoError(t, err)
		assert.Equal(t, "Club Night", ev.Title())
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := NewEvent("   ", w, buffers, EventDetails{})
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})
}

func TestEventEffectiveWindow(t *testing.T) {
	w := mustWindow(t, "2026-06-01T10:00:00Z", "2026-06-01T14:00:00Z")
	buffers, err := schedule.NewBuffers(30, 90)
	require.NoError(t, err)

	ev, err := NewEvent("Load-in Heavy", w, buffers, EventDetails{})
	require.NoError(t, err)

	eff := ev.EffectiveWindow()
	assert.Equal(t, "2026-06-01T09:30:00Z", eff.Start().Format(time.RFC3339))
	assert.Equal(t, "2026-06-01T15:30:00Z", eff.End().Format(time.RFC3339))
}

func TestStatusBlocks(t *testing.T) {
	assert.True(t, StatusHeld.Blocks())
	assert.True(t, StatusConfirmed.Blocks())
	assert.False(t, StatusCancelled.Blocks())
	assert.False(t, Status("UNKNOWN").Blocks())

	assert.True(t, StatusHeld.IsValid())
	assert.False(t, Status("UNKNOWN").IsValid())
}

func TestLineResultShortfall(t *testing.T) {
	full := LineResult{Requested: 2, ItemIDs: []int64{10, 11}}
	assert.Equal(t, 2, full.Assigned())
	assert.Equal(t, 0, full.Shortfall())

	partial := LineResult{Requested: 3, ItemIDs: []int64{10}}
	assert.Equal(t, 2, partial.Shortfall())

	empty := LineResult{Requested: 2}
	assert.Equal(t, 2, empty.Shortfall())
}

func TestQuoteAssignedItemIDs(t *testing.T) {
	q := Quote{
		Lines: []LineResult{
			{ModelName: "SM58", Requested: 2, ItemIDs: []int64{10, 11}},
			{ModelName: "QSC-K12", Requested: 1, ItemIDs: []int64{20}},
		},
		Accessories: []AccessoryLine{
			{ModelName: "XLR-Cable", Required: 3, ItemIDs: []int64{30, 31, 10}},
		},
	}

	assert.Equal(t, []int64{10, 11, 20, 30, 31}, q.AssignedItemIDs())
	assert.False(t, q.HasShortfall())

	q.Accessories[0].ItemIDs = q.Accessories[0].ItemIDs[:1]
	assert.True(t, q.HasShortfall())
}
