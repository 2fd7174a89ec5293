//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"backline/internal/domain/availability"
	"backline/internal/domain/booking"
	"backline/internal/domain/catalog"
	"backline/internal/domain/schedule"
	"backline/internal/usecase/shared"
)

func win(t *testing.T, start, end string) schedule.Window {
	t.Helper()
	day := "2026-06-01T"
	s, err := time.Parse(time.RFC3339, day+start+":00Z")
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, day+end+":00Z")
	require.NoError(t, err)
	w, err := schedule.NewWindow(s, e)
	require.NoError(t, err)
	return w
}

func noBuffers(t *testing.T) schedule.Buffers {
	t.Helper()
	b, err := schedule.NewBuffers(0, 0)
	require.NoError(t, err)
	return b
}

func ruleSide(t *testing.T, raw string) catalog.RuleSide {
	t.Helper()
	side, err := catalog.ParseRuleSide(raw)
	require.NoError(t, err)
	return side
}

type fakeSnapshotSource struct {
	snapshot *availability.Snapshot
	err      error
}

func (f *fakeSnapshotSource) LoadSnapshot(context.Context) (*availability.Snapshot, error) {
	return f.snapshot, f.err
}

type fakeBookingRepo struct {
	states         map[int64]shared.ItemState
	statesErr      error
	nextEventID    int64
	createEventErr error

	createdEvent    *booking.Event
	reservedEventID int64
	reservedItemIDs []int64
	reservedStatus  booking.Status
	reservationIDs  []int64
	reservationsErr error
}

func (f *fakeBookingRepo) ItemStates(_ context.Context, _ shared.DB, _ []int64) (map[int64]shared.ItemState, error) {
	return f.states, f.statesErr
}

func (f *fakeBookingRepo) CreateEvent(_ context.Context, _ shared.DB, event *booking.Event) (int64, error) {
	if f.createEventErr != nil {
		return 0, f.createEventErr
	}
	f.createdEvent = event
	return f.nextEventID, nil
}

func (f *fakeBookingRepo) CreateReservations(_ context.Context, _ shared.DB, eventID int64, itemIDs []int64, status booking.Status) ([]int64, error) {
	if f.reservationsErr != nil {
		return nil, f.reservationsErr
	}
	f.reservedEventID = eventID
	f.reservedItemIDs = itemIDs
	f.reservedStatus = status
	ids := make([]int64, len(itemIDs))
	for i := range itemIDs {
		ids[i] = int64(i + 1)
	}
	f.reservationIDs = ids
	return ids, nil
}

type fakeQuoteRepo struct {
	created *booking.Quote
	err     error
}

func (f *fakeQuoteRepo) Create(_ context.Context, _ shared.DB, quote *booking.Quote) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	f.created = quote
	return quote.ID, nil
}

type fakeTx struct {
	bookings *fakeBookingRepo
	quotes   *fakeQuoteRepo
}

func (f *fakeTx) Bookings() shared.BookingRepository { return f.bookings }
func (f *fakeTx) Quotes() shared.QuoteRepository     { return f.quotes }
func (f *fakeTx) DB() shared.DB                      { return nil }

type fakeUnitOfWork struct {
	tx  *fakeTx
	err error
}

func (f *fakeUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx, f.tx)
}

func (f *fakeUnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db shared.DB) error) error {
	return fn(ctx, nil)
}

func (f *fakeUnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, db shared.DB) error) error {
	return fn(ctx, nil)
}
