package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"backline/internal/domain/availability"
	"backline/internal/domain/booking"
	"backline/internal/domain/schedule"
)

// DB is the subset of pgx a repository needs, satisfied by both a pool
// and a transaction.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UnitOfWork interface {
	// Within: serializable transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db DB) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db DB) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Quotes() QuoteRepository
	DB() DB
}

// SnapshotSource loads a consistent availability snapshot of the whole
// inventory in a single read.
type SnapshotSource interface {
	LoadSnapshot(ctx context.Context) (*availability.Snapshot, error)
}

// ItemState is the per-item schedule view a commit re-checks inside its
// transaction. Conflict windows already include their owners' buffers;
// maintenance holds are included raw.
type ItemState struct {
	ItemID    int64
	Usable    bool
	Conflicts []schedule.Window
}

type BookingRepository interface {
	ItemStates(ctx context.Context, db DB, itemIDs []int64) (map[int64]ItemState, error)
	CreateEvent(ctx context.Context, db DB, event *booking.Event) (int64, error)
	CreateReservations(ctx context.Context, db DB, eventID int64, itemIDs []int64, status booking.Status) ([]int64, error)
}

type QuoteRepository interface {
	Create(ctx context.Context, db DB, quote *booking.Quote) (uuid.UUID, error)
}
