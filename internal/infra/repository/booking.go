package repository

import (
	"context"
	"log/slog"
	"time"

	"backline/internal/domain/booking"
	"backline/internal/domain/catalog"
	"backline/internal/domain/schedule"
	"backline/internal/infra"
	"backline/internal/usecase/shared"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// ItemStates loads the current schedule for the given units as seen by the
// surrounding transaction. Reservation windows are padded with their
// event's buffers; maintenance holds count as conflicts too.
func (r *BookingRepository) ItemStates(ctx context.Context, db shared.DB, itemIDs []int64) (map[int64]shared.ItemState, error) {
	states := make(map[int64]shared.ItemState, len(itemIDs))
	if len(itemIDs) == 0 {
		return states, nil
	}

	rows, err := db.Query(ctx, `SELECT id, condition FROM items WHERE id = ANY($1)`, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load items", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id        int64
			condition string
		)
		if err := rows.Scan(&id, &condition); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item", err)
		}
		item := catalog.Item{ID: id, Condition: catalog.Condition(condition)}
		states[id] = shared.ItemState{ItemID: id, Usable: item.Usable()}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read items", err)
	}

	if err := r.appendReservedWindows(ctx, db, itemIDs, states); err != nil {
		return nil, err
	}
	if err := r.appendHeldWindows(ctx, db, itemIDs, states); err != nil {
		return nil, err
	}

	return states, nil
}

func (r *BookingRepository) appendReservedWindows(ctx context.Context, db shared.DB, itemIDs []int64, states map[int64]shared.ItemState) error {
	rows, err := db.Query(ctx, `
		SELECT res.item_id, e.start_time, e.end_time, e.buffer_before_min, e.buffer_after_min
		FROM reservations res
		JOIN events e ON e.id = res.event_id
		WHERE res.item_id = ANY($1) AND res.status IN ($2, $3)`,
		itemIDs, string(booking.StatusHeld), string(booking.StatusConfirmed))
	if err != nil {
		return infra.WrapRepoErr("failed to load reservations", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			itemID        int64
			start, end    time.Time
			before, after int
		)
		if err := rows.Scan(&itemID, &start, &end, &before, &after); err != nil {
			return infra.WrapRepoErr("failed to scan reservation", err)
		}

		w, err := schedule.NewWindow(start, end)
		if err != nil {
			slog.Warn("skipping reservation with invalid window", "item_id", itemID)
			continue
		}
		buffers, err := schedule.NewBuffers(before, after)
		if err != nil {
			slog.Warn("skipping reservation with invalid buffers", "item_id", itemID)
			continue
		}

		state := states[itemID]
		state.Conflicts = append(state.Conflicts, w.Buffered(buffers))
		states[itemID] = state
	}
	return rows.Err()
}

func (r *BookingRepository) appendHeldWindows(ctx context.Context, db shared.DB, itemIDs []int64, states map[int64]shared.ItemState) error {
	rows, err := db.Query(ctx, `
		SELECT item_id, start_time, end_time
		FROM maintenance_holds
		WHERE item_id = ANY($1)`, itemIDs)
	if err != nil {
		return infra.WrapRepoErr("failed to load maintenance holds", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			itemID     int64
			start, end time.Time
		)
		if err := rows.Scan(&itemID, &start, &end); err != nil {
			return infra.WrapRepoErr("failed to scan maintenance hold", err)
		}

		w, err := schedule.NewWindow(start, end)
		if err != nil {
			slog.Warn("skipping maintenance hold with invalid window", "item_id", itemID)
			continue
		}

		state := states[itemID]
		state.Conflicts = append(state.Conflicts, w)
		states[itemID] = state
	}
	return rows.Err()
}

// CreateEvent assigns the next sequential event id. The subquery is safe
// because commits run under serializable isolation.
func (r *BookingRepository) CreateEvent(ctx context.Context, db shared.DB, event *booking.Event) (int64, error) {
	details := event.Details()
	row := db.QueryRow(ctx, `
		INSERT INTO events (
			id, title, start_time, end_time, buffer_before_min, buffer_after_min,
			location, contact_name, contact_phone, notes, status, created_at
		)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now()
		FROM events
		RETURNING id`,
		event.Title(),
		event.Window().Start(),
		event.Window().End(),
		event.Buffers().BeforeMin,
		event.Buffers().AfterMin,
		details.Location,
		details.ContactName,
		details.ContactPhone,
		details.Notes,
		string(event.Status()),
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, infra.WrapRepoErr("failed to create event", err)
	}
	return id, nil
}

// CreateReservations inserts one row per unit with contiguous sequential
// ids starting right after the current maximum.
func (r *BookingRepository) CreateReservations(ctx context.Context, db shared.DB, eventID int64, itemIDs []int64, status booking.Status) ([]int64, error) {
	if len(itemIDs) == 0 {
		return []int64{}, nil
	}

	rows, err := db.Query(ctx, `
		INSERT INTO reservations (id, event_id, item_id, status, created_at)
		SELECT (SELECT COALESCE(MAX(id), 0) FROM reservations) + t.ord, $1, t.item_id, $3, now()
		FROM unnest($2::bigint[]) WITH ORDINALITY AS t(item_id, ord)
		RETURNING id`,
		eventID, itemIDs, string(status))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservations", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, len(itemIDs))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation ids", err)
	}
	return ids, nil
}
