package readstore

import (
	"context"
	"log/slog"
	"time"

	"backline/internal/domain/availability"
	"backline/internal/domain/booking"
	"backline/internal/domain/catalog"
	"backline/internal/domain/schedule"
	"backline/internal/infra"
	"backline/internal/usecase/queries"
	"backline/internal/usecase/shared"
)

// CatalogReadStore serves both the availability snapshot and the catalog
// list views from the same tables.
type CatalogReadStore struct {
	uow shared.UnitOfWork
}

func NewCatalogReadStore(uow shared.UnitOfWork) *CatalogReadStore {
	return &CatalogReadStore{uow: uow}
}

// LoadSnapshot reads the whole inventory and schedule inside one read-only
// transaction so every row reflects the same instant. Reservation windows
// come out already padded with their event's buffers; holds stay raw.
// Rows with bad data are skipped with a warning rather than failing the
// whole snapshot.
func (s *CatalogReadStore) LoadSnapshot(ctx context.Context) (*availability.Snapshot, error) {
	var data availability.SnapshotData

	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, db shared.DB) error {
		var err error
		if data.Categories, err = loadCategories(ctx, db); err != nil {
			return err
		}
		if data.Brands, err = loadBrands(ctx, db); err != nil {
			return err
		}
		if data.Models, err = loadModels(ctx, db); err != nil {
			return err
		}
		if data.Items, err = loadItems(ctx, db); err != nil {
			return err
		}
		if data.Conflicts, err = loadConflicts(ctx, db); err != nil {
			return err
		}
		if data.Holds, err = loadHolds(ctx, db); err != nil {
			return err
		}
		if data.Rules, err = loadRules(ctx, db); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return availability.NewSnapshot(data), nil
}

func loadCategories(ctx context.Context, db shared.DB) ([]catalog.Category, error) {
	rows, err := db.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load categories", err)
	}
	defer rows.Close()

	var out []catalog.Category
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan category", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func loadBrands(ctx context.Context, db shared.DB) ([]catalog.Brand, error) {
	rows, err := db.Query(ctx, `SELECT id, name FROM brands ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load brands", err)
	}
	defer rows.Close()

	var out []catalog.Brand
	for rows.Next() {
		var b catalog.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan brand", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func loadModels(ctx context.Context, db shared.DB) ([]catalog.Model, error) {
	rows, err := db.Query(ctx, `SELECT id, name, category_id, brand_id FROM models ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load models", err)
	}
	defer rows.Close()

	var out []catalog.Model
	for rows.Next() {
		var m catalog.Model
		if err := rows.Scan(&m.ID, &m.Name, &m.CategoryID, &m.BrandID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan model", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func loadItems(ctx context.Context, db shared.DB) ([]catalog.Item, error) {
	rows, err := db.Query(ctx, `SELECT id, model_id, condition FROM items ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load items", err)
	}
	defer rows.Close()

	var out []catalog.Item
	for rows.Next() {
		var it catalog.Item
		var condition string
		if err := rows.Scan(&it.ID, &it.ModelID, &condition); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item", err)
		}
		it.Condition = catalog.Condition(condition)
		out = append(out, it)
	}
	return out, rows.Err()
}

func loadConflicts(ctx context.Context, db shared.DB) ([]availability.ReservationConflict, error) {
	rows, err := db.Query(ctx, `
		SELECT r.item_id, e.start_time, e.end_time, e.buffer_before_min, e.buffer_after_min
		FROM reservations r
		JOIN events e ON e.id = r.event_id
		WHERE r.status IN ($1, $2)`,
		string(booking.StatusHeld), string(booking.StatusConfirmed))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservations", err)
	}
	defer rows.Close()

	var out []availability.ReservationConflict
	for rows.Next() {
		var (
			itemID        int64
			start, end    time.Time
			before, after int
		)
		if err := rows.Scan(&itemID, &start, &end, &before, &after); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}

		w, err := schedule.NewWindow(start, end)
		if err != nil {
			slog.Warn("skipping reservation with invalid window",
				"item_id", itemID, "start", start, "end", end)
			continue
		}
		buffers, err := schedule.NewBuffers(before, after)
		if err != nil {
			slog.Warn("skipping reservation with invalid buffers",
				"item_id", itemID, "before_min", before, "after_min", after)
			continue
		}

		out = append(out, availability.ReservationConflict{
			ItemID: itemID,
			Window: w.Buffered(buffers),
		})
	}
	return out, rows.Err()
}

func loadHolds(ctx context.Context, db shared.DB) ([]availability.MaintenanceHold, error) {
	rows, err := db.Query(ctx, `SELECT item_id, start_time, end_time, reason FROM maintenance_holds`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load maintenance holds", err)
	}
	defer rows.Close()

	var out []availability.MaintenanceHold
	for rows.Next() {
		var (
			itemID     int64
			start, end time.Time
			reason     *string
		)
		if err := rows.Scan(&itemID, &start, &end, &reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan maintenance hold", err)
		}

		w, err := schedule.NewWindow(start, end)
		if err != nil {
			slog.Warn("skipping maintenance hold with invalid window",
				"item_id", itemID, "start", start, "end", end)
			continue
		}

		hold := availability.MaintenanceHold{ItemID: itemID, Window: w}
		if reason != nil {
			hold.Reason = *reason
		}
		out = append(out, hold)
	}
	return out, rows.Err()
}

func loadRules(ctx context.Context, db shared.DB) ([]catalog.AccessoryRule, error) {
	rows, err := db.Query(ctx, `SELECT category_id, required_json, optional_json FROM accessory_rules`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load accessory rules", err)
	}
	defer rows.Close()

	var out []catalog.AccessoryRule
	for rows.Next() {
		var (
			categoryID         int64
			required, optional *string
		)
		if err := rows.Scan(&categoryID, &required, &optional); err != nil {
			return nil, infra.WrapRepoErr("failed to scan accessory rule", err)
		}

		rule := catalog.AccessoryRule{CategoryID: categoryID}
		rule.Required = parseRuleSide(categoryID, "required", required)
		rule.Optional = parseRuleSide(categoryID, "optional", optional)
		out = append(out, rule)
	}
	return out, rows.Err()
}

// A malformed rule payload degrades to an empty side instead of breaking
// resolution for the whole category.
func parseRuleSide(categoryID int64, sideName string, raw *string) catalog.RuleSide {
	if raw == nil {
		return catalog.RuleSide{}
	}
	side, err := catalog.ParseRuleSide(*raw)
	if err != nil {
		slog.Warn("ignoring malformed accessory rule payload",
			"category_id", categoryID, "side", sideName, "error", err.Error())
		return catalog.RuleSide{}
	}
	return side
}

func (s *CatalogReadStore) FindModels(ctx context.Context) ([]*queries.ModelView, error) {
	var out []*queries.ModelView
	err := s.uow.WithDB(ctx, func(ctx context.Context, db shared.DB) error {
		rows, err := db.Query(ctx, `
			SELECT m.id, m.name, b.name, c.name, COUNT(i.id)
			FROM models m
			JOIN brands b ON b.id = m.brand_id
			JOIN categories c ON c.id = m.category_id
			LEFT JOIN items i ON i.model_id = m.id
			GROUP BY m.id, m.name, b.name, c.name
			ORDER BY m.name`)
		if err != nil {
			return infra.WrapRepoErr("failed to find models", err)
		}
		defer rows.Close()

		for rows.Next() {
			var v queries.ModelView
			if err := rows.Scan(&v.ID, &v.Name, &v.BrandName, &v.CategoryName, &v.UnitCount); err != nil {
				return infra.WrapRepoErr("failed to scan model view", err)
			}
			out = append(out, &v)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CatalogReadStore) FindItems(ctx context.Context, modelID *int64) ([]*queries.ItemView, error) {
	query := `
		SELECT i.id, i.model_id, m.name, i.condition
		FROM items i
		JOIN models m ON m.id = i.model_id`
	args := []any{}
	if modelID != nil {
		query += ` WHERE i.model_id = $1`
		args = append(args, *modelID)
	}
	query += ` ORDER BY i.id`

	var out []*queries.ItemView
	err := s.uow.WithDB(ctx, func(ctx context.Context, db shared.DB) error {
		rows, err := db.Query(ctx, query, args...)
		if err != nil {
			return infra.WrapRepoErr("failed to find items", err)
		}
		defer rows.Close()

		for rows.Next() {
			var v queries.ItemView
			if err := rows.Scan(&v.ID, &v.ModelID, &v.ModelName, &v.Condition); err != nil {
				return infra.WrapRepoErr("failed to scan item view", err)
			}
			out = append(out, &v)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
