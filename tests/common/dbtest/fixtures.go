//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedReferenceData loads the catalog every test runs against: mics and
// speakers with a few units each, plus the accessory rules that pull in
// cables and stands.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO categories (id, name) VALUES
		    (1, 'Microphones'),
		    (2, 'Speakers'),
		    (3, 'Cables'),
		    (4, 'Stands')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO brands (id, name) VALUES
		    (1, 'Shure'),
		    (2, 'QSC'),
		    (3, 'Generic')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO models (id, name, category_id, brand_id) VALUES
		    (1, 'SM58', 1, 1),
		    (2, 'Beta-52', 1, 1),
		    (3, 'QSC-K12', 2, 2),
		    (4, 'XLR-Cable', 3, 3),
		    (5, 'Mic-Stand', 4, 3)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO items (id, model_id, condition) VALUES
		    (1, 1, 'OK'),
		    (2, 1, 'OK'),
		    (3, 1, 'NEEDS_REPAIR'),
		    (4, 3, 'OK'),
		    (5, 3, 'OK'),
		    (6, 4, 'OK'),
		    (7, 4, 'OK'),
		    (8, 4, 'OK'),
		    (9, 4, 'OK'),
		    (10, 5, 'OK'),
		    (11, 5, 'OK')
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO accessory_rules (category_id, required_json, optional_json) VALUES
		    (1, '{"model_name_to_qty": {"XLR-Cable": 1}}', '{"model_name_to_qty": {"Mic-Stand": 1}}'),
		    (2, '{"model_name_to_qty": {"XLR-Cable": 1}}', NULL)
		ON CONFLICT (category_id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	// Seeded rows use explicit ids, keep the sequences ahead of them.
	for _, seq := range []string{
		"SELECT setval('categories_id_seq', 100)",
		"SELECT setval('brands_id_seq', 100)",
		"SELECT setval('models_id_seq', 100)",
		"SELECT setval('items_id_seq', 100)",
	} {
		if _, err := pool.Exec(ctx, seq); err != nil {
			return err
		}
	}

	return nil
}

// CreateTestEvent inserts an event plus one CONFIRMED reservation per
// item, mirroring what a committed booking leaves behind.
func CreateTestEvent(t *testing.T, db DBLike, title string, start, end time.Time, beforeMin, afterMin int, itemIDs ...int64) int64 {
	t.Helper()

	ctx := context.Background()
	var eventID int64
	err := db.QueryRow(ctx, `
		INSERT INTO events (id, title, start_time, end_time, buffer_before_min, buffer_after_min, status, created_at)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5, 'CONFIRMED', now()
		FROM events
		RETURNING id`,
		title, start, end, beforeMin, afterMin).Scan(&eventID)
	require.NoError(t, err)

	for _, itemID := range itemIDs {
		_, err := db.Exec(ctx, `
			INSERT INTO reservations (id, event_id, item_id, status, created_at)
			SELECT COALESCE(MAX(id), 0) + 1, $1, $2, 'CONFIRMED', now()
			FROM reservations`,
			eventID, itemID)
		require.NoError(t, err)
	}

	return eventID
}

func CreateMaintenanceHold(t *testing.T, db DBLike, itemID int64, start, end time.Time, reason string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO maintenance_holds (item_id, start_time, end_time, reason)
		VALUES ($1, $2, $3, $4)`,
		itemID, start, end, reason)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
