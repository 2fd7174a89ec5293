package readstore

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"backline/internal/infra"
	"backline/internal/pkg/pgconv"
	"backline/internal/usecase/queries"
	"backline/internal/usecase/shared"
)

type QuoteReadStore struct {
	uow shared.UnitOfWork
}

func NewQuoteReadStore(uow shared.UnitOfWork) *QuoteReadStore {
	return &QuoteReadStore{uow: uow}
}

// FindByID returns nil, nil when no quote exists under the id.
func (s *QuoteReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.QuoteView, error) {
	var view *queries.QuoteView

	err := s.uow.WithDB(ctx, func(ctx context.Context, db shared.DB) error {
		row := db.QueryRow(ctx, `
			SELECT id, title, start_time, end_time, buffer_before_min, buffer_after_min,
			       lines, accessories, created_at
			FROM quotes
			WHERE id = $1`, id)

		var (
			v                  queries.QuoteView
			lines, accessories []byte
		)
		err := row.Scan(&v.ID, &v.Title, &v.StartTime, &v.EndTime,
			&v.BufferBeforeMin, &v.BufferAfterMin, &lines, &accessories, &v.CreatedAt)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return nil
			}
			return infra.WrapRepoErr("failed to find quote by id", err)
		}

		if err := json.Unmarshal(lines, &v.Lines); err != nil {
			return infra.WrapRepoErr("failed to decode quote lines", err, infra.KindInvalidData)
		}
		if err := json.Unmarshal(accessories, &v.Accessories); err != nil {
			return infra.WrapRepoErr("failed to decode quote accessories", err, infra.KindInvalidData)
		}

		for _, line := range v.Lines {
			if line.Shortfall > 0 {
				v.HasShortfall = true
			}
		}
		for _, acc := range v.Accessories {
			if acc.Assigned < acc.Required {
				v.HasShortfall = true
			}
		}

		view = &v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
