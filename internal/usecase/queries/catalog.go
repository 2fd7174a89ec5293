package queries

import (
	"context"
)

type CatalogQueries interface {
	ListModels(ctx context.Context) ([]*ModelView, error)
	ListItems(ctx context.Context, modelID *int64) ([]*ItemView, error)
}

type CatalogViewRepo interface {
	FindModels(ctx context.Context) ([]*ModelView, error)
	FindItems(ctx context.Context, modelID *int64) ([]*ItemView, error)
}

type catalogQueriesImpl struct {
	repo CatalogViewRepo
}

func NewCatalogQueries(repo CatalogViewRepo) CatalogQueries {
	return &catalogQueriesImpl{repo: repo}
}

func (q *catalogQueriesImpl) ListModels(ctx context.Context) ([]*ModelView, error) {
	return q.repo.FindModels(ctx)
}

func (q *catalogQueriesImpl) ListItems(ctx context.Context, modelID *int64) ([]*ItemView, error) {
	return q.repo.FindItems(ctx, modelID)
}
