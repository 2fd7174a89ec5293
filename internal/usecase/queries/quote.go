package queries

import (
	"context"

	"github.com/google/uuid"

	"backline/internal/pkg/errs"
)

var ErrQuoteNotFound = errs.New("quote not found")

type QuoteQueries interface {
	GetQuote(ctx context.Context, id uuid.UUID) (*QuoteView, error)
}

type QuoteViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	repo QuoteViewRepo
}

func NewQuoteQueries(repo QuoteViewRepo) QuoteQueries {
	return &quoteQueriesImpl{repo: repo}
}

func (q *quoteQueriesImpl) GetQuote(ctx context.Context, id uuid.UUID) (*QuoteView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, ErrQuoteNotFound
	}
	return view, nil
}
