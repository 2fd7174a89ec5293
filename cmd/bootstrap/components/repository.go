package components

import (
	"backline/internal/infra/readstore"
	"backline/internal/infra/uow"
	"backline/internal/usecase/queries"
	"backline/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(shared.SnapshotSource)),
			fx.As(new(queries.CatalogViewRepo)),
		),
		fx.Annotate(
			readstore.NewQuoteReadStore,
			fx.As(new(queries.QuoteViewRepo)),
		),
	),
)
