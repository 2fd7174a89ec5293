package components

import (
	"backline/internal/handler"
	"backline/internal/handler/api"
	"backline/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		api.NewAvailabilityHandler,
		api.NewQuoteHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
	),
	fx.Invoke(handler.NewRouter),
)
