package components

import (
	"booking-calendar/internal/handler"
	"booking-calendar/internal/handler/api"
	"booking-calendar/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewCalendarHandler,
		api.NewStatsHandler,
		api.NewTransferHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
