package components

import (
	"booking-calendar/internal/pkg/clock"
	"booking-calendar/internal/pkg/config"
	"booking-calendar/internal/pkg/jwt"
	"booking-calendar/internal/usecase"
	"booking-calendar/internal/usecase/commands"
	"booking-calendar/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewAuthUseCase,
)

func NewAuthUseCase(cfg config.Config, jwtService *jwt.Service) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(cfg.Auth, jwtService)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewCalendarQueries,
		queries.NewStatsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
