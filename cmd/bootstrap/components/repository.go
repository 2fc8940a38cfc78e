package components

import (
	repo_impl "booking-calendar/internal/infra/repository"
	"booking-calendar/internal/usecase/commands"
	"booking-calendar/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// The single in-memory collection backs both the write side and
		// the read side.
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)
