package commands

import (
	"context"

	"booking-calendar/internal/domain/reservation"
	reqdto "booking-calendar/internal/handler/dto/request"
	"booking-calendar/internal/infra"
	"booking-calendar/internal/pkg/clock"
	"booking-calendar/internal/pkg/errs"
	"booking-calendar/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationRepository interface {
	All(ctx context.Context) []*reservation.Reservation
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Create(ctx context.Context, r *reservation.Reservation) error
	Replace(ctx context.Context, r *reservation.Reservation) error
	Remove(ctx context.Context, id uuid.UUID) error
	RemoveMany(ctx context.Context, ids []uuid.UUID) error
	Clear(ctx context.Context) error
	ReplaceAll(ctx context.Context, rs []*reservation.Reservation) error
}

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationRequest) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) error
	Clear(ctx context.Context) error
	Import(ctx context.Context, payload []byte) (int, error)
}

type reservationCommandsImpl struct {
	repo  ReservationRepository
	clock clock.Clock
}

func NewReservationCommands(repo ReservationRepository, clock clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		repo:  repo,
		clock: clock,
	}
}

// Create admits a candidate reservation: shape validation first, then
// the conflict check against the full collection, then the mutation
// with its flush.
func (c *reservationCommandsImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
	entity, err := req.ToDomain(c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if conflict := reservation.FindConflict(c.repo.All(ctx), entity.Date(), entity.Slots(), uuid.Nil); conflict != nil {
		return nil, errs.Mark(
			errs.New("overlaps reservation "+conflict.ID().String()+" at "+conflict.Slots().String()),
			errs.ErrReservationConflict,
		)
	}

	if err := c.repo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	return queries.FromReservation(entity), nil
}

// Update replaces the record wholesale under the same id. The record
// being edited is excluded from the conflict comparison, so keeping its
// own times is a no-op.
func (c *reservationCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationRequest) (*queries.ReservationView, error) {
	existing, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, err
	}

	revised, err := req.ToDomain(existing, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if conflict := reservation.FindConflict(c.repo.All(ctx), revised.Date(), revised.Slots(), id); conflict != nil {
		return nil, errs.Mark(
			errs.New("overlaps reservation "+conflict.ID().String()+" at "+conflict.Slots().String()),
			errs.ErrReservationConflict,
		)
	}

	if err := c.repo.Replace(ctx, revised); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	return queries.FromReservation(revised), nil
}

func (c *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.repo.Remove(ctx, id)
}

func (c *reservationCommandsImpl) BulkDelete(ctx context.Context, ids []uuid.UUID) error {
	return c.repo.RemoveMany(ctx, ids)
}

func (c *reservationCommandsImpl) Clear(ctx context.Context) error {
	return c.repo.Clear(ctx)
}
