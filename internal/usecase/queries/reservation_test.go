//go:build unit

package queries_test

import (
	"context"
	"testing"

	"booking-calendar/internal/domain/reservation"
	"booking-calendar/internal/infra"
	"booking-calendar/internal/infra/filestore"
	"booking-calendar/internal/pkg/errs"
	"booking-calendar/internal/usecase/queries"
	"booking-calendar/tests/common/builder"
	queriesmock "booking-calendar/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockReservationReadStore
	queries   queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockReservationReadStore(s.mockCtrl)
	s.queries = queries.NewReservationQueries(s.mockStore)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func (s *ReservationQueriesTestSuite) mustDate(value string) reservation.Date {
	d, err := reservation.ParseDate(value)
	s.Require().NoError(err)
	return d
}

func (s *ReservationQueriesTestSuite) TestGet() {
	ctx := context.Background()

	s.Run("found", func() {
		r := builder.NewReservationBuilder().WithPrice(800).BuildReconstructed()
		s.mockStore.EXPECT().FindByID(gomock.Any(), r.ID()).Return(r, nil).Times(1)

		view, err := s.queries.Get(ctx, r.ID())
		s.Require().NoError(err)
		s.Equal(r.ID(), view.ID)
		s.Equal("Ann", view.ClientName)
		s.Require().NotNil(view.Price)
		s.Equal(800.0, *view.Price)
	})

	s.Run("not found maps to the domain sentinel", func() {
		id := uuid.New()
		s.mockStore.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)).Times(1)

		_, err := s.queries.Get(ctx, id)
		s.Require().Error(err)
		s.ErrorIs(err, errs.ErrReservationNotFound)
	})
}

func (s *ReservationQueriesTestSuite) TestList() {
	ctx := context.Background()

	monday := builder.NewReservationBuilder().WithTimes("2024-06-03", "18:00", "20:00").BuildReconstructed()
	mondayEarly := builder.NewReservationBuilder().WithTimes("2024-06-03", "14:00", "16:00").BuildReconstructed()
	mondayLate := builder.NewReservationBuilder().WithTimes("2024-06-03", "01:00", "02:00").BuildReconstructed()
	nextMonday := builder.NewReservationBuilder().WithTimes("2024-06-10", "14:00", "16:00").BuildReconstructed()
	all := []*reservation.Reservation{nextMonday, mondayLate, monday, mondayEarly}

	s.Run("no filter returns everything sorted for display", func() {
		s.mockStore.EXPECT().All(gomock.Any()).Return(all).Times(1)

		views, err := s.queries.List(ctx, queries.ListFilter{})
		s.Require().NoError(err)
		s.Require().Len(views, 4)

		// Date ascending, then start label position: the 01:00 block
		// sorts after 18:00 because ordering is positional.
		s.Equal(mondayEarly.ID(), views[0].ID)
		s.Equal(monday.ID(), views[1].ID)
		s.Equal(mondayLate.ID(), views[2].ID)
		s.Equal(nextMonday.ID(), views[3].ID)
	})

	s.Run("day filter", func() {
		s.mockStore.EXPECT().All(gomock.Any()).Return(all).Times(1)

		day := s.mustDate("2024-06-03")
		views, err := s.queries.List(ctx, queries.ListFilter{Day: &day})
		s.Require().NoError(err)
		s.Len(views, 3)
	})

	s.Run("week filter", func() {
		s.mockStore.EXPECT().All(gomock.Any()).Return(all).Times(1)

		weekOf := s.mustDate("2024-06-12")
		views, err := s.queries.List(ctx, queries.ListFilter{WeekOf: &weekOf})
		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.Equal(nextMonday.ID(), views[0].ID)
	})

	s.Run("day filter wins when both are set", func() {
		s.mockStore.EXPECT().All(gomock.Any()).Return(all).Times(1)

		day := s.mustDate("2024-06-10")
		weekOf := s.mustDate("2024-06-03")
		views, err := s.queries.List(ctx, queries.ListFilter{Day: &day, WeekOf: &weekOf})
		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.Equal(nextMonday.ID(), views[0].ID)
	})
}

func (s *ReservationQueriesTestSuite) TestExport() {
	ctx := context.Background()
	rec := builder.NewReservationBuilder().BuildRecord()

	s.mockStore.EXPECT().Snapshot(gomock.Any()).
		Return([]filestore.Record{rec}).Times(1)

	records, err := s.queries.Export(ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(rec.ID, records[0].ID)
}
