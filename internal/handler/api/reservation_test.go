//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"booking-calendar/internal/domain/reservation"
	"booking-calendar/internal/handler/api"
	resdto "booking-calendar/internal/handler/dto/response"
	"booking-calendar/internal/pkg/errs"
	"booking-calendar/internal/pkg/jwt"
	"booking-calendar/internal/usecase/queries"
	"booking-calendar/tests/common/builder"
	"booking-calendar/tests/common/httptest"
	"booking-calendar/tests/common/testutil"
	commandsmock "booking-calendar/tests/mock/commands"
	queriesmock "booking-calendar/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Mock middleware: a bearer header stands in for a valid editor token.
	requireEditor := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("role", jwt.RoleEditor)
		c.Next()
	}
	optionalEditor := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("role", jwt.RoleEditor)
		}
		c.Next()
	}

	s.router.GET("/reservations", optionalEditor, s.handler.ListReservations)
	s.router.GET("/reservations/:id", optionalEditor, s.handler.GetReservation)
	s.router.POST("/reservations", requireEditor, s.handler.CreateReservation)
	s.router.PUT("/reservations/:id", requireEditor, s.handler.UpdateReservation)
	s.router.DELETE("/reservations/:id", requireEditor, s.handler.DeleteReservation)
	s.router.POST("/reservations/bulk-delete", requireEditor, s.handler.BulkDeleteReservations)
	s.router.DELETE("/reservations", requireEditor, s.handler.ClearReservations)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	reqBody := builder.NewReservationBuilder().WithPrice(1500).BuildCreateRequestDTO()
	returnView := builder.NewReservationBuilder().WithPrice(1500).BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Require().NotNil(body.Price)
		s.Equal(1500.0, *body.Price)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "token")
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing clientName", mutate: testutil.Field("clientName", nil)},
			{name: "missing date", mutate: testutil.Field("date", nil)},
			{name: "missing startTime", mutate: testutil.Field("startTime", nil)},
			{name: "missing endTime", mutate: testutil.Field("endTime", nil)},
			{name: "missing platform", mutate: testutil.Field("platform", nil)},
			{name: "status outside the enum", mutate: testutil.Field("status", "done")},
			{name: "negative price", mutate: testutil.Field("price", -1)},
			{name: "price as string", mutate: testutil.Field("price", "free")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 422 on domain validation failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("bad slot"), errs.ErrValidation)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "validation")
	})

	s.Run("error: 409 on slot conflict", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("overlap"), errs.ErrReservationConflict)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "overlaps")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdate() {
	returnView := builder.NewReservationBuilder().BuildView()
	url := "/reservations/" + returnView.ID.String()
	reqBody := builder.NewReservationBuilder().BuildUpdateRequestDTO()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), returnView.ID, gomock.Any()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/xyz", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "ID")
	})

	s.Run("error: 404 when the reservation is gone", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), returnView.ID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("gone"), errs.ErrReservationNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 409 on conflict with another booking", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), returnView.ID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("overlap"), errs.ErrReservationConflict)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "overlaps")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	returnView := builder.NewReservationBuilder().WithPrice(2000).BuildView()
	url := "/reservations/" + returnView.ID.String()

	s.Run("success: price disclosed to editors", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Price)
		s.Equal(2000.0, *body.Price)
	})

	s.Run("success: price withheld from anonymous viewers", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Nil(body.Price)
		s.Equal(returnView.ClientName, body.ClientName)
	})

	s.Run("error: 404 on unknown id", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), returnView.ID).
			Return(nil, errs.Mark(errs.New("gone"), errs.ErrReservationNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "ID")
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	viewList := []*queries.ReservationView{
		builder.NewReservationBuilder().WithPrice(750).BuildView(),
		builder.NewReservationBuilder().WithTimes("2024-06-04", "18:00", "20:00").BuildView(),
	}

	s.Run("success: full collection, prices withheld without a token", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(viewList, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Nil(body[0].Price)
	})

	s.Run("success: prices disclosed to editors", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(viewList, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Require().NotNil(body[0].Price)
		s.Equal(750.0, *body[0].Price)
	})

	s.Run("success: day filter forwarded", func() {
		day, err := reservation.ParseDate("2024-06-03")
		s.Require().NoError(err)
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListFilter{Day: &day}).Return(viewList, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?day=2024-06-03", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed day", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?day=today", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date")
	})

	s.Run("error: 400 on malformed week", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?week=24-06", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date")
	})
}

// ================================================================================
// TestDelete / TestBulkDelete / TestClear
// ================================================================================

func (s *ReservationHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/reservations/" + id.String()

	s.Run("success: 204 even for an absent id", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/xyz", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "ID")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *ReservationHandlerTestSuite) TestBulkDelete() {
	url := "/reservations/bulk-delete"
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().BulkDelete(gomock.Any(), ids).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, gin.H{"ids": ids}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on empty id list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, gin.H{"ids": []string{}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on malformed ids", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, gin.H{"ids": []string{"abc"}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *ReservationHandlerTestSuite) TestClear() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Clear(gomock.Any()).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
