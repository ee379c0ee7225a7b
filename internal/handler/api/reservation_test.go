//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hothour/internal/domain/user"
	"hothour/internal/handler/api"
	resdto "hothour/internal/handler/dto/response"
	"hothour/internal/usecase/commands"
	"hothour/internal/usecase/queries"
	"hothour/tests/common/httptest"
	commandsmock "hothour/tests/mock/commands"
	queriesmock "hothour/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUserID int64 = 5

type ReservationHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockBooking      *commandsmock.MockBookingCommands
	mockCancellation *commandsmock.MockCancellationCommands
	mockQueries      *queriesmock.MockReservationQueries
	handler          *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockCancellation = commandsmock.NewMockCancellationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockBooking, s.mockCancellation, s.mockQueries)

	// Stand-in for the auth middleware: every request is user 5.
	asUser := func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Set("user_role", user.RoleUser)
	}

	s.router.POST("/auctions/:id/book", asUser, s.handler.BookAuction)
	s.router.GET("/reservations/:id", asUser, s.handler.GetReservation)
	s.router.POST("/reservations/:id/cancel", asUser, s.handler.CancelReservation)
	s.router.POST("/admin/reservations/:id/checkin", s.handler.CheckIn)
	s.router.GET("/admin/reservations/code/:code", s.handler.GetReservationByCode)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func sampleReservationView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:          1,
		AuctionID:   10,
		UserID:      testUserID,
		BookingCode: "HOT-8X2A",
		LockedPrice: "120.00",
		Status:      "PENDING_ON_SITE",
		ServiceTime: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
		ReservedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *ReservationHandlerTestSuite) TestBookAuction() {
	url := "/auctions/10/book"

	s.Run("201 with the reservation", func() {
		s.mockBooking.EXPECT().BookAuction(gomock.Any(), int64(10), testUserID).
			Return(sampleReservationView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusCreated, rec.Code)

		var body resdto.ReservationResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("HOT-8X2A", body.BookingCode)
		s.Equal("120.00", body.LockedPrice)
	})

	s.Run("409 when the auction is already booked", func() {
		s.mockBooking.EXPECT().BookAuction(gomock.Any(), int64(10), testUserID).
			Return(nil, commands.ErrAlreadyBooked)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("409 when the auction is not active", func() {
		s.mockBooking.EXPECT().BookAuction(gomock.Any(), int64(10), testUserID).
			Return(nil, commands.ErrAuctionNotActive)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("403 for administrators", func() {
		s.mockBooking.EXPECT().BookAuction(gomock.Any(), int64(10), testUserID).
			Return(nil, commands.ErrAdminCannotBook)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("403 on gender restriction", func() {
		s.mockBooking.EXPECT().BookAuction(gomock.Any(), int64(10), testUserID).
			Return(nil, commands.ErrGenderNotEligible)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("404 for an unknown auction", func() {
		s.mockBooking.EXPECT().BookAuction(gomock.Any(), int64(10), testUserID).
			Return(nil, commands.ErrAuctionNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	s.Run("200 for the owner", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testUserID, false, int64(1)).
			Return(sampleReservationView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/1", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("403 for someone else's reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testUserID, false, int64(1)).
			Return(nil, queries.ErrViewNotAllowed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/1", nil, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	url := "/reservations/1/cancel"

	s.Run("204 on success", func() {
		s.mockCancellation.EXPECT().CancelReservation(gomock.Any(), int64(1), testUserID, false).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("403 when not the owner", func() {
		s.mockCancellation.EXPECT().CancelReservation(gomock.Any(), int64(1), testUserID, false).
			Return(commands.ErrNotReservationOwner)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("404 when unknown", func() {
		s.mockCancellation.EXPECT().CancelReservation(gomock.Any(), int64(1), testUserID, false).
			Return(commands.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservationByCode() {
	s.Run("lowercase input is normalized before the lookup", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "HOT-8X2A").
			Return(sampleReservationView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations/code/hot-8x2a", nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var body resdto.ReservationResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("HOT-8X2A", body.BookingCode)
	})

	s.Run("400 when the code has no separator", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations/code/8X2A", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestCheckIn() {
	url := "/admin/reservations/1/checkin"

	s.Run("204 on success", func() {
		s.mockCancellation.EXPECT().CheckIn(gomock.Any(), int64(1)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("409 when cancelled", func() {
		s.mockCancellation.EXPECT().CheckIn(gomock.Any(), int64(1)).Return(commands.ErrReservationCancelled)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusConflict, rec.Code)
	})
}
