//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hothour/internal/handler/api"
	resdto "hothour/internal/handler/dto/response"
	"hothour/internal/infra"
	"hothour/internal/usecase/commands"
	"hothour/internal/usecase/queries"
	"hothour/tests/common/httptest"
	commandsmock "hothour/tests/mock/commands"
	queriesmock "hothour/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuctionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuctionCommands
	mockQueries  *queriesmock.MockAuctionQueries
	handler      *api.AuctionHandler
}

func (s *AuctionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuctionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAuctionQueries(s.mockCtrl)
	s.handler = api.NewAuctionHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/auctions", s.handler.ListAuctions)
	s.router.GET("/auctions/:id", s.handler.GetAuction)
	s.router.GET("/auctions/:id/price", s.handler.GetPrice)
	s.router.POST("/auctions", s.handler.CreateAuction)
	s.router.POST("/auctions/:id/cancel", s.handler.CancelAuction)
}

func (s *AuctionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuctionHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuctionHandlerTestSuite))
}

func sampleAuctionView(id int64) *queries.AuctionView {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &queries.AuctionView{
		ID:               id,
		Title:            "60min deep tissue massage",
		StartPrice:       "200.00",
		FloorPrice:       "50.00",
		CurrentPrice:     "180.00",
		DropAmount:       "20.00",
		DropIntervalMins: 30,
		StartTime:        now,
		EndTime:          now.Add(4 * time.Hour),
		AllowedGender:    "ANY",
		Status:           "ACTIVE",
		RemainingMinutes: 210,
	}
}

func (s *AuctionHandlerTestSuite) TestListAuctions() {
	s.Run("200 with views", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), nil).
			Return([]*queries.AuctionView{sampleAuctionView(1), sampleAuctionView(2)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions", nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var body []resdto.AuctionResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Len(body, 2)
		s.Equal("180.00", body[0].CurrentPrice)
	})

	s.Run("400 on unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions?status=BOGUS", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuctionHandlerTestSuite) TestGetAuction() {
	s.Run("200 with view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(sampleAuctionView(1), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions/1", nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var body resdto.AuctionResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(int64(1), body.ID)
		s.Equal("ACTIVE", body.Status)
	})

	s.Run("404 when unknown", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(404)).
			Return(nil, infra.WrapRepoErr("auction lookup", pgx.ErrNoRows))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions/404", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions/abc", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuctionHandlerTestSuite) TestGetPrice() {
	s.Run("200 with quote", func() {
		asOf := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
		s.mockQueries.EXPECT().GetPrice(gomock.Any(), int64(1)).Return(&queries.PriceQuote{
			AuctionID:        1,
			CurrentPrice:     "180.00",
			Status:           "ACTIVE",
			NormalDrops:      1,
			RemainingMinutes: 210,
			AsOf:             asOf,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auctions/1/price", nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var body resdto.PriceQuoteResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("180.00", body.CurrentPrice)
		s.Equal(int64(1), body.NormalDrops)
	})
}

func (s *AuctionHandlerTestSuite) TestCreateAuction() {
	url := "/auctions"
	reqBody := map[string]any{
		"title":              "60min deep tissue massage",
		"start_price":        "200.00",
		"floor_price":        "50.00",
		"drop_amount":        "20.00",
		"drop_interval_mins": 30,
		"start_time":         "2025-06-01T10:00:00Z",
		"end_time":           "2025-06-01T14:00:00Z",
	}

	s.Run("201 with the new id", func() {
		s.mockCommands.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).Return(int64(42), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusCreated, rec.Code)

		var body resdto.CreatedResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(int64(42), body.ID)
	})

	s.Run("422 on domain validation failure", func() {
		s.mockCommands.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).
			Return(int64(0), commands.ErrAuctionValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-json", "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuctionHandlerTestSuite) TestCancelAuction() {
	s.Run("204 on success", func() {
		s.mockCommands.EXPECT().CancelAuction(gomock.Any(), int64(1)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auctions/1/cancel", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("409 when no longer open", func() {
		s.mockCommands.EXPECT().CancelAuction(gomock.Any(), int64(1)).Return(commands.ErrAuctionNotOpen)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auctions/1/cancel", nil, "")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("404 when unknown", func() {
		s.mockCommands.EXPECT().CancelAuction(gomock.Any(), int64(404)).Return(commands.ErrAuctionNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auctions/404/cancel", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
