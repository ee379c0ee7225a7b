//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hothour/internal/domain/auction"
	"hothour/internal/domain/money"
	"hothour/internal/events"
	reqdto "hothour/internal/handler/dto/request"
	"hothour/internal/infra"
	"hothour/internal/pkg/clock"
	"hothour/internal/pkg/config"
	"hothour/internal/usecase/commands"
	commandsmock "hothour/tests/mock/commands"
	eventsmock "hothour/tests/mock/events"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuctionCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	auctionRepo *commandsmock.MockAuctionRepository
	publisher   *eventsmock.MockPublisher
	clock       *clock.MockClock
	uc          commands.AuctionCommands
}

func (s *AuctionCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.auctionRepo = commandsmock.NewMockAuctionRepository(s.ctrl)
	s.publisher = eventsmock.NewMockPublisher(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	s.uc = commands.NewAuctionCommands(s.auctionRepo, s.publisher, config.AuctionConfig{
		TurboTriggerMins:     120,
		TurboIntervalMins:    10,
		TurboMinDurationMins: 180,
	}, s.clock)
}

func (s *AuctionCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuctionCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuctionCommandsTestSuite))
}

func mustParse(t *testing.T, s string) money.Money {
	t.Helper()
	m, err := money.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return m
}

func createRequest() reqdto.CreateAuctionRequest {
	return reqdto.CreateAuctionRequest{
		Title:            "60min deep tissue massage",
		StartPrice:       "200.00",
		FloorPrice:       "50.00",
		DropAmount:       "20.00",
		DropIntervalMins: 30,
		StartTime:        time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		EndTime:          time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
	}
}

func (s *AuctionCommandsTestSuite) TestCreateAuction() {
	ctx := context.Background()

	s.Run("valid request is persisted", func() {
		s.auctionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *auction.Auction) (int64, error) {
				s.Equal(auction.StatusDraft, a.Status())
				s.Equal("200.00", a.StartPrice().String())
				return 42, nil
			})

		id, err := s.uc.CreateAuction(ctx, createRequest())
		s.NoError(err)
		s.Equal(int64(42), id)
	})

	s.Run("unparseable price is a validation error", func() {
		req := createRequest()
		req.StartPrice = "two hundred"

		_, err := s.uc.CreateAuction(ctx, req)
		s.ErrorIs(err, commands.ErrAuctionValidation)
	})

	s.Run("domain rule violations surface as validation errors", func() {
		req := createRequest()
		req.FloorPrice = "300.00"

		_, err := s.uc.CreateAuction(ctx, req)
		s.ErrorIs(err, commands.ErrAuctionValidation)
		s.ErrorIs(err, auction.ErrStartNotAboveFloor)
	})

	s.Run("off-policy turbo trigger is refused", func() {
		req := createRequest()
		req.TurboEnabled = true
		req.TurboTriggerMins = 60
		req.TurboIntervalMins = 10
		req.TurboDropAmount = "5.00"

		_, err := s.uc.CreateAuction(ctx, req)
		s.ErrorIs(err, commands.ErrAuctionValidation)
		s.ErrorIs(err, auction.ErrTurboTriggerFixed)
	})
}

func (s *AuctionCommandsTestSuite) TestCancelAuction() {
	ctx := context.Background()

	openAuction := func(id int64, status auction.Status) *auction.Auction {
		start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		return auction.ReconstructAuction(
			id, "session", "",
			auction.Pricing{
				StartPrice:       mustParse(s.T(), "200.00"),
				FloorPrice:       mustParse(s.T(), "50.00"),
				DropAmount:       mustParse(s.T(), "20.00"),
				DropIntervalMins: 30,
				StartTime:        start,
				EndTime:          start.Add(4 * time.Hour),
			},
			mustParse(s.T(), "200.00"), nil, nil, auction.GenderAny, status,
			start, start,
		)
	}

	s.Run("open auction is cancelled and announced", func() {
		s.auctionRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openAuction(1, auction.StatusActive), nil)
		s.auctionRepo.EXPECT().UpdateStatus(gomock.Any(), int64(1), auction.StatusCancelled).Return(nil)
		s.publisher.EXPECT().Publish(gomock.Any(), events.AuctionTopic(1), gomock.Any()).Return(nil)

		s.NoError(s.uc.CancelAuction(ctx, 1))
	})

	s.Run("sold auction cannot be cancelled directly", func() {
		s.auctionRepo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(openAuction(2, auction.StatusSold), nil)

		s.ErrorIs(s.uc.CancelAuction(ctx, 2), commands.ErrAuctionNotOpen)
	})

	s.Run("unknown auction maps to not found", func() {
		s.auctionRepo.EXPECT().FindByID(gomock.Any(), int64(404)).
			Return(nil, infra.WrapRepoErr("auction lookup", pgx.ErrNoRows))

		s.ErrorIs(s.uc.CancelAuction(ctx, 404), commands.ErrAuctionNotFound)
	})
}

func (s *AuctionCommandsTestSuite) TestUpdateAuction() {
	ctx := context.Background()
	req := reqdto.UpdateAuctionRequest{Title: "New title", AllowedGender: "FEMALE"}

	s.Run("details are updated and announced", func() {
		start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		entity := auction.ReconstructAuction(
			1, "old", "",
			auction.Pricing{
				StartPrice:       mustParse(s.T(), "200.00"),
				FloorPrice:       mustParse(s.T(), "50.00"),
				DropAmount:       mustParse(s.T(), "20.00"),
				DropIntervalMins: 30,
				StartTime:        start,
				EndTime:          start.Add(4 * time.Hour),
			},
			mustParse(s.T(), "200.00"), nil, nil, auction.GenderAny, auction.StatusDraft,
			start, start,
		)

		s.auctionRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(entity, nil)
		s.auctionRepo.EXPECT().UpdateDetails(gomock.Any(), int64(1), "New title", "", nil, auction.GenderFemale).Return(nil)
		s.publisher.EXPECT().Publish(gomock.Any(), events.AuctionTopic(1), gomock.Any()).Return(nil)

		s.NoError(s.uc.UpdateAuction(ctx, 1, req))
	})
}
