//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hothour/internal/domain/auction"
	"hothour/internal/domain/money"
	"hothour/internal/domain/notification"
	"hothour/internal/domain/reservation"
	"hothour/internal/events"
	"hothour/internal/infra"
	"hothour/internal/pkg/clock"
	"hothour/internal/usecase/commands"
	commandsmock "hothour/tests/mock/commands"
	eventsmock "hothour/tests/mock/events"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CancellationTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	reservationRepo  *commandsmock.MockReservationRepository
	auctionRepo      *commandsmock.MockAuctionRepository
	userRepo         *commandsmock.MockUserRepository
	notificationRepo *commandsmock.MockNotificationRepository
	publisher        *eventsmock.MockPublisher
	clock            *clock.MockClock
	uc               commands.CancellationCommands
}

func (s *CancellationTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.reservationRepo = commandsmock.NewMockReservationRepository(s.ctrl)
	s.auctionRepo = commandsmock.NewMockAuctionRepository(s.ctrl)
	s.userRepo = commandsmock.NewMockUserRepository(s.ctrl)
	s.notificationRepo = commandsmock.NewMockNotificationRepository(s.ctrl)
	s.publisher = eventsmock.NewMockPublisher(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC))
	s.uc = commands.NewCancellationCommands(
		s.reservationRepo, s.auctionRepo, s.userRepo, s.notificationRepo, s.publisher, s.clock,
	)
}

func (s *CancellationTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCancellationSuite(t *testing.T) {
	suite.Run(t, new(CancellationTestSuite))
}

func pendingReservation(id, auctionID, userID int64) *reservation.Reservation {
	return reservation.ReconstructReservation(
		id, auctionID, userID, "HOT-8X2A", money.FromCents(12000),
		reservation.StatusPendingOnSite, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	)
}

func reservationWithStatus(id, auctionID, userID int64, status reservation.Status) *reservation.Reservation {
	return reservation.ReconstructReservation(
		id, auctionID, userID, "HOT-8X2A", money.FromCents(12000),
		status, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	)
}

func (s *CancellationTestSuite) TestCancelReservation() {
	ctx := context.Background()

	s.Run("owner cancellation cancels the auction and notifies every admin", func() {
		res := pendingReservation(1, 10, 5)
		now := s.clock.Now()

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(res, nil)
		s.reservationRepo.EXPECT().Cancel(gomock.Any(), int64(1), reservation.CancelSourceUser, now).Return(nil)
		s.auctionRepo.EXPECT().UpdateStatus(gomock.Any(), int64(10), auction.StatusCancelled).Return(nil)
		s.publisher.EXPECT().Publish(gomock.Any(), events.AuctionTopic(10), gomock.Any()).Return(nil)
		s.userRepo.EXPECT().ListAdminIDs(gomock.Any()).Return([]int64{2, 3}, nil)
		s.notificationRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, items []*notification.Notification) error {
				s.Len(items, 2)
				s.Equal(notification.TypeUserCancelled, items[0].Type())
				s.Equal(int64(2), items[0].UserID())
				s.Equal(int64(3), items[1].UserID())
				return nil
			})

		s.NoError(s.uc.CancelReservation(ctx, 1, 5, false))
	})

	s.Run("cancelling an already cancelled reservation is a no-op", func() {
		res := reservationWithStatus(1, 10, 5, reservation.StatusCancelled)
		s.reservationRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(res, nil)

		s.NoError(s.uc.CancelReservation(ctx, 1, 5, false))
	})

	s.Run("a completed reservation can still be cancelled", func() {
		res := reservationWithStatus(1, 10, 5, reservation.StatusCompleted)
		now := s.clock.Now()

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(res, nil)
		s.reservationRepo.EXPECT().Cancel(gomock.Any(), int64(1), reservation.CancelSourceUser, now).Return(nil)
		s.auctionRepo.EXPECT().UpdateStatus(gomock.Any(), int64(10), auction.StatusCancelled).Return(nil)
		s.publisher.EXPECT().Publish(gomock.Any(), events.AuctionTopic(10), gomock.Any()).Return(nil)
		s.userRepo.EXPECT().ListAdminIDs(gomock.Any()).Return([]int64{2}, nil)
		s.notificationRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)

		s.NoError(s.uc.CancelReservation(ctx, 1, 5, false))
	})

	s.Run("non-owner is rejected", func() {
		res := pendingReservation(1, 10, 5)
		s.reservationRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(res, nil)

		s.ErrorIs(s.uc.CancelReservation(ctx, 1, 99, false), commands.ErrNotReservationOwner)
	})

	s.Run("unknown reservation maps to not found", func() {
		s.reservationRepo.EXPECT().FindByID(gomock.Any(), int64(404)).
			Return(nil, infra.WrapRepoErr("reservation lookup", pgx.ErrNoRows))

		s.ErrorIs(s.uc.CancelReservation(ctx, 404, 5, false), commands.ErrReservationNotFound)
	})

	s.Run("admin cancellation skips the admin inbox", func() {
		res := pendingReservation(1, 10, 5)
		now := s.clock.Now()

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(res, nil)
		s.reservationRepo.EXPECT().Cancel(gomock.Any(), int64(1), reservation.CancelSourceAdmin, now).Return(nil)
		s.auctionRepo.EXPECT().UpdateStatus(gomock.Any(), int64(10), auction.StatusCancelled).Return(nil)
		s.publisher.EXPECT().Publish(gomock.Any(), events.AuctionTopic(10), gomock.Any()).Return(nil)

		s.NoError(s.uc.CancelReservation(ctx, 1, 99, true))
	})
}

func (s *CancellationTestSuite) TestCheckIn() {
	ctx := context.Background()

	s.Run("pending reservation is completed", func() {
		res := pendingReservation(1, 10, 5)
		s.reservationRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(res, nil)
		s.reservationRepo.EXPECT().Complete(gomock.Any(), int64(1)).Return(nil)

		s.NoError(s.uc.CheckIn(ctx, 1))
	})

	s.Run("repeat check-in is a no-op", func() {
		res := reservationWithStatus(1, 10, 5, reservation.StatusCompleted)
		s.reservationRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(res, nil)

		s.NoError(s.uc.CheckIn(ctx, 1))
	})

	s.Run("cancelled reservation cannot be completed", func() {
		res := reservationWithStatus(1, 10, 5, reservation.StatusCancelled)
		s.reservationRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(res, nil)

		s.ErrorIs(s.uc.CheckIn(ctx, 1), commands.ErrReservationCancelled)
	})
}

func (s *CancellationTestSuite) TestSweepOverdue() {
	ctx := context.Background()

	s.Run("a failing row does not stop the sweep", func() {
		now := s.clock.Now()
		broken := pendingReservation(1, 10, 5)
		fine := pendingReservation(2, 11, 6)

		s.reservationRepo.EXPECT().ListPendingOverdue(gomock.Any(), now).
			Return([]*reservation.Reservation{broken, fine}, nil)

		s.reservationRepo.EXPECT().Cancel(gomock.Any(), int64(1), reservation.CancelSourceAutoNoShow, now).
			Return(infra.WrapRepoErr("cancel reservation", pgx.ErrTxClosed))

		s.reservationRepo.EXPECT().Cancel(gomock.Any(), int64(2), reservation.CancelSourceAutoNoShow, now).Return(nil)
		s.auctionRepo.EXPECT().UpdateStatus(gomock.Any(), int64(11), auction.StatusCancelled).Return(nil)
		s.publisher.EXPECT().Publish(gomock.Any(), events.AuctionTopic(11), gomock.Any()).Return(nil)
		s.userRepo.EXPECT().ListAdminIDs(gomock.Any()).Return([]int64{2}, nil)
		s.notificationRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, items []*notification.Notification) error {
				s.Len(items, 1)
				s.Equal(notification.TypeAutoNoShow, items[0].Type())
				return nil
			})

		swept, err := s.uc.SweepOverdue(ctx)
		s.NoError(err)
		s.Equal(1, swept)
	})

	s.Run("empty sweep", func() {
		s.reservationRepo.EXPECT().ListPendingOverdue(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		swept, err := s.uc.SweepOverdue(ctx)
		s.NoError(err)
		s.Zero(swept)
	})
}
