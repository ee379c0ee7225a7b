package commands

import (
	"context"
	"fmt"
	"log/slog"

	"hothour/internal/domain/auction"
	"hothour/internal/domain/notification"
	"hothour/internal/domain/reservation"
	"hothour/internal/events"
	"hothour/internal/infra"
	"hothour/internal/pkg/clock"
	"hothour/internal/pkg/errs"
)

var (
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrNotReservationOwner  = errs.New("reservation belongs to another user")
	ErrReservationCancelled = errs.New("reservation already cancelled")
)

type CancellationCommands interface {
	CancelReservation(ctx context.Context, reservationID, actorID int64, isAdmin bool) error
	CheckIn(ctx context.Context, reservationID int64) error
	SweepOverdue(ctx context.Context) (int, error)
}

type cancellationCommandsImpl struct {
	reservationRepo  ReservationRepository
	auctionRepo      AuctionRepository
	userRepo         UserRepository
	notificationRepo NotificationRepository
	publisher        events.Publisher
	clock            clock.Clock
}

func NewCancellationCommands(
	reservationRepo ReservationRepository,
	auctionRepo AuctionRepository,
	userRepo UserRepository,
	notificationRepo NotificationRepository,
	publisher events.Publisher,
	clock clock.Clock,
) CancellationCommands {
	return &cancellationCommandsImpl{
		reservationRepo:  reservationRepo,
		auctionRepo:      auctionRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		clock:            clock,
	}
}

// CancelReservation voids a booking and returns its auction to CANCELLED,
// so both records end terminal together. Cancelling an already-cancelled
// reservation is a no-op, which makes user retries harmless.
func (c *cancellationCommandsImpl) CancelReservation(ctx context.Context, reservationID, actorID int64, isAdmin bool) error {
	res, err := c.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !isAdmin && res.UserID() != actorID {
		return ErrNotReservationOwner
	}
	if res.IsCancelled() {
		return nil
	}

	source := reservation.CancelSourceUser
	if isAdmin {
		source = reservation.CancelSourceAdmin
	}

	return c.cancel(ctx, res, source)
}

// CheckIn marks the customer as shown up. Repeat check-ins are no-ops;
// a cancelled booking cannot be completed.
func (c *cancellationCommandsImpl) CheckIn(ctx context.Context, reservationID int64) error {
	res, err := c.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if res.Status() == reservation.StatusCompleted {
		return nil
	}
	if res.IsCancelled() {
		return ErrReservationCancelled
	}

	if err := c.reservationRepo.Complete(ctx, reservationID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// SweepOverdue auto-cancels pending bookings whose service time has passed
// without a check-in. One bad row never stops the sweep; failures are
// logged and the rest proceed.
func (c *cancellationCommandsImpl) SweepOverdue(ctx context.Context) (int, error) {
	overdue, err := c.reservationRepo.ListPendingOverdue(ctx, c.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	swept := 0
	for _, res := range overdue {
		if err := c.cancel(ctx, res, reservation.CancelSourceAutoNoShow); err != nil {
			slog.Error("failed to auto-cancel no-show reservation",
				"reservation_id", res.ID(), "error", err.Error())
			continue
		}
		swept++
	}
	return swept, nil
}

func (c *cancellationCommandsImpl) cancel(ctx context.Context, res *reservation.Reservation, source reservation.CancelSource) error {
	now := c.clock.Now()

	if err := c.reservationRepo.Cancel(ctx, res.ID(), source, now); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := c.auctionRepo.UpdateStatus(ctx, res.AuctionID(), auction.StatusCancelled); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	payload := events.NewAuctionUpdated(res.AuctionID(), auction.StatusCancelled.String(), res.LockedPrice().String(), now)
	if err := c.publisher.Publish(ctx, events.AuctionTopic(res.AuctionID()), payload); err != nil {
		slog.Warn("failed to publish cancellation event", "auction_id", res.AuctionID(), "error", err.Error())
	}

	// Admins acting on their own behalf need no inbox notice.
	if source != reservation.CancelSourceAdmin {
		c.notifyAdmins(ctx, res, source)
	}
	return nil
}

func (c *cancellationCommandsImpl) notifyAdmins(ctx context.Context, res *reservation.Reservation, source reservation.CancelSource) {
	adminIDs, err := c.userRepo.ListAdminIDs(ctx)
	if err != nil {
		slog.Error("failed to list admins for cancellation notice", "error", err.Error())
		return
	}
	if len(adminIDs) == 0 {
		return
	}

	notifType := notification.TypeUserCancelled
	title := "Booking cancelled by customer"
	if source == reservation.CancelSourceAutoNoShow {
		notifType = notification.TypeAutoNoShow
		title = "Booking auto-cancelled after no-show"
	}
	message := fmt.Sprintf("Reservation %s (auction #%d) was cancelled.", res.BookingCode(), res.AuctionID())

	items := make([]*notification.Notification, 0, len(adminIDs))
	for _, adminID := range adminIDs {
		items = append(items, notification.NewNotification(adminID, res.ID(), res.AuctionID(), notifType, title, message))
	}
	if err := c.notificationRepo.CreateBatch(ctx, items); err != nil {
		slog.Error("failed to write cancellation notifications", "reservation_id", res.ID(), "error", err.Error())
	}
}
