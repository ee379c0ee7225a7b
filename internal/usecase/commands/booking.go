package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hothour/internal/domain/auction"
	"hothour/internal/domain/reservation"
	"hothour/internal/events"
	"hothour/internal/infra"
	"hothour/internal/pkg/bookingcode"
	"hothour/internal/pkg/clock"
	"hothour/internal/pkg/config"
	"hothour/internal/pkg/errs"
	"hothour/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAuctionNotActive  = errs.New("auction is not active")
	ErrAlreadyBooked     = errs.New("auction already booked")
	ErrUserNotFound      = errs.New("user not found")
	ErrAdminCannotBook   = errs.New("administrators cannot book auctions")
	ErrGenderNotEligible = errs.New("user does not meet the gender restriction")
)

type BookingCommands interface {
	BookAuction(ctx context.Context, auctionID, userID int64) (*queries.ReservationView, error)
}

type bookingCommandsImpl struct {
	auctionRepo     AuctionRepository
	reservationRepo ReservationRepository
	userRepo        UserRepository
	publisher       events.Publisher
	cfg             config.AuctionConfig
	db              *pgxpool.Pool
	clock           clock.Clock
}

func NewBookingCommands(
	auctionRepo AuctionRepository,
	reservationRepo ReservationRepository,
	userRepo UserRepository,
	publisher events.Publisher,
	cfg config.AuctionConfig,
	db *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		auctionRepo:     auctionRepo,
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		publisher:       publisher,
		cfg:             cfg,
		db:              db,
		clock:           clock,
	}
}

// BookAuction locks the current price and claims the auction for the user.
// Preconditions are checked optimistically; the reservations uniqueness
// constraint on auction_id is the real arbiter when two buyers race, so the
// losing insert comes back as a duplicate key and maps to ErrAlreadyBooked.
func (b *bookingCommandsImpl) BookAuction(ctx context.Context, auctionID, userID int64) (*queries.ReservationView, error) {
	now := b.clock.Now()

	auctionEntity, err := b.validateAuction(ctx, auctionID, now)
	if err != nil {
		return nil, err
	}

	if err := b.validateBuyer(ctx, userID, auctionEntity); err != nil {
		return nil, err
	}

	lockedPrice, _ := auctionEntity.PriceAt(now)
	code := bookingcode.Generate(b.cfg.BookingCodePrefix)
	reservationEntity := reservation.NewReservation(auctionID, userID, code, lockedPrice, now)

	reservationID, err := b.executeBookingTransaction(ctx, auctionEntity, reservationEntity)
	if err != nil {
		return nil, err
	}

	view, err := b.reservationRepo.FindViewByID(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b.publishBookingEvents(ctx, view)
	return view, nil
}

// validateAuction evaluates the auction's effective status at now rather
// than trusting the stored one, so a booking that lands between expiry and
// the next reconciliation tick is still refused.
func (b *bookingCommandsImpl) validateAuction(ctx context.Context, auctionID int64, now time.Time) (*auction.Auction, error) {
	auctionEntity, err := b.auctionRepo.FindByID(ctx, auctionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuctionNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if auctionEntity.NextStatus(now) != auction.StatusActive {
		return nil, b.nonActiveError(ctx, auctionID)
	}
	return auctionEntity, nil
}

// nonActiveError distinguishes a taken slot from a merely closed one: if a
// reservation exists for the auction the caller lost the race and gets
// "already booked", regardless of how the auction left ACTIVE.
func (b *bookingCommandsImpl) nonActiveError(ctx context.Context, auctionID int64) error {
	_, err := b.reservationRepo.FindByAuctionID(ctx, auctionID)
	if err == nil {
		return ErrAlreadyBooked
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return ErrAuctionNotActive
}

func (b *bookingCommandsImpl) validateBuyer(ctx context.Context, userID int64, auctionEntity *auction.Auction) error {
	buyer, err := b.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if buyer.IsAdmin() {
		return ErrAdminCannotBook
	}
	if !auctionEntity.AllowedGender().Permits(buyer.Gender().String()) {
		return ErrGenderNotEligible
	}
	return nil
}

func (b *bookingCommandsImpl) executeBookingTransaction(
	ctx context.Context,
	auctionEntity *auction.Auction,
	reservationEntity *reservation.Reservation,
) (int64, error) {
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback booking transaction", "error", rollbackErr.Error())
		}
	}()

	reservationID, err := b.reservationRepo.Create(ctx, tx, reservationEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return 0, ErrAlreadyBooked
		}
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	sold, err := b.auctionRepo.MarkSold(ctx, tx, auctionEntity.ID(), reservationEntity.LockedPrice())
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !sold {
		// Auction slipped out of ACTIVE between the precondition check and
		// the transaction. Roll back the insert.
		return 0, ErrAlreadyBooked
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return 0, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}
	return reservationID, nil
}

func (b *bookingCommandsImpl) publishBookingEvents(ctx context.Context, view *queries.ReservationView) {
	now := b.clock.Now()

	confirmed := events.NewBookingConfirmed(view.AuctionID, view.BookingCode, view.LockedPrice, view.Status, now)
	if err := b.publisher.Publish(ctx, events.UserTopic(view.UserID), confirmed); err != nil {
		slog.Warn("failed to publish booking confirmation", "reservation_id", view.ID, "error", err.Error())
	}

	booked := events.NewAuctionBooked(view.AuctionID, view.BookingCode, now)
	if err := b.publisher.Publish(ctx, events.AuctionTopic(view.AuctionID), booked); err != nil {
		slog.Warn("failed to publish auction booked event", "auction_id", view.AuctionID, "error", err.Error())
	}
}
