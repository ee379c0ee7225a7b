package reservation

import (
	"time"

	"hothour/internal/domain/money"
)

// Reservation is the single winning booking of an auction. At most one row
// may ever exist per auction; the store enforces that with a uniqueness
// constraint on the auction id.
type Reservation struct {
	id          int64
	auctionID   int64
	userID      int64
	bookingCode string
	lockedPrice money.Money
	status      Status
	reservedAt  time.Time
}

// NewReservation captures the price the buyer accepted. lockedPrice is the
// auction's current price as read by the caller and never changes afterwards.
func NewReservation(auctionID, userID int64, bookingCode string, lockedPrice money.Money, reservedAt time.Time) *Reservation {
	return &Reservation{
		auctionID:   auctionID,
		userID:      userID,
		bookingCode: bookingCode,
		lockedPrice: lockedPrice,
		status:      StatusPendingOnSite,
		reservedAt:  reservedAt,
	}
}

func ReconstructReservation(
	id, auctionID, userID int64,
	bookingCode string,
	lockedPrice money.Money,
	status Status,
	reservedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		auctionID:   auctionID,
		userID:      userID,
		bookingCode: bookingCode,
		lockedPrice: lockedPrice,
		status:      status,
		reservedAt:  reservedAt,
	}
}

func (r *Reservation) ID() int64                { return r.id }
func (r *Reservation) AuctionID() int64         { return r.auctionID }
func (r *Reservation) UserID() int64            { return r.userID }
func (r *Reservation) BookingCode() string      { return r.bookingCode }
func (r *Reservation) LockedPrice() money.Money { return r.lockedPrice }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) ReservedAt() time.Time    { return r.reservedAt }

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) IsPending() bool {
	return r.status == StatusPendingOnSite
}
