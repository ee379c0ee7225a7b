// Package events defines the realtime topics and payloads the core emits.
// Auction-scoped events go to "auction:{id}" and are public; user-scoped
// events go to "user:{id}" and are private to that user. Payload prices are
// decimal strings to preserve precision on the wire.
package events

import (
	"context"
	"fmt"
	"time"

	"hothour/internal/domain/auction"
)

const (
	EventPriceUpdate      = "price_update"
	EventTurboTriggered   = "turbo_triggered"
	EventAuctionUpdated   = "auction_updated"
	EventAuctionBooked    = "auction_booked"
	EventBookingConfirmed = "booking_confirmed"
)

// Publisher is the outbound event sink. Implementations must be safe for
// concurrent use; publishing is fire-and-forget from the caller's view.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

func AuctionTopic(auctionID int64) string {
	return fmt.Sprintf("auction:%d", auctionID)
}

func UserTopic(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

type PriceDetails struct {
	Reason      string `json:"reason,omitempty"`
	StartPrice  string `json:"start_price"`
	FloorPrice  string `json:"floor_price"`
	NormalDrops int64  `json:"normal_drops"`
	TurboDrops  int64  `json:"turbo_drops"`
}

func NewPriceDetails(bd auction.Breakdown) PriceDetails {
	return PriceDetails{
		Reason:      bd.Reason,
		StartPrice:  bd.StartPrice.String(),
		FloorPrice:  bd.FloorPrice.String(),
		NormalDrops: bd.NormalDrops,
		TurboDrops:  bd.TurboDrops,
	}
}

type PriceUpdate struct {
	Event        string       `json:"event"`
	AuctionID    int64        `json:"auction_id"`
	CurrentPrice string       `json:"current_price"`
	Details      PriceDetails `json:"details"`
	Timestamp    time.Time    `json:"timestamp"`
}

func NewPriceUpdate(auctionID int64, price string, bd auction.Breakdown, now time.Time) PriceUpdate {
	return PriceUpdate{
		Event:        EventPriceUpdate,
		AuctionID:    auctionID,
		CurrentPrice: price,
		Details:      NewPriceDetails(bd),
		Timestamp:    now,
	}
}

type TurboTriggered struct {
	Event            string    `json:"event"`
	AuctionID        int64     `json:"auction_id"`
	TurboStartedAt   time.Time `json:"turbo_started_at"`
	RemainingMinutes int64     `json:"remaining_minutes"`
	Timestamp        time.Time `json:"timestamp"`
}

func NewTurboTriggered(auctionID int64, startedAt time.Time, remainingMins int64, now time.Time) TurboTriggered {
	return TurboTriggered{
		Event:            EventTurboTriggered,
		AuctionID:        auctionID,
		TurboStartedAt:   startedAt,
		RemainingMinutes: remainingMins,
		Timestamp:        now,
	}
}

type AuctionUpdated struct {
	Event        string    `json:"event"`
	AuctionID    int64     `json:"auction_id"`
	Status       string    `json:"status"`
	CurrentPrice string    `json:"current_price"`
	Timestamp    time.Time `json:"timestamp"`
}

func NewAuctionUpdated(auctionID int64, status, price string, now time.Time) AuctionUpdated {
	return AuctionUpdated{
		Event:        EventAuctionUpdated,
		AuctionID:    auctionID,
		Status:       status,
		CurrentPrice: price,
		Timestamp:    now,
	}
}

// AuctionBooked is the public broadcast that an auction has been taken.
type AuctionBooked struct {
	Event       string    `json:"event"`
	AuctionID   int64     `json:"auction_id"`
	BookingCode string    `json:"booking_code"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewAuctionBooked(auctionID int64, bookingCode string, now time.Time) AuctionBooked {
	return AuctionBooked{
		Event:       EventAuctionBooked,
		AuctionID:   auctionID,
		BookingCode: bookingCode,
		Timestamp:   now,
	}
}

// BookingConfirmed is sent only to the winning user.
type BookingConfirmed struct {
	Event       string    `json:"event"`
	AuctionID   int64     `json:"auction_id"`
	BookingCode string    `json:"booking_code"`
	LockedPrice string    `json:"locked_price"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewBookingConfirmed(auctionID int64, bookingCode, lockedPrice, status string, now time.Time) BookingConfirmed {
	return BookingConfirmed{
		Event:       EventBookingConfirmed,
		AuctionID:   auctionID,
		BookingCode: bookingCode,
		LockedPrice: lockedPrice,
		Status:      status,
		Timestamp:   now,
	}
}
