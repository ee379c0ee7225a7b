package response

import (
	"time"

	"hothour/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           int64      `json:"id"`
	AuctionID    int64      `json:"auctionId"`
	AuctionTitle string     `json:"auctionTitle"`
	UserID       int64      `json:"userId"`
	UserEmail    string     `json:"userEmail"`
	BookingCode  string     `json:"bookingCode"`
	LockedPrice  string     `json:"lockedPrice"`
	Status       string     `json:"status"`
	CancelSource *string    `json:"cancelSource,omitempty"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
	ServiceTime  time.Time  `json:"serviceTime"`
	ReservedAt   time.Time  `json:"reservedAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	resp := make([]*ReservationResponse, len(views))
	for i, v := range views {
		resp[i] = FromReservationView(v)
	}
	return resp
}
