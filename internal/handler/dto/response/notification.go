package response

import (
	"time"

	"hothour/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservationId"`
	AuctionID     int64     `json:"auctionId"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"isRead"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromNotificationViews(views []*queries.NotificationView) []*NotificationResponse {
	resp := make([]*NotificationResponse, len(views))
	for i, v := range views {
		var r NotificationResponse
		_ = copier.Copy(&r, v)
		resp[i] = &r
	}
	return resp
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type DeletedCountResponse struct {
	Count int64 `json:"count"`
}
