package response

import (
	"time"

	"hothour/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AuctionResponse struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	StartPrice       string     `json:"startPrice"`
	FloorPrice       string     `json:"floorPrice"`
	CurrentPrice     string     `json:"currentPrice"`
	DropAmount       string     `json:"dropAmount"`
	DropIntervalMins int        `json:"dropIntervalMins"`
	TurboEnabled     bool       `json:"turboEnabled"`
	TurboActive      bool       `json:"turboActive"`
	TurboStartedAt   *time.Time `json:"turboStartedAt,omitempty"`
	StartTime        time.Time  `json:"startTime"`
	EndTime          time.Time  `json:"endTime"`
	ScheduledAt      *time.Time `json:"scheduledAt,omitempty"`
	AllowedGender    string     `json:"allowedGender"`
	Status           string     `json:"status"`
	RemainingMinutes int64      `json:"remainingMinutes"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func FromAuctionView(v *queries.AuctionView) *AuctionResponse {
	var resp AuctionResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromAuctionViews(views []*queries.AuctionView) []*AuctionResponse {
	resp := make([]*AuctionResponse, len(views))
	for i, v := range views {
		resp[i] = FromAuctionView(v)
	}
	return resp
}

type PriceQuoteResponse struct {
	AuctionID        int64     `json:"auctionId"`
	CurrentPrice     string    `json:"currentPrice"`
	Status           string    `json:"status"`
	Reason           string    `json:"reason,omitempty"`
	NormalDrops      int64     `json:"normalDrops"`
	TurboDrops       int64     `json:"turboDrops"`
	TurboActive      bool      `json:"turboActive"`
	RemainingMinutes int64     `json:"remainingMinutes"`
	AsOf             time.Time `json:"asOf"`
}

func FromPriceQuote(q *queries.PriceQuote) *PriceQuoteResponse {
	var resp PriceQuoteResponse
	_ = copier.Copy(&resp, q)
	return &resp
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}
