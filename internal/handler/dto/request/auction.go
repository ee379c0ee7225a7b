package request

import (
	"time"

	"hothour/internal/domain/auction"
	"hothour/internal/domain/money"
)

type CreateAuctionRequest struct {
	Title             string     `json:"title" binding:"required"`
	Description       string     `json:"description"`
	StartPrice        string     `json:"start_price" binding:"required"`
	FloorPrice        string     `json:"floor_price" binding:"required"`
	DropAmount        string     `json:"drop_amount" binding:"required"`
	DropIntervalMins  int        `json:"drop_interval_mins" binding:"required,min=1"`
	TurboEnabled      bool       `json:"turbo_enabled"`
	TurboTriggerMins  int        `json:"turbo_trigger_mins"`
	TurboIntervalMins int        `json:"turbo_interval_mins"`
	TurboDropAmount   string     `json:"turbo_drop_amount"`
	StartTime         time.Time  `json:"start_time" binding:"required"`
	EndTime           time.Time  `json:"end_time" binding:"required"`
	ScheduledAt       *time.Time `json:"scheduled_at,omitempty"`
	AllowedGender     string     `json:"allowed_gender"`
}

// ToDomain parses the decimal price strings and assembles the creation
// params; auction.NewAuction does the business validation.
func (r CreateAuctionRequest) ToDomain() (auction.NewAuctionParams, error) {
	startPrice, err := money.Parse(r.StartPrice)
	if err != nil {
		return auction.NewAuctionParams{}, err
	}
	floorPrice, err := money.Parse(r.FloorPrice)
	if err != nil {
		return auction.NewAuctionParams{}, err
	}
	dropAmount, err := money.Parse(r.DropAmount)
	if err != nil {
		return auction.NewAuctionParams{}, err
	}

	var turboDrop money.Money
	if r.TurboDropAmount != "" {
		turboDrop, err = money.Parse(r.TurboDropAmount)
		if err != nil {
			return auction.NewAuctionParams{}, err
		}
	}

	return auction.NewAuctionParams{
		Title:             r.Title,
		Description:       r.Description,
		StartPrice:        startPrice,
		FloorPrice:        floorPrice,
		DropAmount:        dropAmount,
		DropIntervalMins:  r.DropIntervalMins,
		TurboEnabled:      r.TurboEnabled,
		TurboTriggerMins:  r.TurboTriggerMins,
		TurboIntervalMins: r.TurboIntervalMins,
		TurboDropAmount:   turboDrop,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		ScheduledAt:       r.ScheduledAt,
		AllowedGender:     auction.AllowedGender(r.AllowedGender),
	}, nil
}

type UpdateAuctionRequest struct {
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
	AllowedGender string     `json:"allowed_gender" binding:"required,oneof=ANY FEMALE MALE"`
}
