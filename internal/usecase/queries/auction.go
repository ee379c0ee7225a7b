package queries

import (
	"context"
	"time"

	"hothour/internal/domain/auction"
	"hothour/internal/pkg/clock"
)

// PriceQuote is the live price endpoint's payload: the computed price plus
// how it was derived, stamped with the evaluation instant.
type PriceQuote struct {
	AuctionID        int64     `json:"auction_id"`
	CurrentPrice     string    `json:"current_price"`
	Status           string    `json:"status"`
	Reason           string    `json:"reason,omitempty"`
	NormalDrops      int64     `json:"normal_drops"`
	TurboDrops       int64     `json:"turbo_drops"`
	TurboActive      bool      `json:"turbo_active"`
	RemainingMinutes int64     `json:"remaining_minutes"`
	AsOf             time.Time `json:"as_of"`
}

type AuctionQueries interface {
	GetByID(ctx context.Context, id int64) (*AuctionView, error)
	List(ctx context.Context, status *auction.Status) ([]*AuctionView, error)
	GetPrice(ctx context.Context, id int64) (*PriceQuote, error)
}

type AuctionReadRepo interface {
	FindByID(ctx context.Context, id int64) (*auction.Auction, error)
	List(ctx context.Context, status *auction.Status) ([]*auction.Auction, error)
}

type auctionQueriesImpl struct {
	repo  AuctionReadRepo
	clock clock.Clock
}

func NewAuctionQueries(repo AuctionReadRepo, clock clock.Clock) AuctionQueries {
	return &auctionQueriesImpl{repo: repo, clock: clock}
}

func (q *auctionQueriesImpl) GetByID(ctx context.Context, id int64) (*AuctionView, error) {
	a, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAuctionView(a, q.clock.Now()), nil
}

func (q *auctionQueriesImpl) List(ctx context.Context, status *auction.Status) ([]*AuctionView, error) {
	list, err := q.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	views := make([]*AuctionView, 0, len(list))
	for _, a := range list {
		views = append(views, toAuctionView(a, now))
	}
	return views, nil
}

func (q *auctionQueriesImpl) GetPrice(ctx context.Context, id int64) (*PriceQuote, error) {
	a, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	price, bd := a.PriceAt(now)

	return &PriceQuote{
		AuctionID:        a.ID(),
		CurrentPrice:     price.String(),
		Status:           a.NextStatus(now).String(),
		Reason:           bd.Reason,
		NormalDrops:      bd.NormalDrops,
		TurboDrops:       bd.TurboDrops,
		TurboActive:      a.TurboStartedAt() != nil,
		RemainingMinutes: remainingMinutes(a, now),
		AsOf:             now,
	}, nil
}

// toAuctionView derives everything time-dependent at read time: effective
// status, live price and remaining window. The stored current price is only
// the reconciler's last checkpoint.
func toAuctionView(a *auction.Auction, now time.Time) *AuctionView {
	price, _ := a.PriceAt(now)
	p := a.Pricing()

	return &AuctionView{
		ID:               a.ID(),
		Title:            a.Title(),
		Description:      a.Description(),
		StartPrice:       p.StartPrice.String(),
		FloorPrice:       p.FloorPrice.String(),
		CurrentPrice:     price.String(),
		DropAmount:       p.DropAmount.String(),
		DropIntervalMins: p.DropIntervalMins,
		TurboEnabled:     p.TurboEnabled,
		TurboActive:      a.TurboStartedAt() != nil,
		TurboStartedAt:   a.TurboStartedAt(),
		StartTime:        p.StartTime,
		EndTime:          p.EndTime,
		ScheduledAt:      a.ScheduledAt(),
		AllowedGender:    a.AllowedGender().String(),
		Status:           a.NextStatus(now).String(),
		RemainingMinutes: remainingMinutes(a, now),
		CreatedAt:        a.CreatedAt(),
		UpdatedAt:        a.UpdatedAt(),
	}
}

func remainingMinutes(a *auction.Auction, now time.Time) int64 {
	remaining := a.RemainingMinutes(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
