package builder

import (
	"time"

	"hothour/internal/domain/auction"
	"hothour/internal/domain/money"
)

// BaseTime is the fixed reference instant auction builders schedule around.
var BaseTime = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

// DefaultTurboPolicy mirrors the platform defaults used in production config.
var DefaultTurboPolicy = auction.TurboPolicy{
	TriggerMins:     120,
	IntervalMins:    10,
	MinDurationMins: 180,
}

// AuctionBuilder assembles NewAuctionParams with sane defaults so tests only
// state what they care about.
type AuctionBuilder struct {
	params auction.NewAuctionParams
	policy auction.TurboPolicy
	now    time.Time
}

func NewAuctionBuilder() *AuctionBuilder {
	return &AuctionBuilder{
		params: auction.NewAuctionParams{
			Title:            "60min deep tissue massage",
			Description:      "Same-day open slot",
			StartPrice:       money.FromCents(20000),
			FloorPrice:       money.FromCents(5000),
			DropAmount:       money.FromCents(2000),
			DropIntervalMins: 30,
			StartTime:        BaseTime,
			EndTime:          BaseTime.Add(4 * time.Hour),
			AllowedGender:    auction.GenderAny,
		},
		policy: DefaultTurboPolicy,
		now:    BaseTime.Add(-time.Hour),
	}
}

func (b *AuctionBuilder) With(mutate func(*AuctionBuilder)) *AuctionBuilder {
	mutate(b)
	return b
}

func (b *AuctionBuilder) WithStartPrice(cents int64) *AuctionBuilder {
	b.params.StartPrice = money.FromCents(cents)
	return b
}

func (b *AuctionBuilder) WithFloorPrice(cents int64) *AuctionBuilder {
	b.params.FloorPrice = money.FromCents(cents)
	return b
}

func (b *AuctionBuilder) WithDropAmount(cents int64) *AuctionBuilder {
	b.params.DropAmount = money.FromCents(cents)
	return b
}

func (b *AuctionBuilder) WithDropInterval(mins int) *AuctionBuilder {
	b.params.DropIntervalMins = mins
	return b
}

// WithTurbo enables turbo with the platform trigger and interval already
// filled in, leaving only the drop amount to the caller.
func (b *AuctionBuilder) WithTurbo(dropCents int64) *AuctionBuilder {
	b.params.TurboEnabled = true
	b.params.TurboTriggerMins = b.policy.TriggerMins
	b.params.TurboIntervalMins = b.policy.IntervalMins
	b.params.TurboDropAmount = money.FromCents(dropCents)
	return b
}

func (b *AuctionBuilder) WithTurboTrigger(mins int) *AuctionBuilder {
	b.params.TurboTriggerMins = mins
	return b
}

func (b *AuctionBuilder) WithTurboInterval(mins int) *AuctionBuilder {
	b.params.TurboIntervalMins = mins
	return b
}

func (b *AuctionBuilder) WithSchedule(start, end time.Time) *AuctionBuilder {
	b.params.StartTime = start
	b.params.EndTime = end
	return b
}

func (b *AuctionBuilder) WithScheduledAt(at time.Time) *AuctionBuilder {
	b.params.ScheduledAt = &at
	return b
}

func (b *AuctionBuilder) WithAllowedGender(g auction.AllowedGender) *AuctionBuilder {
	b.params.AllowedGender = g
	return b
}

func (b *AuctionBuilder) WithNow(now time.Time) *AuctionBuilder {
	b.now = now
	return b
}

func (b *AuctionBuilder) Params() auction.NewAuctionParams {
	return b.params
}

func (b *AuctionBuilder) Build() (*auction.Auction, error) {
	return auction.NewAuction(b.params, b.policy, b.now)
}
