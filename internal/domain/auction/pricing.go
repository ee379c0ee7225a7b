package auction

import (
	"time"

	"hothour/internal/domain/money"
)

// Pricing is the immutable parameter set the price engine works on.
// Durations between drops are whole minutes; elapsed time is floored to
// minutes before dividing, so a drop applies only once its full interval
// has passed.
type Pricing struct {
	StartPrice        money.Money
	FloorPrice        money.Money
	DropAmount        money.Money
	DropIntervalMins  int
	TurboEnabled      bool
	TurboTriggerMins  int
	TurboIntervalMins int
	TurboDropAmount   money.Money
	StartTime         time.Time
	EndTime           time.Time
}

// Breakdown explains how a computed price was reached.
type Breakdown struct {
	Reason      string      `json:"reason,omitempty"`
	StartPrice  money.Money `json:"-"`
	FloorPrice  money.Money `json:"-"`
	NormalDrops int64       `json:"normal_drops"`
	TurboDrops  int64       `json:"turbo_drops"`
}

const reasonNotStarted = "not_started"

// ComputePrice returns the price of an auction at the given instant.
// Pure and total: malformed parameters are the caller's problem, the engine
// itself never fails. The floor is enforced after all drops are applied.
func ComputePrice(p Pricing, now time.Time) (money.Money, Breakdown) {
	bd := Breakdown{
		StartPrice: p.StartPrice,
		FloorPrice: p.FloorPrice,
	}

	if now.Before(p.StartTime) {
		bd.Reason = reasonNotStarted
		return p.StartPrice, bd
	}

	price := p.StartPrice

	if p.DropIntervalMins > 0 {
		elapsedMins := int64(now.Sub(p.StartTime) / time.Minute)
		bd.NormalDrops = elapsedMins / int64(p.DropIntervalMins)
		price = price.Sub(p.DropAmount.MulInt(bd.NormalDrops))
	}

	if p.TurboEnabled && !p.EndTime.IsZero() {
		remainingMins := int64(p.EndTime.Sub(now) / time.Minute)
		if remainingMins <= int64(p.TurboTriggerMins) {
			turboStart := p.EndTime.Add(-time.Duration(p.TurboTriggerMins) * time.Minute)
			if now.After(turboStart) {
				interval := int64(p.TurboIntervalMins)
				if interval < 1 {
					interval = 1
				}
				turboElapsed := int64(now.Sub(turboStart) / time.Minute)
				bd.TurboDrops = turboElapsed / interval
				price = price.Sub(p.TurboDropAmount.MulInt(bd.TurboDrops))
			}
		}
	}

	return money.Max(price, p.FloorPrice), bd
}
