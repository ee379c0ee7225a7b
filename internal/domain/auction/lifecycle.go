package auction

import (
	"time"

	"hothour/internal/domain/money"
)

// NextStatus applies the time-driven part of the state machine:
// DRAFT → ACTIVE once the start time passes, DRAFT/ACTIVE → EXPIRED once the
// end time passes. SOLD and CANCELLED are set elsewhere and, like EXPIRED,
// are terminal: time no longer moves them.
func NextStatus(current Status, startTime, endTime, now time.Time) Status {
	if !current.IsOpen() {
		return current
	}
	if !now.Before(endTime) {
		return StatusExpired
	}
	if current == StatusDraft && !now.Before(startTime) {
		return StatusActive
	}
	return current
}

// NextStatus evaluates the auction's own schedule at the given instant.
func (a *Auction) NextStatus(now time.Time) Status {
	return NextStatus(a.status, a.pricing.StartTime, a.pricing.EndTime, now)
}

// RemainingMinutes is the whole minutes left until the auction ends.
// Negative once the end time has passed.
func (a *Auction) RemainingMinutes(now time.Time) int64 {
	return int64(a.pricing.EndTime.Sub(now) / time.Minute)
}

// TurboDue reports whether turbo should be activated now: turbo is enabled,
// has not fired yet, and the remaining window is inside the trigger
// threshold. The persistence layer still re-checks turbo_started_at IS NULL
// on write, which is what makes activation exactly-once under races.
func (a *Auction) TurboDue(now time.Time) bool {
	if !a.pricing.TurboEnabled || a.turboStartedAt != nil {
		return false
	}
	return a.RemainingMinutes(now) <= int64(a.pricing.TurboTriggerMins)
}

// PriceAt runs the price engine against this auction's parameters.
func (a *Auction) PriceAt(now time.Time) (money.Money, Breakdown) {
	return ComputePrice(a.pricing, now)
}
