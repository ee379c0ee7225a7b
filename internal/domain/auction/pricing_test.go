//go:build unit

package auction_test

import (
	"testing"
	"time"

	"hothour/internal/domain/auction"
	"hothour/internal/domain/money"

	"github.com/stretchr/testify/assert"
)

var priceBase = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func basicPricing() auction.Pricing {
	return auction.Pricing{
		StartPrice:       money.FromCents(20000),
		FloorPrice:       money.FromCents(5000),
		DropAmount:       money.FromCents(2000),
		DropIntervalMins: 30,
		StartTime:        priceBase,
		EndTime:          priceBase.Add(4 * time.Hour),
	}
}

func TestComputePrice(t *testing.T) {
	t.Run("price holds at start until a full interval elapses", func(t *testing.T) {
		p := basicPricing()

		price, bd := auction.ComputePrice(p, priceBase)
		assert.Equal(t, "200.00", price.String())
		assert.Zero(t, bd.NormalDrops)

		price, bd = auction.ComputePrice(p, priceBase.Add(29*time.Minute+59*time.Second))
		assert.Equal(t, "200.00", price.String())
		assert.Zero(t, bd.NormalDrops)

		price, bd = auction.ComputePrice(p, priceBase.Add(30*time.Minute))
		assert.Equal(t, "180.00", price.String())
		assert.Equal(t, int64(1), bd.NormalDrops)
	})

	t.Run("before start the price is the start price with a reason", func(t *testing.T) {
		p := basicPricing()

		price, bd := auction.ComputePrice(p, priceBase.Add(-time.Minute))
		assert.Equal(t, "200.00", price.String())
		assert.Equal(t, "not_started", bd.Reason)
		assert.Zero(t, bd.NormalDrops)
		assert.Zero(t, bd.TurboDrops)
	})

	t.Run("fast drops clamp to the floor", func(t *testing.T) {
		p := basicPricing()
		p.DropAmount = money.FromCents(2500)
		p.DropIntervalMins = 10

		// Three 25.00 drops after 30 minutes, still above the floor.
		price, bd := auction.ComputePrice(p, priceBase.Add(30*time.Minute))
		assert.Equal(t, "125.00", price.String())
		assert.Equal(t, int64(3), bd.NormalDrops)

		// Seven drops would land at 25.00; the floor wins.
		price, bd = auction.ComputePrice(p, priceBase.Add(70*time.Minute))
		assert.Equal(t, "50.00", price.String())
		assert.Equal(t, int64(7), bd.NormalDrops)
	})

	t.Run("turbo drops stack on top of normal drops", func(t *testing.T) {
		p := auction.Pricing{
			StartPrice:        money.FromCents(50000),
			FloorPrice:        money.FromCents(10000),
			DropAmount:        money.FromCents(5000),
			DropIntervalMins:  60,
			TurboEnabled:      true,
			TurboTriggerMins:  30,
			TurboIntervalMins: 5,
			TurboDropAmount:   money.FromCents(2000),
			StartTime:         priceBase,
			EndTime:           priceBase.Add(2 * time.Hour),
		}

		// 15 minutes before end: one normal drop, three turbo drops.
		price, bd := auction.ComputePrice(p, p.EndTime.Add(-15*time.Minute))
		assert.Equal(t, "390.00", price.String())
		assert.Equal(t, int64(1), bd.NormalDrops)
		assert.Equal(t, int64(3), bd.TurboDrops)
	})

	t.Run("turbo contributes nothing outside its window", func(t *testing.T) {
		p := basicPricing()
		p.TurboEnabled = true
		p.TurboTriggerMins = 120
		p.TurboIntervalMins = 10
		p.TurboDropAmount = money.FromCents(500)

		// One hour in, two hours of window remain beyond the trigger.
		_, bd := auction.ComputePrice(p, priceBase.Add(time.Hour))
		assert.Zero(t, bd.TurboDrops)

		// Inside the final two hours turbo kicks in.
		_, bd = auction.ComputePrice(p, priceBase.Add(3*time.Hour+30*time.Minute))
		assert.Equal(t, int64(9), bd.TurboDrops)
	})

	t.Run("elapsed time is floored to whole minutes", func(t *testing.T) {
		p := basicPricing()
		p.DropIntervalMins = 1

		price, bd := auction.ComputePrice(p, priceBase.Add(59*time.Second))
		assert.Equal(t, "200.00", price.String())
		assert.Zero(t, bd.NormalDrops)
	})

	t.Run("price never increases over time", func(t *testing.T) {
		p := basicPricing()
		p.TurboEnabled = true
		p.TurboTriggerMins = 120
		p.TurboIntervalMins = 10
		p.TurboDropAmount = money.FromCents(500)

		prev, _ := auction.ComputePrice(p, priceBase)
		for m := 1; m <= 240; m++ {
			cur, _ := auction.ComputePrice(p, priceBase.Add(time.Duration(m)*time.Minute))
			assert.False(t, cur.GreaterThan(prev), "price rose at minute %d", m)
			assert.False(t, cur.LessThan(p.FloorPrice), "price fell below floor at minute %d", m)
			prev = cur
		}
	})
}
