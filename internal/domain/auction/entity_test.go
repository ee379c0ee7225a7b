//go:build unit

package auction_test

import (
	"testing"
	"time"

	"hothour/internal/domain/auction"
	"hothour/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type auctionCase struct {
	name   string
	mutate func(*builder.AuctionBuilder)
	errIs  error
}

func TestNewAuction(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAuctionBuilder().Build()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, auction.StatusDraft, actual.Status())
		assert.Equal(t, "200.00", actual.StartPrice().String())
		assert.Equal(t, "200.00", actual.CurrentPrice().String())
		assert.Equal(t, auction.GenderAny, actual.AllowedGender())
		assert.Nil(t, actual.TurboStartedAt())
	})

	t.Run("starts active when the start time has passed", func(t *testing.T) {
		actual, err := builder.NewAuctionBuilder().
			WithNow(builder.BaseTime.Add(time.Minute)).
			Build()
		require.NoError(t, err)
		assert.Equal(t, auction.StatusActive, actual.Status())
	})

	t.Run("empty allowed gender defaults to any", func(t *testing.T) {
		actual, err := builder.NewAuctionBuilder().WithAllowedGender("").Build()
		require.NoError(t, err)
		assert.Equal(t, auction.GenderAny, actual.AllowedGender())
	})

	t.Run("pricing validation", func(t *testing.T) {
		runAuctionCases(t, []auctionCase{
			{
				name:   "zero start price",
				mutate: func(b *builder.AuctionBuilder) { b.WithStartPrice(0) },
				errIs:  auction.ErrPriceNotPositive,
			},
			{
				name:   "negative floor price",
				mutate: func(b *builder.AuctionBuilder) { b.WithFloorPrice(-100) },
				errIs:  auction.ErrPriceNotPositive,
			},
			{
				name:   "zero drop amount",
				mutate: func(b *builder.AuctionBuilder) { b.WithDropAmount(0) },
				errIs:  auction.ErrPriceNotPositive,
			},
			{
				name:   "start equal to floor",
				mutate: func(b *builder.AuctionBuilder) { b.WithStartPrice(5000).WithFloorPrice(5000) },
				errIs:  auction.ErrStartNotAboveFloor,
			},
			{
				name:   "start below floor",
				mutate: func(b *builder.AuctionBuilder) { b.WithStartPrice(4000).WithFloorPrice(5000) },
				errIs:  auction.ErrStartNotAboveFloor,
			},
			{
				name:   "drop larger than the price range",
				mutate: func(b *builder.AuctionBuilder) { b.WithDropAmount(16000) },
				errIs:  auction.ErrDropExceedsRange,
			},
			{
				name:   "drop equal to the price range is allowed",
				mutate: func(b *builder.AuctionBuilder) { b.WithDropAmount(15000) },
			},
		})
	})

	t.Run("timing validation", func(t *testing.T) {
		runAuctionCases(t, []auctionCase{
			{
				name: "start after end",
				mutate: func(b *builder.AuctionBuilder) {
					b.WithSchedule(builder.BaseTime.Add(time.Hour), builder.BaseTime)
				},
				errIs: auction.ErrScheduleInvalid,
			},
			{
				name: "end already in the past",
				mutate: func(b *builder.AuctionBuilder) {
					b.WithSchedule(builder.BaseTime.Add(-5*time.Hour), builder.BaseTime.Add(-2*time.Hour))
				},
				errIs: auction.ErrEndTimeInPast,
			},
			{
				name:   "zero drop interval",
				mutate: func(b *builder.AuctionBuilder) { b.WithDropInterval(0) },
				errIs:  auction.ErrDropIntervalInvalid,
			},
			{
				name:   "drop interval longer than the auction",
				mutate: func(b *builder.AuctionBuilder) { b.WithDropInterval(241) },
				errIs:  auction.ErrDropIntervalTooLong,
			},
		})
	})

	t.Run("turbo validation", func(t *testing.T) {
		runAuctionCases(t, []auctionCase{
			{
				name:   "valid turbo setup",
				mutate: func(b *builder.AuctionBuilder) { b.WithTurbo(500) },
			},
			{
				name:   "missing turbo drop amount",
				mutate: func(b *builder.AuctionBuilder) { b.WithTurbo(0) },
				errIs:  auction.ErrTurboDropRequired,
			},
			{
				name:   "turbo drop not below normal drop",
				mutate: func(b *builder.AuctionBuilder) { b.WithTurbo(2000) },
				errIs:  auction.ErrTurboDropTooLarge,
			},
			{
				name:   "turbo drop larger than the price range",
				mutate: func(b *builder.AuctionBuilder) { b.WithTurbo(16000) },
				errIs:  auction.ErrTurboDropExceedsRange,
			},
			{
				name: "turbo trigger is not negotiable",
				mutate: func(b *builder.AuctionBuilder) {
					b.WithTurbo(500).WithTurboTrigger(60)
				},
				errIs: auction.ErrTurboTriggerFixed,
			},
			{
				name: "turbo interval is not negotiable",
				mutate: func(b *builder.AuctionBuilder) {
					b.WithTurbo(500).WithTurboInterval(5)
				},
				errIs: auction.ErrTurboIntervalFixed,
			},
			{
				name: "auction too short for turbo",
				mutate: func(b *builder.AuctionBuilder) {
					b.WithTurbo(500).WithSchedule(builder.BaseTime, builder.BaseTime.Add(2*time.Hour))
				},
				errIs: auction.ErrTurboWindowTooShort,
			},
		})
	})

	t.Run("gender validation", func(t *testing.T) {
		runAuctionCases(t, []auctionCase{
			{
				name:   "female only",
				mutate: func(b *builder.AuctionBuilder) { b.WithAllowedGender(auction.GenderFemale) },
			},
			{
				name:   "male only",
				mutate: func(b *builder.AuctionBuilder) { b.WithAllowedGender(auction.GenderMale) },
			},
			{
				name:   "unknown value",
				mutate: func(b *builder.AuctionBuilder) { b.WithAllowedGender("OTHER") },
				errIs:  auction.ErrAllowedGenderInvalid,
			},
		})
	})
}

func TestServiceTime(t *testing.T) {
	t.Run("falls back to the auction end", func(t *testing.T) {
		a, err := builder.NewAuctionBuilder().Build()
		require.NoError(t, err)
		assert.Equal(t, builder.BaseTime.Add(4*time.Hour), a.ServiceTime())
	})

	t.Run("prefers the explicit appointment time", func(t *testing.T) {
		at := builder.BaseTime.Add(6 * time.Hour)
		a, err := builder.NewAuctionBuilder().WithScheduledAt(at).Build()
		require.NoError(t, err)
		assert.Equal(t, at, a.ServiceTime())
	})
}

func runAuctionCases(t *testing.T, cases []auctionCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAuctionBuilder().With(c.mutate).Build()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
