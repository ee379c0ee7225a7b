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

func TestNextStatus(t *testing.T) {
	start := builder.BaseTime
	end := start.Add(4 * time.Hour)

	cases := []struct {
		name    string
		current auction.Status
		now     time.Time
		want    auction.Status
	}{
		{"draft stays draft before start", auction.StatusDraft, start.Add(-time.Minute), auction.StatusDraft},
		{"draft activates at start", auction.StatusDraft, start, auction.StatusActive},
		{"draft activates after start", auction.StatusDraft, start.Add(time.Hour), auction.StatusActive},
		{"draft expires past end", auction.StatusDraft, end, auction.StatusExpired},
		{"active stays active inside window", auction.StatusActive, start.Add(time.Hour), auction.StatusActive},
		{"active expires at end", auction.StatusActive, end, auction.StatusExpired},
		{"sold is terminal", auction.StatusSold, end.Add(time.Hour), auction.StatusSold},
		{"cancelled is terminal", auction.StatusCancelled, end.Add(time.Hour), auction.StatusCancelled},
		{"expired is terminal", auction.StatusExpired, start.Add(time.Hour), auction.StatusExpired},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, auction.NextStatus(c.current, start, end, c.now))
		})
	}
}

func TestTurboDue(t *testing.T) {
	end := builder.BaseTime.Add(4 * time.Hour)

	t.Run("due inside the trigger window", func(t *testing.T) {
		a, err := builder.NewAuctionBuilder().WithTurbo(500).Build()
		require.NoError(t, err)

		assert.False(t, a.TurboDue(builder.BaseTime.Add(time.Hour)))
		assert.True(t, a.TurboDue(end.Add(-2*time.Hour)))
		assert.True(t, a.TurboDue(end.Add(-time.Minute)))
	})

	t.Run("never due when turbo is disabled", func(t *testing.T) {
		a, err := builder.NewAuctionBuilder().Build()
		require.NoError(t, err)

		assert.False(t, a.TurboDue(end.Add(-time.Minute)))
	})
}

func TestRemainingMinutes(t *testing.T) {
	a, err := builder.NewAuctionBuilder().Build()
	require.NoError(t, err)

	end := builder.BaseTime.Add(4 * time.Hour)
	assert.Equal(t, int64(240), a.RemainingMinutes(builder.BaseTime))
	assert.Equal(t, int64(0), a.RemainingMinutes(end.Add(-30*time.Second)))
	assert.Equal(t, int64(-60), a.RemainingMinutes(end.Add(time.Hour)))
}
