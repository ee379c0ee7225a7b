//go:build unit

package money_test

import (
	"testing"

	"hothour/internal/domain/money"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid amounts", func(t *testing.T) {
		cases := []struct {
			name  string
			in    string
			cents int64
		}{
			{"integer", "200", 20000},
			{"two decimals", "180.00", 18000},
			{"one decimal", "10.5", 1050},
			{"leading zero fraction", "0.05", 5},
			{"bare fraction", ".5", 50},
			{"trailing dot", "42.", 4200},
			{"plus sign", "+12.34", 1234},
			{"negative", "-3.21", -321},
			{"surrounding whitespace", "  7.70  ", 770},
			{"rounds half up", "1.005", 101},
			{"rounds down below half", "1.004", 100},
			{"extra digits ignored past the third", "1.0049", 100},
			{"negative rounds away from zero", "-1.005", -101},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				m, err := money.Parse(c.in)
				require.NoError(t, err)
				assert.Equal(t, c.cents, m.Cents())
			})
		}
	})

	t.Run("invalid amounts", func(t *testing.T) {
		for _, in := range []string{"", "   ", ".", "-", "abc", "1,50", "1.2.3", "1.x"} {
			t.Run(in, func(t *testing.T) {
				_, err := money.Parse(in)
				require.ErrorIs(t, err, money.ErrInvalidAmount)
			})
		}
	})
}

func TestString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{20000, "200.00"},
		{18000, "180.00"},
		{5, "0.05"},
		{50, "0.50"},
		{101, "1.01"},
		{-321, "-3.21"},
		{0, "0.00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, money.FromCents(c.cents).String())
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	for _, s := range []string{"200.00", "0.05", "49.99", "-3.21", "0.00"} {
		m, err := money.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.String())
	}
}

func TestArithmetic(t *testing.T) {
	a := money.FromCents(20000)
	b := money.FromCents(2500)

	assert.Equal(t, int64(22500), a.Add(b).Cents())
	assert.Equal(t, int64(17500), a.Sub(b).Cents())
	assert.Equal(t, int64(7500), b.MulInt(3).Cents())

	assert.True(t, a.GreaterThan(b))
	assert.True(t, b.LessThan(a))
	assert.True(t, a.Equal(money.FromCents(20000)))
	assert.True(t, a.IsPositive())
	assert.False(t, money.FromCents(0).IsPositive())
	assert.True(t, money.FromCents(0).IsZero())

	if diff := cmp.Diff(a, money.Max(a, b), cmp.AllowUnexported(money.Money{})); diff != "" {
		t.Errorf("Max mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(b, money.Max(b, b), cmp.AllowUnexported(money.Money{})); diff != "" {
		t.Errorf("Max mismatch (-want +got):\n%s", diff)
	}
}
