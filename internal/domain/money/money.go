// Package money holds auction prices as integer cents. Prices cross the API
// boundary as decimal strings ("180.00") and are parsed with half-up
// rounding, so every stored amount has exactly two decimal places.
package money

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid money amount")

type Money struct {
	cents int64
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// Parse converts a decimal string into Money, rounding half-up (away from
// zero) beyond two fractional digits.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return Money{}, ErrInvalidAmount
	}
	if intPart == "" {
		intPart = "0"
	}

	var cents int64
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return Money{}, ErrInvalidAmount
		}
		cents = cents*10 + int64(r-'0')
	}
	cents *= 100

	frac := [2]int64{}
	roundUp := false
	for i, r := range fracPart {
		if r < '0' || r > '9' {
			return Money{}, ErrInvalidAmount
		}
		switch {
		case i < 2:
			frac[i] = int64(r - '0')
		case i == 2:
			roundUp = r >= '5'
		}
	}
	cents += frac[0]*10 + frac[1]
	if roundUp {
		cents++
	}

	if neg {
		cents = -cents
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) String() string {
	c := m.cents
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Equal(o Money) bool {
	return m.cents == o.cents
}

func (m Money) LessThan(o Money) bool {
	return m.cents < o.cents
}

func (m Money) GreaterThan(o Money) bool {
	return m.cents > o.cents
}

func (m Money) Add(o Money) Money {
	return Money{cents: m.cents + o.cents}
}

func (m Money) Sub(o Money) Money {
	return Money{cents: m.cents - o.cents}
}

func (m Money) MulInt(n int64) Money {
	return Money{cents: m.cents * n}
}

func Max(a, b Money) Money {
	if a.cents >= b.cents {
		return a
	}
	return b
}
