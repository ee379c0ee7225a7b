//go:build unit

package bookingcode_test

import (
	"strings"
	"testing"

	"hothour/internal/pkg/bookingcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	code := bookingcode.Generate("HOT")

	require.Len(t, code, 8)
	assert.True(t, strings.HasPrefix(code, "HOT-"))

	for _, r := range code[4:] {
		assert.True(t, (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'), "unexpected character %q", r)
	}
}

func TestGenerateIsRandom(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		seen[bookingcode.Generate("HOT")] = struct{}{}
	}
	// 36^4 possible suffixes; 100 draws colliding down to a handful would
	// mean the generator is broken.
	assert.Greater(t, len(seen), 90)
}

func TestParse(t *testing.T) {
	prefix, suffix := bookingcode.Parse("HOT-8X2A")
	assert.Equal(t, "HOT", prefix)
	assert.Equal(t, "8X2A", suffix)

	prefix, suffix = bookingcode.Parse("NODASH")
	assert.Equal(t, "NODASH", prefix)
	assert.Empty(t, suffix)
}
