// Package bookingcode generates the short public reservation codes
// ("HOT-8X2A"). Codes are random, not sequential, so they leak nothing
// about booking volume; uniqueness is enforced by the store.
package bookingcode

import (
	"crypto/rand"
	"strings"
)

const (
	alphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffixLength = 4
)

func Generate(prefix string) string {
	buf := make([]byte, suffixLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails if the OS entropy source is broken;
		// nothing sensible to do but panic early.
		panic("bookingcode: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return prefix + "-" + string(buf)
}

// Parse splits a code into prefix and suffix. The suffix is empty when the
// code has no separator.
func Parse(code string) (prefix, suffix string) {
	if i := strings.IndexByte(code, '-'); i >= 0 {
		return code[:i], code[i+1:]
	}
	return code, ""
}
