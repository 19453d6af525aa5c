package core

import (
	"errors"
	"fmt"
)

var (
	// ErrHexSyntax reports a hex string that is empty or contains a
	// non-hex digit.
	ErrHexSyntax = errors.New("invalid hex syntax")
	// ErrHexOverflow reports a hex value too wide for the requested
	// limb count.
	ErrHexOverflow = errors.New("hex value exceeds fixed width")
)

// ParseHex parses a big-endian hex string, with or without a 0x/0X prefix,
// into a value of the given width. The significant digits must fit in
// limbCount*16 hex digits; leading zeros are allowed and ignored.
func ParseHex(limbCount int, s string) (BigUint, error) {
	digits := s
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	if len(digits) == 0 {
		return BigUint{}, fmt.Errorf("parse %q: %w", s, ErrHexSyntax)
	}
	a := New(limbCount)
	nibble := 0 // count of significant nibbles consumed, from the right
	for i := len(digits) - 1; i >= 0; i-- {
		v, ok := hexNibble(digits[i])
		if !ok {
			return BigUint{}, fmt.Errorf("parse %q: %w", s, ErrHexSyntax)
		}
		if v == 0 {
			nibble++
			continue
		}
		if nibble >= limbCount*16 {
			return BigUint{}, fmt.Errorf("parse %q into %d limbs: %w", s, limbCount, ErrHexOverflow)
		}
		a.limbs[nibble/16] |= uint64(v) << (nibble % 16 * 4)
		nibble++
	}
	return a, nil
}

// HexDigits reports how many significant hex digits s carries, ignoring an
// optional 0x prefix and leading zeros. Used to size the limb count before
// parsing an externally supplied candidate.
func HexDigits(s string) int {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	return len(s) - i
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
