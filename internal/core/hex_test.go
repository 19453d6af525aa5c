package core

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestHexRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for _, limbCount := range []int{1, 2, 4, 16, 32} {
		for i := 0; i < 100; i++ {
			a := randomValue(rng, limbCount)
			parsed, err := ParseHex(limbCount, a.String())
			if err != nil {
				t.Fatalf("ParseHex(%q) failed: %v", a.String(), err)
			}
			if parsed.Cmp(a) != 0 {
				t.Fatalf("round trip changed value: %s -> %s", a, parsed)
			}
		}
	}
}

func TestHexKnownValues(t *testing.T) {
	cases := []struct {
		in        string
		limbCount int
		want      uint64
	}{
		{"0x1f", 1, 0x1f},
		{"1f", 1, 0x1f},
		{"0X3B0C1ABD", 1, 0x3b0c1abd},
		{"0x0", 1, 0},
		{"00000000ff", 1, 0xff},
	}
	for _, c := range cases {
		got, err := ParseHex(c.limbCount, c.in)
		if err != nil {
			t.Errorf("ParseHex(%q) failed: %v", c.in, err)
			continue
		}
		if got.Uint64() != c.want {
			t.Errorf("ParseHex(%q) = %s, want 0x%x", c.in, got, c.want)
		}
	}
}

func TestHexStringFormat(t *testing.T) {
	// Most significant limb unpadded, following limbs padded to 16 digits.
	a := New(3)
	limbs := a.Limbs()
	limbs[2] = 0x1f
	limbs[1] = 0
	limbs[0] = 0xabc
	a = FromLimbs(limbs)
	want := "0x1f" + strings.Repeat("0", 16) + "0000000000000abc"
	if a.String() != want {
		t.Errorf("String() = %q, want %q", a.String(), want)
	}
	if New(4).String() != "0x0" {
		t.Errorf("zero renders as %q, want 0x0", New(4).String())
	}
}

func TestHexErrors(t *testing.T) {
	if _, err := ParseHex(1, ""); !errors.Is(err, ErrHexSyntax) {
		t.Errorf("empty input: err = %v, want ErrHexSyntax", err)
	}
	if _, err := ParseHex(1, "0x"); !errors.Is(err, ErrHexSyntax) {
		t.Errorf("bare prefix: err = %v, want ErrHexSyntax", err)
	}
	if _, err := ParseHex(1, "0xg1"); !errors.Is(err, ErrHexSyntax) {
		t.Errorf("bad digit: err = %v, want ErrHexSyntax", err)
	}
	if _, err := ParseHex(1, "0x1"+strings.Repeat("0", 16)); !errors.Is(err, ErrHexOverflow) {
		t.Errorf("17 significant digits into 1 limb: err = %v, want ErrHexOverflow", err)
	}
	// Leading zeros do not count against the width.
	if _, err := ParseHex(1, "0x000000000000000000ff"); err != nil {
		t.Errorf("leading zeros rejected: %v", err)
	}
}

func TestHexDigits(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0x1f", 2},
		{"0x00ff", 2},
		{"deadbeef", 8},
		{"0x0", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := HexDigits(c.in); got != c.want {
			t.Errorf("HexDigits(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
