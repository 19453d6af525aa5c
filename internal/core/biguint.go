// Package core provides the fixed-width unsigned integer arithmetic that
// the primality engine is built on.
package core

import (
	"fmt"
	"math/bits"
	"strings"
)

// BigUint is a nonnegative integer of fixed width, stored as 64-bit limbs
// with the least significant limb first. The width is chosen at construction
// and never changes: operations that overflow it wrap modulo 2^(64*limbCount)
// and report the lost carry where callers may care. Every bit pattern of the
// limb sequence is a valid value; there is no normalization or trimming.
//
// Values are plain copies. Operations compute a new value from their
// operands; a result never aliases an input.
type BigUint struct {
	limbs []uint64
}

// New returns a zero value of the given width.
func New(limbCount int) BigUint {
	if limbCount <= 0 {
		panic("core.New: limb count must be positive")
	}
	return BigUint{limbs: make([]uint64, limbCount)}
}

// FromUint64 returns a value of the given width holding v.
func FromUint64(limbCount int, v uint64) BigUint {
	a := New(limbCount)
	a.limbs[0] = v
	return a
}

// FromLimbs returns a value backed by a copy of limbs (least significant
// first).
func FromLimbs(limbs []uint64) BigUint {
	if len(limbs) == 0 {
		panic("core.FromLimbs: limb count must be positive")
	}
	cp := make([]uint64, len(limbs))
	copy(cp, limbs)
	return BigUint{limbs: cp}
}

// Clone returns an independent copy of a.
func (a BigUint) Clone() BigUint {
	return FromLimbs(a.limbs)
}

// LimbCount returns the fixed width of a in limbs.
func (a BigUint) LimbCount() int {
	return len(a.limbs)
}

// Limbs returns a copy of the limb sequence, least significant first.
func (a BigUint) Limbs() []uint64 {
	cp := make([]uint64, len(a.limbs))
	copy(cp, a.limbs)
	return cp
}

func (a BigUint) checkSameWidth(b BigUint, op string) {
	if len(a.limbs) != len(b.limbs) {
		panic(fmt.Sprintf("core.BigUint.%s: width mismatch (%d vs %d limbs)", op, len(a.limbs), len(b.limbs)))
	}
}

// Add returns a+b truncated to the fixed width, plus the carry bit that
// overflowed it. Callers that accept wrapping discard the carry.
func (a BigUint) Add(b BigUint) (BigUint, uint64) {
	a.checkSameWidth(b, "Add")
	sum := make([]uint64, len(a.limbs))
	var carry uint64
	for i := range a.limbs {
		sum[i], carry = bits.Add64(a.limbs[i], b.limbs[i], carry)
	}
	return BigUint{limbs: sum}, carry
}

// Sub returns a-b. Precondition: a >= b, verified by the caller; the result
// wraps if the precondition is violated.
func (a BigUint) Sub(b BigUint) BigUint {
	a.checkSameWidth(b, "Sub")
	diff := make([]uint64, len(a.limbs))
	var borrow uint64
	for i := range a.limbs {
		diff[i], borrow = bits.Sub64(a.limbs[i], b.limbs[i], borrow)
	}
	return BigUint{limbs: diff}
}

// Cmp compares a and b, returning -1, 0 or +1.
func (a BigUint) Cmp(b BigUint) int {
	a.checkSameWidth(b, "Cmp")
	for i := len(a.limbs) - 1; i >= 0; i-- {
		switch {
		case a.limbs[i] > b.limbs[i]:
			return 1
		case a.limbs[i] < b.limbs[i]:
			return -1
		}
	}
	return 0
}

// Shl1 returns a*2 truncated to the fixed width.
func (a BigUint) Shl1() BigUint {
	out := make([]uint64, len(a.limbs))
	var carry uint64
	for i := range a.limbs {
		out[i] = a.limbs[i]<<1 | carry
		carry = a.limbs[i] >> 63
	}
	return BigUint{limbs: out}
}

// Shr1 returns floor(a/2).
func (a BigUint) Shr1() BigUint {
	out := make([]uint64, len(a.limbs))
	var carry uint64
	for i := len(a.limbs) - 1; i >= 0; i-- {
		out[i] = a.limbs[i]>>1 | carry<<63
		carry = a.limbs[i] & 1
	}
	return BigUint{limbs: out}
}

// Mul returns the full double-width product a*b. The result has twice the
// operand width; nothing is truncated. Callers that want the wrapped product
// apply Truncate themselves, and the modular reducer consumes the full
// width.
func (a BigUint) Mul(b BigUint) BigUint {
	a.checkSameWidth(b, "Mul")
	n := len(a.limbs)
	out := make([]uint64, 2*n)
	if n == 1 {
		// Word-native regime: a single multiply-with-carry suffices.
		out[1], out[0] = bits.Mul64(a.limbs[0], b.limbs[0])
		return BigUint{limbs: out}
	}
	for i, ai := range a.limbs {
		var carry uint64
		for j, bj := range b.limbs {
			hi, lo := bits.Mul64(ai, bj)
			var c uint64
			lo, c = bits.Add64(lo, out[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			out[i+j] = lo
			carry = hi
		}
		out[i+n] = carry
	}
	return BigUint{limbs: out}
}

// Extend returns a widened copy of a. limbCount must not shrink the value.
func (a BigUint) Extend(limbCount int) BigUint {
	if limbCount < len(a.limbs) {
		panic("core.BigUint.Extend: new width is narrower")
	}
	out := make([]uint64, limbCount)
	copy(out, a.limbs)
	return BigUint{limbs: out}
}

// Truncate returns the low limbCount limbs of a.
func (a BigUint) Truncate(limbCount int) BigUint {
	if limbCount <= 0 || limbCount > len(a.limbs) {
		panic("core.BigUint.Truncate: invalid width")
	}
	out := make([]uint64, limbCount)
	copy(out, a.limbs[:limbCount])
	return BigUint{limbs: out}
}

// IsZero reports whether a == 0.
func (a BigUint) IsZero() bool {
	for _, l := range a.limbs {
		if l != 0 {
			return false
		}
	}
	return true
}

// IsOne reports whether a == 1.
func (a BigUint) IsOne() bool {
	if a.limbs[0] != 1 {
		return false
	}
	for _, l := range a.limbs[1:] {
		if l != 0 {
			return false
		}
	}
	return true
}

// IsEven reports whether the low bit of a is clear.
func (a BigUint) IsEven() bool {
	return a.limbs[0]&1 == 0
}

// Bit returns bit i of a (0 or 1).
func (a BigUint) Bit(i int) uint {
	if i < 0 || i >= len(a.limbs)*64 {
		panic("core.BigUint.Bit: position out of range")
	}
	return uint(a.limbs[i/64] >> (i % 64) & 1)
}

// BitLen returns the position of the highest set bit plus one, or 0 for a
// zero value.
func (a BigUint) BitLen() int {
	for i := len(a.limbs) - 1; i >= 0; i-- {
		if a.limbs[i] != 0 {
			return i*64 + bits.Len64(a.limbs[i])
		}
	}
	return 0
}

// Uint64 returns the low 64 bits of a.
func (a BigUint) Uint64() uint64 {
	return a.limbs[0]
}

// ModUint64 returns a mod m for a small word modulus, walking the limbs
// from the most significant down (Horner's rule over base 2^64).
func (a BigUint) ModUint64(m uint64) uint64 {
	if m == 0 {
		panic("core.BigUint.ModUint64: zero modulus")
	}
	var rem uint64
	for i := len(a.limbs) - 1; i >= 0; i-- {
		// rem < m, so the 128-by-64 division cannot trap.
		_, rem = bits.Div64(rem, a.limbs[i], m)
	}
	return rem
}

// String renders a as 0x followed by big-endian hex digits: the most
// significant nonzero limb without leading zeros, every following limb
// zero-padded to its full 16 digits. A zero value renders as 0x0.
func (a BigUint) String() string {
	top := -1
	for i := len(a.limbs) - 1; i >= 0; i-- {
		if a.limbs[i] != 0 {
			top = i
			break
		}
	}
	if top < 0 {
		return "0x0"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "0x%x", a.limbs[top])
	for i := top - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%016x", a.limbs[i])
	}
	return sb.String()
}
