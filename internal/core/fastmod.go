package core

import (
	"math/bits"
)

// M64 is the 128-bit magic constant for fast divisibility by a 64-bit
// divisor, split as [low, high].
type M64 [2]uint64

// ComputeM64 computes the magic number for a divisor d > 0:
// M = floor((2^128 - 1) / d) + 1.
func ComputeM64(d uint64) M64 {
	if d == 0 {
		panic("core.ComputeM64: division by zero")
	}
	// Schoolbook 128-by-64 division of 2^128-1 by d.
	qh := ^uint64(0) / d
	rh := ^uint64(0) - qh*d
	ql, _ := bits.Div64(rh, ^uint64(0), d)
	var m M64
	var carry uint64
	m[0], carry = bits.Add64(ql, 1, 0)
	m[1], _ = bits.Add64(qh, 0, carry)
	return m
}

// IsDivisibleU64 reports whether the divisor behind m divides n, without a
// hardware divide: d divides n exactly when the low 128 bits of n*M are at
// most M-1.
func IsDivisibleU64(n uint64, m M64) bool {
	hi, lo := bits.Mul64(n, m[0])
	hi += n * m[1]
	mlo, borrow := bits.Sub64(m[0], 1, 0)
	mhi, _ := bits.Sub64(m[1], 0, borrow)
	if hi != mhi {
		return hi < mhi
	}
	return lo <= mlo
}
