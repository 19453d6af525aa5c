package search

import (
	"fmt"
	"math/rand"

	"github.com/liuyuxuan666390/miller-rabin-prime-tester/internal/core"
)

// RandomOdd draws a random odd integer of exactly the requested bit length:
// all limbs are filled from the generator, bits above the requested length
// are cleared, then the top bit is forced set (guaranteeing the length) and
// the bottom bit is forced set (even candidates beyond 2 are never prime).
//
// Forcing the top bit skews the draw toward the upper half of the range;
// that bias is inherited behavior and accepted, not corrected.
func RandomOdd(rng *rand.Rand, limbCount, bits int) (core.BigUint, error) {
	if bits < 2 {
		return core.BigUint{}, fmt.Errorf("bits=%d: %w", bits, ErrBitLengthTooSmall)
	}
	if limbCount*64 < bits {
		return core.BigUint{}, fmt.Errorf("search: %d limbs cannot hold %d bits", limbCount, bits)
	}
	limbs := make([]uint64, limbCount)
	for i := range limbs {
		limbs[i] = rng.Uint64()
	}
	top := bits - 1
	topLimb := top / 64
	for i := topLimb + 1; i < limbCount; i++ {
		limbs[i] = 0
	}
	if rem := top % 64; rem < 63 {
		limbs[topLimb] &= 1<<(rem+1) - 1
	}
	limbs[topLimb] |= 1 << (top % 64)
	limbs[0] |= 1
	return core.FromLimbs(limbs), nil
}

// randomWitness draws a uniform Miller-Rabin base in [2, n-2]: a full-width
// uniform value reduced modulo n-3, shifted up by 2. The caller guarantees
// n is odd and n > 4, so the span n-3 is at least 2.
func randomWitness(rng *rand.Rand, n core.BigUint) core.BigUint {
	lc := n.LimbCount()
	span := n.Sub(core.FromUint64(lc, 3))
	limbs := make([]uint64, lc)
	for i := range limbs {
		limbs[i] = rng.Uint64()
	}
	r := core.Reduce(core.FromLimbs(limbs), span)
	// r <= n-4, so adding 2 cannot carry out.
	w, _ := r.Add(core.FromUint64(lc, 2))
	return w
}
