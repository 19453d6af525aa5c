// Package util carries the small ambient helpers shared by the search
// loop and the command layer: verbose logging, progress reporting and
// seed handling.
//
// Randomness here is math/rand by design: the generator contract this
// project inherits is not cryptographically secure, and that is a
// documented limitation rather than something to silently upgrade. Do not
// use these primes where an adversary chooses the threat model.
package util

import (
	"encoding/binary"
	"math/rand"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
)

// NewSeed derives a fresh seed from the wall clock and the process id,
// folded through xxhash so that closely spaced calls still diverge.
func NewSeed() uint64 {
	return FoldSeed(uint64(time.Now().UnixNano()), uint64(os.Getpid()))
}

// FoldSeed mixes any number of words into one seed. Used to derive
// independent per-worker seeds from a base seed and to reseed mid-search.
func FoldSeed(parts ...uint64) uint64 {
	buf := make([]byte, 8*len(parts))
	for i, p := range parts {
		binary.LittleEndian.PutUint64(buf[i*8:], p)
	}
	return xxhash.Sum64(buf)
}

// NewRand returns a generator owned by the caller. Every search owns its
// own explicitly seeded instance; nothing in this module touches the
// package-global math/rand state.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}
