package core

import (
	"math/rand"
	"testing"
)

func TestIsDivisibleU64Basic(t *testing.T) {
	for _, d := range []uint64{2, 3, 5, 7, 97, 199, 1 << 20, ^uint64(0)} {
		m := ComputeM64(d)
		for n := uint64(0); n < 1000; n++ {
			want := n%d == 0
			if got := IsDivisibleU64(n, m); got != want {
				t.Errorf("IsDivisibleU64(%d) for d=%d = %t, want %t", n, d, got, want)
			}
		}
	}
}

func TestIsDivisibleU64Random(t *testing.T) {
	rng := rand.New(rand.NewSource(30))
	for _, d := range SmallPrimes() {
		m := ComputeM64(d)
		for i := 0; i < 1000; i++ {
			n := rng.Uint64()
			want := n%d == 0
			if got := IsDivisibleU64(n, m); got != want {
				t.Errorf("IsDivisibleU64(%d) for d=%d = %t, want %t", n, d, got, want)
			}
			// Exact multiples must always report divisible.
			k := n % (1 << 40)
			if got := IsDivisibleU64(k*d, m); !got {
				t.Errorf("IsDivisibleU64(%d * %d) = false", k, d)
			}
		}
	}
}

func TestComputeM64ZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("ComputeM64(0) should panic")
		}
	}()
	ComputeM64(0)
}
