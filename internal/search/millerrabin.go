package search

import (
	"math/rand"

	"github.com/liuyuxuan666390/miller-rabin-prime-tester/internal/core"
)

// WitnessReport records one Miller-Rabin round for verbose reporting: the
// base that was tried and whether it passed (inconclusive) or failed
// (conclusively composite).
type WitnessReport struct {
	Base core.BigUint
	Pass bool
}

// Witness runs one Miller-Rabin compositeness round on odd n with base a.
// A pass means n may still be prime; a fail proves n composite.
//
// The base is reduced mod n first when it is out of range; a base that
// reduces to zero is degenerate and passes. The caller's a is never
// written through.
func Witness(n, a core.BigUint) bool {
	a = core.ReduceWitness(a, n)
	if a.IsZero() {
		return true
	}
	lc := n.LimbCount()
	nMinus1 := n.Sub(core.FromUint64(lc, 1))

	// n-1 = d * 2^s with d odd.
	d := nMinus1.Clone()
	s := 0
	for d.IsEven() {
		d = d.Shr1()
		s++
	}

	x := core.ModExp(a, d, n)
	if x.IsOne() || x.Cmp(nMinus1) == 0 {
		return true
	}
	for r := 1; r < s; r++ {
		x = core.ModMul(x, x, n)
		if x.Cmp(nMinus1) == 0 {
			return true
		}
	}
	return false
}

// IsProbablePrime decides n with the sieve first and then up to rounds
// independent random witnesses. A single failing witness is conclusive and
// short-circuits the remaining rounds. All-pass means probably prime with
// error probability at most 4^-rounds, which holds because every witness
// is an independent uniform draw from [2, n-2].
//
// Values below 200² are decided exactly: surviving the sieve at that size
// leaves no room for a composite.
func IsProbablePrime(rng *rand.Rand, n core.BigUint, rounds int) bool {
	verdict, decided := sieveDecide(n)
	if decided {
		return verdict
	}
	for i := 0; i < rounds; i++ {
		if !Witness(n, randomWitness(rng, n)) {
			return false
		}
	}
	return true
}

// Test is the verbose variant of IsProbablePrime: it runs every requested
// round even after a failure, recording each base and verdict, so callers
// can display the full witness table. The reports are nil when the sieve
// decides outright.
func Test(rng *rand.Rand, n core.BigUint, rounds int) (bool, []WitnessReport) {
	verdict, decided := sieveDecide(n)
	if decided {
		return verdict, nil
	}
	reports := make([]WitnessReport, 0, rounds)
	allPass := true
	for i := 0; i < rounds; i++ {
		a := randomWitness(rng, n)
		pass := Witness(n, a)
		reports = append(reports, WitnessReport{Base: a, Pass: pass})
		if !pass {
			allPass = false
		}
	}
	return allPass, reports
}

// sieveDecide resolves the trivial cases: n < 2, table primes, table
// divisors, and anything below 200² that survives trial division.
func sieveDecide(n core.BigUint) (verdict, decided bool) {
	if n.BitLen() <= 64 && n.Uint64() < 2 {
		return false, true
	}
	switch core.QuickReject(n) {
	case core.SieveSmallPrime:
		return true, true
	case core.SieveDivisible:
		return false, true
	}
	if n.BitLen() <= 64 && n.Uint64() < core.SmallPrimeBound*core.SmallPrimeBound {
		return true, true
	}
	return false, false
}
