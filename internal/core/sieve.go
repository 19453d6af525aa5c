package core

// smallPrimes is the fixed trial-division table: every prime below 200.
var smallPrimes = [...]uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
	127, 131, 137, 139, 149, 151, 157, 163, 167, 173,
	179, 181, 191, 193, 197, 199,
}

// smallPrimeMagics holds a precomputed fast-divisibility magic per table
// prime, so single-limb candidates are filtered without a divide per prime.
var smallPrimeMagics [len(smallPrimes)]M64

func init() {
	for i, p := range smallPrimes {
		smallPrimeMagics[i] = ComputeM64(p)
	}
}

// SmallPrimeBound is the exclusive upper bound of the sieve table. Any
// value below SmallPrimeBound² that survives the sieve is prime, exactly.
const SmallPrimeBound = 200

// SieveResult classifies a candidate against the small-prime table.
type SieveResult int

const (
	// SieveNeither: no table prime divides the candidate; nothing decided.
	SieveNeither SieveResult = iota
	// SieveSmallPrime: the candidate is a table prime, so it is prime.
	SieveSmallPrime
	// SieveDivisible: a table prime divides the candidate, so it is
	// composite (the candidate itself is not that prime).
	SieveDivisible
)

// QuickReject trial-divides v by every prime below 200. An exact table
// match decides primality outright; a proper divisor decides
// compositeness; otherwise nothing is decided and the caller falls through
// to Miller-Rabin.
func QuickReject(v BigUint) SieveResult {
	if v.BitLen() <= 64 {
		n := v.Uint64()
		for i, p := range smallPrimes {
			if n == p {
				return SieveSmallPrime
			}
			if IsDivisibleU64(n, smallPrimeMagics[i]) {
				return SieveDivisible
			}
		}
		return SieveNeither
	}
	// Multi-limb values cannot match a table prime.
	for _, p := range smallPrimes {
		if v.ModUint64(p) == 0 {
			return SieveDivisible
		}
	}
	return SieveNeither
}

// SmallPrimes returns a copy of the sieve table in ascending order.
func SmallPrimes() []uint64 {
	out := make([]uint64, len(smallPrimes))
	copy(out, smallPrimes[:])
	return out
}
