package core

// Reduce returns x mod n by align-shift-subtract: a copy of n is shifted
// left until it reaches x, then walked back down one bit at a time,
// subtracting whenever the remainder still covers it. This is binary long
// division with the quotient discarded. x may be wider than n (it usually
// is: the double-width product from Mul flows in here untruncated); the
// result has n's width.
//
// n must be nonzero. Callers construct n upstream (an odd candidate >= 3,
// or a witness span derived from one) and never pass zero; the panic is a
// precondition assertion, not a runtime branch contract.
func Reduce(x, n BigUint) BigUint {
	if n.IsZero() {
		panic("core.Reduce: zero modulus")
	}
	outWidth := n.LimbCount()
	w := x.LimbCount()
	if w < outWidth {
		w = outWidth
	}
	// One limb of headroom so the aligning shift can never wrap.
	w++
	rem := x.Extend(w)
	mod := n.Extend(w)
	shift := 0
	for mod.Cmp(rem) < 0 {
		mod = mod.Shl1()
		shift++
	}
	for shift >= 0 {
		if rem.Cmp(mod) >= 0 {
			rem = rem.Sub(mod)
		}
		mod = mod.Shr1()
		shift--
	}
	return rem.Truncate(outWidth)
}

// ModMul returns (a*b) mod n. The full double-width product is reduced;
// truncating it first would corrupt the residue for operands near full
// width.
func ModMul(a, b, n BigUint) BigUint {
	return Reduce(a.Mul(b), n)
}

// ModExp returns base^exp mod n by square-and-multiply. Base and exponent
// are consumed as copies; the accumulator never aliases an operand. n must
// be odd and nonzero (it is always a candidate under primality test).
func ModExp(base, exp, n BigUint) BigUint {
	if n.IsZero() || n.IsEven() {
		panic("core.ModExp: modulus must be odd and nonzero")
	}
	result := FromUint64(n.LimbCount(), 1)
	b := Reduce(base, n)
	e := exp.Clone()
	for !e.IsZero() {
		if !e.IsEven() {
			result = ModMul(result, b, n)
		}
		b = ModMul(b, b, n)
		e = e.Shr1()
	}
	return result
}

// ReduceWitness returns a Miller-Rabin base brought into [0, n). The caller
// keeps its argument: the reduced value is always a fresh BigUint, never a
// write-through to the input.
func ReduceWitness(a, n BigUint) BigUint {
	if a.LimbCount() == n.LimbCount() && a.Cmp(n) < 0 {
		return a.Clone()
	}
	return Reduce(a, n)
}
