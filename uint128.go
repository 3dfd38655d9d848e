package ratio

import (
	"math"
	"math/bits"
)

// Helpers for the 128-bit intermediates produced by multiplying two 64-bit
// quantities.
// A 128-bit value is a (hi, lo) pair of uint64s.

// div128 returns the quotient and remainder of (hi, lo) divided by y.
// ok is false if the quotient does not fit in 64 bits.
// y must be non-zero.
func div128(hi, lo, y uint64) (quo, rem uint64, ok bool) {
	if hi >= y {
		return 0, 0, false
	}
	quo, rem = bits.Div64(hi, lo, y)
	return quo, rem, true
}

// div128Ceil is like div128 but rounds the quotient up.
func div128Ceil(hi, lo, y uint64) (quo uint64, ok bool) {
	quo, rem, ok := div128(hi, lo, y)
	if !ok {
		return 0, false
	}
	if rem != 0 {
		if quo == math.MaxUint64 {
			return 0, false
		}
		quo++
	}
	return quo, true
}

// add128 returns (hi, lo) + y.
// The sum of a product of two uint64s and a uint64 fits in 128 bits, so the
// addition cannot overflow for the inputs this package produces.
func add128(hi, lo, y uint64) (uint64, uint64) {
	lo, carry := bits.Add64(lo, y, 0)
	return hi + carry, lo
}

// sub128 returns (hi, lo) - y.
// The caller must ensure (hi, lo) >= y.
func sub128(hi, lo, y uint64) (uint64, uint64) {
	lo, borrow := bits.Sub64(lo, y, 0)
	return hi - borrow, lo
}

// cmp128 compares (xhi, xlo) and (yhi, ylo):
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func cmp128(xhi, xlo, yhi, ylo uint64) int {
	switch {
	case xhi != yhi:
		if xhi < yhi {
			return -1
		}
		return 1
	case xlo != ylo:
		if xlo < ylo {
			return -1
		}
		return 1
	}
	return 0
}
