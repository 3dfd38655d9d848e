package ratio

import (
	"math"
	"math/bits"
)

// Floor wraps a ratio for floor-rounded application to token amounts:
// applying it to an amount x yields floor(x*n/d).
// Its reversal derivation differs from the ceiling one, so the two rounding
// modes are separate types rather than a runtime flag.
//
// Floor is an immutable value and is safe for concurrent use by multiple
// goroutines.
type Floor[N, D Uint] struct {
	Ratio Ratio[N, D]
}

// Apply returns floor(amount * n / d).
//
// The zero ratio maps every amount to 0.
// ok is false if the result does not fit in 64 bits.
func (f Floor[N, D]) Apply(amount uint64) (uint64, bool) {
	if f.Ratio.IsZero() {
		return 0, true
	}
	// amount and the numerator are both 64-bit, so the product fits in
	// 128 bits; the ratio is non-zero, so the denominator is non-zero
	hi, lo := bits.Mul64(amount, uint64(f.Ratio.Num))
	quo, _, ok := div128(hi, lo, uint64(f.Ratio.Den))
	if !ok {
		return 0, false
	}
	return quo, true
}

// Reverse returns the inclusive range of amounts that [Floor.Apply] maps to
// out.
//
// For the zero ratio every amount maps to 0, so reversing 0 yields the full
// range and reversing anything else fails.
// A range minimum beyond 64 bits makes the call fail; a range maximum beyond
// 64 bits saturates to [math.MaxUint64], since the minimum is still a valid
// answer.
// The result may be empty (Min > Max) when no amount maps to out.
//
// Derivation, with x the unknown amount, y = out and n/d the ratio:
//
//	y = floor(xn/d)
//	y <= xn/d < y+1
//	dy/n <= x < (dy+d)/n
func (f Floor[N, D]) Reverse(out uint64) (Range, bool) {
	if f.Ratio.IsZero() {
		if out != 0 {
			return Range{}, false
		}
		return full(), true
	}

	n, d := uint64(f.Ratio.Num), uint64(f.Ratio.Den)
	dyHi, dyLo := bits.Mul64(d, out)

	min, ok := div128Ceil(dyHi, dyLo, n)
	if !ok {
		return Range{}, false
	}

	hi, lo := add128(dyHi, dyLo, d)
	max, rem, ok := div128(hi, lo, n)
	switch {
	case !ok:
		max = math.MaxUint64
	case rem == 0:
		// the upper bound of the derivation is exclusive
		max--
	}
	return Range{Min: min, Max: max}, true
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the form "Floor(n/d)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Floor[N, D]) String() string {
	return "Floor(" + f.Ratio.String() + ")"
}
