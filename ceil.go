package ratio

import (
	"math"
	"math/bits"
)

// Ceil wraps a ratio for ceiling-rounded application to token amounts:
// applying it to an amount x yields ceil(x*n/d).
//
// Ceil is an immutable value and is safe for concurrent use by multiple
// goroutines.
type Ceil[N, D Uint] struct {
	Ratio Ratio[N, D]
}

// Apply returns ceil(amount * n / d).
//
// The zero ratio maps every amount to 0.
// ok is false if the result does not fit in 64 bits.
func (c Ceil[N, D]) Apply(amount uint64) (uint64, bool) {
	if c.Ratio.IsZero() {
		return 0, true
	}
	// amount and the numerator are both 64-bit, so the product fits in
	// 128 bits; the ratio is non-zero, so the denominator is non-zero
	hi, lo := bits.Mul64(amount, uint64(c.Ratio.Num))
	quo, ok := div128Ceil(hi, lo, uint64(c.Ratio.Den))
	if !ok {
		return 0, false
	}
	return quo, true
}

// Reverse returns the inclusive range of amounts that [Ceil.Apply] maps to
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
//	y = ceil(xn/d)
//	y-1 < xn/d <= y
//	(dy-d)/n < x <= dy/n
func (c Ceil[N, D]) Reverse(out uint64) (Range, bool) {
	if c.Ratio.IsZero() {
		if out != 0 {
			return Range{}, false
		}
		return full(), true
	}
	// Ceiling division by a non-zero ratio yields 0 only for input 0.
	// Returning early also keeps dy-d below from underflowing.
	if out == 0 {
		return single(0), true
	}

	n, d := uint64(c.Ratio.Num), uint64(c.Ratio.Den)
	dyHi, dyLo := bits.Mul64(d, out)

	// the lower bound of the derivation is exclusive, so the minimum is
	// one past the floored quotient
	hi, lo := sub128(dyHi, dyLo, d)
	quo, _, ok := div128(hi, lo, n)
	if !ok || quo == math.MaxUint64 {
		return Range{}, false
	}
	min := quo + 1

	max, _, ok := div128(dyHi, dyLo, n)
	if !ok {
		max = math.MaxUint64
	}
	return Range{Min: min, Max: max}, true
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the form "Ceil(n/d)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Ceil[N, D]) String() string {
	return "Ceil(" + c.Ratio.String() + ")"
}
