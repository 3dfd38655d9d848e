package ratio

import (
	"errors"
	"fmt"
)

var (
	errFeeOverOne      = errors.New("fee ratio greater than one")
	errZeroDenominator = errors.New("fee ratio denominator is zero")
)

// checkFeeRatio validates that r lies in [0, 1] and has a single
// representation of zero.
func checkFeeRatio[N, D Uint](r Ratio[N, D]) error {
	if r.Den == 0 {
		return fmt.Errorf("fee ratio %v: %w", r, errZeroDenominator)
	}
	if uint64(r.Num) > uint64(r.Den) {
		return fmt.Errorf("fee ratio %v: %w", r, errFeeOverOne)
	}
	return nil
}

// oneMinus returns the complementary ratio 1 - r in 64-bit form for a fee
// ratio r.
// The complement of the zero ratio is exactly 1/1.
func oneMinus[N, D Uint](r Ratio[N, D]) Ratio64 {
	if r.IsZero() {
		return One[uint64, uint64]()
	}
	n, d := uint64(r.Num), uint64(r.Den)
	// construction guarantees d >= n
	return Ratio64{Num: d - n, Den: d}
}

// CeilFee levies a fee by ceiling application of a ratio constrained to
// [0, 1]: the fee on an amount x is ceil(x*n/d) and the remainder is x
// minus that fee.
//
// The field is unexported to enforce the constraint; use [NewCeilFee].
// CeilFee is an immutable value and is safe for concurrent use by multiple
// goroutines.
type CeilFee[N, D Uint] struct {
	div Ceil[N, D]
}

// NewCeilFee returns a fee that levies r rounding fee amounts up.
//
// NewCeilFee returns an error if r is greater than one or if its denominator
// is zero.
// A zero denominator is rejected even though [Ratio.IsZero] treats it as
// zero, so that a zero fee has a single representation: write it with a zero
// numerator and a non-zero denominator instead.
func NewCeilFee[N, D Uint](r Ratio[N, D]) (CeilFee[N, D], error) {
	if err := checkFeeRatio(r); err != nil {
		return CeilFee[N, D]{}, err
	}
	return CeilFee[N, D]{div: Ceil[N, D]{Ratio: r}}, nil
}

// MustNewCeilFee is like [NewCeilFee] but panics if the ratio is not a valid
// fee ratio.
// It simplifies safe initialization of global variables holding fees.
func MustNewCeilFee[N, D Uint](r Ratio[N, D]) CeilFee[N, D] {
	f, err := NewCeilFee(r)
	if err != nil {
		panic(fmt.Sprintf("NewCeilFee(%v) failed: %v", r, err))
	}
	return f
}

// ZeroCeilFee returns the fee that levies nothing.
func ZeroCeilFee[N, D Uint]() CeilFee[N, D] {
	return CeilFee[N, D]{div: Ceil[N, D]{Ratio: Ratio[N, D]{Num: 0, Den: 1}}}
}

// OneCeilFee returns the fee that levies the whole amount.
func OneCeilFee[N, D Uint]() CeilFee[N, D] {
	return CeilFee[N, D]{div: Ceil[N, D]{Ratio: One[N, D]()}}
}

// Ratio returns the wrapped fee ratio.
func (f CeilFee[N, D]) Ratio() Ratio[N, D] {
	return f.div.Ratio
}

// Apply levies the fee on amount, splitting it into a remainder and a fee.
// ok is false if the fee computation overflows 64 bits.
func (f CeilFee[N, D]) Apply(amount uint64) (AfterFee, bool) {
	fee, ok := f.div.Apply(amount)
	if !ok {
		return AfterFee{}, false
	}
	// the ratio is at most one, so fee <= amount and the split cannot fail
	return BeforeFee(amount).WithFee(fee)
}

// OneMinusRatio returns the complementary ratio 1 - r in 64-bit form.
// The complement of the zero ratio is exactly 1/1.
func (f CeilFee[N, D]) OneMinusRatio() Ratio64 {
	return oneMinus(f.div.Ratio)
}

// ReverseFromRem returns the inclusive range of amounts whose
// [CeilFee.Apply] remainder equals rem.
//
// The remainder of a ceiling fee is a floor application of the complementary
// ratio, rem = x - ceil(x*n/d) = floor(x*(d-n)/d), so the reversal runs
// through [Floor] of [CeilFee.OneMinusRatio].
// The zero-ratio fee is the identity on remainders and reverses to
// [rem, rem] rather than through the complement.
func (f CeilFee[N, D]) ReverseFromRem(rem uint64) (Range, bool) {
	if f.div.Ratio.IsZero() {
		return single(rem), true
	}
	return Floor[uint64, uint64]{Ratio: f.OneMinusRatio()}.Reverse(rem)
}

// ReverseFromFee returns the inclusive range of amounts whose
// [CeilFee.Apply] fee equals fee.
//
// The one-ratio fee is the identity on fees and reverses to [fee, fee].
func (f CeilFee[N, D]) ReverseFromFee(fee uint64) (Range, bool) {
	if f.div.Ratio.IsOne() {
		return single(fee), true
	}
	return f.div.Reverse(fee)
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the form "CeilFee(n/d)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f CeilFee[N, D]) String() string {
	return "CeilFee(" + f.div.Ratio.String() + ")"
}

// FloorFee levies a fee by floor application of a ratio constrained to
// [0, 1]: the fee on an amount x is floor(x*n/d) and the remainder is x
// minus that fee.
//
// The field is unexported to enforce the constraint; use [NewFloorFee].
// FloorFee is an immutable value and is safe for concurrent use by multiple
// goroutines.
type FloorFee[N, D Uint] struct {
	div Floor[N, D]
}

// NewFloorFee returns a fee that levies r rounding fee amounts down.
//
// NewFloorFee returns an error if r is greater than one or if its
// denominator is zero.
// A zero denominator is rejected even though [Ratio.IsZero] treats it as
// zero, so that a zero fee has a single representation: write it with a zero
// numerator and a non-zero denominator instead.
func NewFloorFee[N, D Uint](r Ratio[N, D]) (FloorFee[N, D], error) {
	if err := checkFeeRatio(r); err != nil {
		return FloorFee[N, D]{}, err
	}
	return FloorFee[N, D]{div: Floor[N, D]{Ratio: r}}, nil
}

// MustNewFloorFee is like [NewFloorFee] but panics if the ratio is not a
// valid fee ratio.
// It simplifies safe initialization of global variables holding fees.
func MustNewFloorFee[N, D Uint](r Ratio[N, D]) FloorFee[N, D] {
	f, err := NewFloorFee(r)
	if err != nil {
		panic(fmt.Sprintf("NewFloorFee(%v) failed: %v", r, err))
	}
	return f
}

// ZeroFloorFee returns the fee that levies nothing.
func ZeroFloorFee[N, D Uint]() FloorFee[N, D] {
	return FloorFee[N, D]{div: Floor[N, D]{Ratio: Ratio[N, D]{Num: 0, Den: 1}}}
}

// OneFloorFee returns the fee that levies the whole amount.
func OneFloorFee[N, D Uint]() FloorFee[N, D] {
	return FloorFee[N, D]{div: Floor[N, D]{Ratio: One[N, D]()}}
}

// Ratio returns the wrapped fee ratio.
func (f FloorFee[N, D]) Ratio() Ratio[N, D] {
	return f.div.Ratio
}

// Apply levies the fee on amount, splitting it into a remainder and a fee.
// ok is false if the fee computation overflows 64 bits.
func (f FloorFee[N, D]) Apply(amount uint64) (AfterFee, bool) {
	fee, ok := f.div.Apply(amount)
	if !ok {
		return AfterFee{}, false
	}
	// the ratio is at most one, so fee <= amount and the split cannot fail
	return BeforeFee(amount).WithFee(fee)
}

// OneMinusRatio returns the complementary ratio 1 - r in 64-bit form.
// The complement of the zero ratio is exactly 1/1.
func (f FloorFee[N, D]) OneMinusRatio() Ratio64 {
	return oneMinus(f.div.Ratio)
}

// ReverseFromRem returns the inclusive range of amounts whose
// [FloorFee.Apply] remainder equals rem.
//
// The remainder of a floor fee is a ceiling application of the complementary
// ratio, rem = x - floor(x*n/d) = ceil(x*(d-n)/d), so the reversal runs
// through [Ceil] of [FloorFee.OneMinusRatio].
// The zero-ratio fee is the identity on remainders and reverses to
// [rem, rem] rather than through the complement.
func (f FloorFee[N, D]) ReverseFromRem(rem uint64) (Range, bool) {
	if f.div.Ratio.IsZero() {
		return single(rem), true
	}
	return Ceil[uint64, uint64]{Ratio: f.OneMinusRatio()}.Reverse(rem)
}

// ReverseFromFee returns the inclusive range of amounts whose
// [FloorFee.Apply] fee equals fee.
//
// The one-ratio fee is the identity on fees and reverses to [fee, fee].
func (f FloorFee[N, D]) ReverseFromFee(fee uint64) (Range, bool) {
	if f.div.Ratio.IsOne() {
		return single(fee), true
	}
	return f.div.Reverse(fee)
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the form "FloorFee(n/d)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f FloorFee[N, D]) String() string {
	return "FloorFee(" + f.div.Ratio.String() + ")"
}
