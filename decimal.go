package ratio

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

var errNegativeDecimal = errors.New("negative decimal")

// pow10 holds the powers of ten up to 10^19, the largest that fits in
// 64 bits.
// [decimal.MaxScale] is 19, so every decimal scale has an entry.
var pow10 = [...]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// NewFromDecimal converts a non-negative decimal coef / 10^scale to the
// exact ratio coef/10^scale, e.g. 0.065 becomes 65/1000.
// See also method [Ratio.LowestForm] for the reduced equivalent.
//
// NewFromDecimal returns an error if the decimal is negative.
func NewFromDecimal(d decimal.Decimal) (Ratio64, error) {
	if d.IsNeg() {
		return Ratio64{}, fmt.Errorf("converting %v: %w", d, errNegativeDecimal)
	}
	return Ratio64{Num: d.Coef(), Den: pow10[d.Scale()]}, nil
}

// NewCeilFeeFromDecimal converts a decimal rate within [0, 1] to a fee that
// rounds fee amounts up.
// See also constructors [NewFromDecimal] and [NewCeilFee].
func NewCeilFeeFromDecimal(rate decimal.Decimal) (CeilFee[uint64, uint64], error) {
	r, err := NewFromDecimal(rate)
	if err != nil {
		return CeilFee[uint64, uint64]{}, fmt.Errorf("converting rate: %w", err)
	}
	f, err := NewCeilFee(r)
	if err != nil {
		return CeilFee[uint64, uint64]{}, fmt.Errorf("converting rate: %w", err)
	}
	return f, nil
}

// NewFloorFeeFromDecimal converts a decimal rate within [0, 1] to a fee that
// rounds fee amounts down.
// See also constructors [NewFromDecimal] and [NewFloorFee].
func NewFloorFeeFromDecimal(rate decimal.Decimal) (FloorFee[uint64, uint64], error) {
	r, err := NewFromDecimal(rate)
	if err != nil {
		return FloorFee[uint64, uint64]{}, fmt.Errorf("converting rate: %w", err)
	}
	f, err := NewFloorFee(r)
	if err != nil {
		return FloorFee[uint64, uint64]{}, fmt.Errorf("converting rate: %w", err)
	}
	return f, nil
}
