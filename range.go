package ratio

import (
	"math"
	"strconv"
)

// Range is an inclusive range of 64-bit token amounts, as returned by the
// reversal methods.
// A range with Min greater than Max is empty: no amount satisfies it.
type Range struct {
	Min uint64 // smallest amount in the range
	Max uint64 // largest amount in the range
}

// single returns the range holding only amount.
func single(amount uint64) Range {
	return Range{Min: amount, Max: amount}
}

// full returns the range of all 64-bit amounts.
func full() Range {
	return Range{Min: 0, Max: math.MaxUint64}
}

// Contains returns true if amount lies within the range.
func (r Range) Contains(amount uint64) bool {
	return r.Min <= amount && amount <= r.Max
}

// IsEmpty returns true if no amount lies within the range.
func (r Range) IsEmpty() bool {
	return r.Min > r.Max
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the range in the form "[min, max]".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Range) String() string {
	return "[" + strconv.FormatUint(r.Min, 10) + ", " + strconv.FormatUint(r.Max, 10) + "]"
}
