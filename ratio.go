package ratio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/maphash"
	"math/bits"
	"strconv"
	"strings"
)

// Uint is the set of unsigned integer types usable as the numerator or
// denominator of a [Ratio].
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Ratio represents a non-negative rational number n/d that is applied to
// 64-bit token amounts.
// The numerator and denominator widths are chosen independently.
//
// A zero denominator is defined to be the zero ratio, identically to a zero
// numerator: 3/0 and 0/3 denote the same abstract value and compare, hash,
// and behave identically.
// The zero value of Ratio is the zero ratio.
//
// Ratio is an immutable value and is safe for concurrent use by multiple
// goroutines.
// Wrap it in [Floor] or [Ceil] to apply it to amounts.
type Ratio[N, D Uint] struct {
	Num N // numerator
	Den D // denominator
}

// Ratio64 is a ratio with 64-bit numerator and denominator.
// It is wide enough to hold the lowest form of a ratio of any width
// combination, so reducing operations return it.
type Ratio64 = Ratio[uint64, uint64]

var errInvalidRatio = errors.New("invalid ratio")

// New returns the ratio n/d.
func New[N, D Uint](n N, d D) Ratio[N, D] {
	return Ratio[N, D]{Num: n, Den: d}
}

// Zero returns the zero ratio 0/0.
// Any ratio with a zero numerator or a zero denominator compares equal to it.
func Zero[N, D Uint]() Ratio[N, D] {
	return Ratio[N, D]{}
}

// One returns the ratio 1/1.
func One[N, D Uint]() Ratio[N, D] {
	return Ratio[N, D]{Num: 1, Den: 1}
}

// Parse converts a string to a ratio.
// The input string must be in the form "n/d", where n and d are decimal
// integers fitting the respective type parameter, for example:
//
//	1/3
//	250/10000
//	0/0
//
// Parse returns an error if the string does not represent a valid ratio.
func Parse[N, D Uint](s string) (Ratio[N, D], error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return Ratio[N, D]{}, fmt.Errorf("parsing %q: %w", s, errInvalidRatio)
	}
	n, err := parseUint[N](num)
	if err != nil {
		return Ratio[N, D]{}, fmt.Errorf("parsing numerator of %q: %w", s, err)
	}
	d, err := parseUint[D](den)
	if err != nil {
		return Ratio[N, D]{}, fmt.Errorf("parsing denominator of %q: %w", s, err)
	}
	return Ratio[N, D]{Num: n, Den: d}, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding ratios.
func MustParse[N, D Uint](s string) Ratio[N, D] {
	r, err := Parse[N, D](s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return r
}

// parseUint parses s as an unsigned decimal integer that must fit the width
// of T.
func parseUint[T Uint](s string) (T, error) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	v := T(u)
	if uint64(v) != u {
		return 0, strconv.ErrRange
	}
	return v, nil
}

// IsZero returns:
//
//	true  if r == 0
//	false otherwise
//
// Both a zero numerator and a zero denominator make a ratio zero;
// applying a zero ratio to any amount yields 0.
func (r Ratio[N, D]) IsZero() bool {
	return r.Num == 0 || r.Den == 0
}

// IsOne returns:
//
//	true  if r == 1
//	false otherwise
//
// Applying a one ratio to any amount yields the amount unchanged.
func (r Ratio[N, D]) IsOne() bool {
	return !r.IsZero() && uint64(r.Num) == uint64(r.Den)
}

// Cmp numerically compares ratios:
//
//	-1 if r < q
//	 0 if r == q
//	+1 if r > q
//
// Zero ratios are equal to each other and less than all non-zero ratios,
// regardless of representation.
// Ratios denoting the same rational number, such as 2/4 and 1/2, compare
// equal.
func (r Ratio[N, D]) Cmp(q Ratio[N, D]) int {
	switch {
	case r.IsZero() && q.IsZero():
		return 0
	case r.IsZero():
		return -1
	case q.IsZero():
		return 1
	}
	// Cross-multiply in 128 bits so that products of two 64-bit operands
	// cannot overflow.
	// The zero cases above guarantee both denominators are non-zero.
	lhi, llo := bits.Mul64(uint64(r.Num), uint64(q.Den))
	rhi, rlo := bits.Mul64(uint64(q.Num), uint64(r.Den))
	return cmp128(lhi, llo, rhi, rlo)
}

// LowestForm returns the fraction reduced by the greatest common divisor of
// its parts, widened to 64 bits.
// The lowest form of the zero ratio is 0/0.
//
// Ratios denoting the same rational number have identical lowest forms,
// so the result is suitable as a map key.
func (r Ratio[N, D]) LowestForm() Ratio64 {
	if r.IsZero() {
		return Ratio64{}
	}
	n, d := uint64(r.Num), uint64(r.Den)
	// the denominator is usually the larger one, so start Euclid there
	g := gcd(d, n)
	// g is never 0 here due to the early return above
	return Ratio64{Num: n / g, Den: d / g}
}

// gcd returns the greatest common divisor of a and b.
// gcd(a, 0) = a, so the result is 0 only when both arguments are 0.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Hash returns a 64-bit hash of the ratio using the given seed.
// The hash is computed over the lowest form, so ratios that compare equal
// with [Ratio.Cmp] hash equally, including distinct representations of the
// same rational number such as 2/4 and 1/2.
func (r Ratio[N, D]) Hash(seed maphash.Seed) uint64 {
	l := r.LowestForm()
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], l.Num)
	binary.LittleEndian.PutUint64(b[8:], l.Den)
	return maphash.Bytes(seed, b[:])
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the ratio in the form "n/d".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Ratio[N, D]) String() string {
	return strconv.FormatUint(uint64(r.Num), 10) + "/" + strconv.FormatUint(uint64(r.Den), 10)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// It returns the same form as [Ratio.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Ratio[N, D]) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Ratio[N, D]) UnmarshalText(text []byte) error {
	q, err := Parse[N, D](string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", r, err)
	}
	*r = q
	return nil
}
