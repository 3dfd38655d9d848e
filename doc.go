/*
Package ratio implements exact application of rational ratios to 64-bit
unsigned token amounts, and exact reversal from an observed output back to
the closed range of inputs that could have produced it.
A fee layer on top splits amounts into a remainder and a fee with an
additive round-trip guarantee.

# Features

  - Immutable values, ensuring safe usage across multiple goroutines
  - Numerator and denominator widths chosen independently from the unsigned
    integer types, collapsed into a single generic implementation
  - Floor- and ceiling-rounded application with 128-bit intermediates, so no
    product of 64-bit quantities can silently overflow or lose precision
  - Exact reversal: the inclusive range of every input consistent with an
    output, failing on ranges below the 64-bit domain and saturating above it
  - A fee abstraction over ratios constrained to [0, 1], reversible from
    either the remainder or the fee
  - Conversion of decimal rates to exact fees

# Representation

A [Ratio] is a numerator/denominator pair. A zero denominator is defined to
be the zero ratio, identically to a zero numerator; the two representations
compare, hash, and behave identically, and [Ratio.LowestForm] reduces both
to 0/0. [Floor] and [Ceil] tag a ratio with a rounding mode; [CeilFee] and
[FloorFee] constrain a tagged ratio to [0, 1]; an [AfterFee] carries a
(remainder, fee) pair whose sum is always the original amount.

# Operations

Application multiplies an amount by the numerator in 128 bits and divides by
the denominator, rounding per mode. Reversal computes, from the rounding
inequalities, the exact inclusive range of amounts mapping to an output.
Fee application splits an amount via checked subtraction; fee reversal runs
through the held ratio for fees and through the complementary ratio with the
opposite rounding for remainders.

# Errors

Construction of fees fails with an error when the ratio exceeds one or has a
zero denominator. Application and reversal report numeric infeasibility,
such as a result beyond 64 bits, through a comma-ok boolean rather than an
error: overflow here is an expected, checkable outcome of the input's
magnitude. Nothing is logged, retried, or recovered; the caller decides.
*/
package ratio
