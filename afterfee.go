package ratio

// AfterFee holds the outcome of levying a fee on a token amount: the
// remainder kept and the fee taken.
//
// Invariant: Rem() + Fee() never overflows and equals the original amount
// BeforeFee().
// The fields are unexported so the pair can only be built through
// [BeforeFee], which enforces the invariant by checked subtraction.
type AfterFee struct {
	rem uint64
	fee uint64
}

// Rem returns the token amount remaining after the fee was levied.
func (a AfterFee) Rem() uint64 {
	return a.rem
}

// Fee returns the fee amount that was levied.
func (a AfterFee) Fee() uint64 {
	return a.fee
}

// BeforeFee returns the original token amount before the fee was levied,
// Rem() + Fee().
func (a AfterFee) BeforeFee() uint64 {
	return a.rem + a.fee
}

// BeforeFee is a token amount prior to the levying of a fee.
// Its [BeforeFee.WithFee] and [BeforeFee.WithRem] methods are the only ways
// to construct an [AfterFee].
type BeforeFee uint64

// WithFee splits the amount into the given fee and the remainder left after
// subtracting it.
// ok is false if fee exceeds the amount.
func (b BeforeFee) WithFee(fee uint64) (AfterFee, bool) {
	if fee > uint64(b) {
		return AfterFee{}, false
	}
	return AfterFee{rem: uint64(b) - fee, fee: fee}, true
}

// WithRem splits the amount into the given remainder and the fee left after
// subtracting it.
// ok is false if rem exceeds the amount.
func (b BeforeFee) WithRem(rem uint64) (AfterFee, bool) {
	if rem > uint64(b) {
		return AfterFee{}, false
	}
	return AfterFee{rem: rem, fee: uint64(b) - rem}, true
}
