package coinselect

import "math"

// FeeRate is a satoshi-per-weight-unit rate, kept as a fractional
// value so that sat/vB inputs (which are divided by 4 to become
// sat/wu) don't lose precision before a fee is actually computed.
//
// This mirrors the role chainfee.SatPerKWeight plays elsewhere in the
// ltcsuite/lnd stack, but chainfee's integer-satoshi-per-kilo-weight
// representation can't carry fractional sat/wu, which is needed so
// that a sat/vB rate divided by 4 doesn't lose precision before
// ImpliedFee's final round-up.
type FeeRate float64

// FromSatPerVB constructs a FeeRate from a satoshi-per-vbyte rate.
func FromSatPerVB(satPerVB float32) FeeRate {
	return FeeRate(satPerVB) / 4
}

// FromSatPerWU constructs a FeeRate directly from a
// satoshi-per-weight-unit rate.
func FromSatPerWU(satPerWU float32) FeeRate {
	return FeeRate(satPerWU)
}

// DefaultMinRelayFee is the network's default minimum relay feerate of
// 1 sat/vB.
func DefaultMinRelayFee() FeeRate {
	return FromSatPerVB(1)
}

// ZeroFeeRate is the zero feerate, useful for tests and for targets
// that don't pay a feerate-derived fee at all (e.g. fully covered by a
// replacement floor).
func ZeroFeeRate() FeeRate {
	return FeeRate(0)
}

// ImpliedFee returns the fee, rounded up to the next whole satoshi,
// that this feerate implies for the given weight.
func (r FeeRate) ImpliedFee(weight uint64) Amount {
	fee := math.Ceil(float64(r) * float64(weight))
	if fee < 0 {
		return 0
	}
	if fee > math.MaxInt64 {
		return Amount(math.MaxInt64)
	}
	return Amount(fee)
}

// SatPerWU returns the feerate as a raw satoshi-per-weight-unit float.
func (r FeeRate) SatPerWU() float64 {
	return float64(r)
}

// WeightToVBytes converts a weight in weight units to virtual bytes,
// rounding up.
func WeightToVBytes(weight uint64) uint64 {
	return (weight + 3) / 4
}

// saturatingSub returns a - b, floored at 0, for amounts that must
// never go negative.
func saturatingSub(a, b Amount) Amount {
	if b >= a {
		return 0
	}
	return a - b
}

// saturatingAddU64 adds two uint64s, saturating at math.MaxUint64
// instead of wrapping.
func saturatingAddU64(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return math.MaxUint64
	}
	return sum
}
