package coinselect

// TargetOutputs is the aggregate weight and value contribution of the
// recipient outputs a transaction must fund.
type TargetOutputs struct {
	// ValueSum is the sum of the recipient outputs' values.
	ValueSum Amount

	// WeightSum is the sum of the recipient outputs' serialized
	// weights.
	WeightSum uint32

	// NOutputs is the number of recipient outputs.
	NOutputs uint32
}

// OutputInfo is the (weight, value) pair FundOutputs folds into a
// TargetOutputs. Callers precompute Weight from whatever scriptPubKey
// they're paying, the same way a caller precomputes Candidate.Weight.
type OutputInfo struct {
	Weight uint32
	Value  Amount
}

// FundOutputs folds a list of recipient outputs into their aggregate
// TargetOutputs.
func FundOutputs(outputs []OutputInfo) TargetOutputs {
	var t TargetOutputs
	for _, o := range outputs {
		t.ValueSum += o.Value
		t.WeightSum += o.Weight
		t.NOutputs++
	}
	return t
}

// TargetFee is the feerate a transaction must clear, plus an optional
// replacement floor expressing BIP-125 "must exceed old fee by at
// least X" semantics as an absolute minimum fee: callers compute the
// delta over the replaced transaction's fee themselves and pass the
// resulting absolute floor in here.
type TargetFee struct {
	Rate FeeRate

	// Replace, if non-nil, is the minimum absolute fee the
	// transaction must pay regardless of what Rate alone would
	// imply.
	Replace *Amount
}

// FromFeerate constructs a TargetFee that only enforces a feerate,
// with no replacement floor.
func FromFeerate(rate FeeRate) TargetFee {
	return TargetFee{Rate: rate}
}

// replaceMinFeeOr0 returns the replacement floor, or 0 if none is set.
func (f TargetFee) replaceMinFeeOr0() Amount {
	if f.Replace == nil {
		return 0
	}
	return *f.Replace
}

// Target is everything a selection must fund: the recipient outputs
// and the fee requirement.
type Target struct {
	Outputs TargetOutputs
	Fee     TargetFee
}
