package coinselect

import "github.com/ltcsuite/coinselect/coinselect/drain"

// DrainWeights describes the weight impact of a hypothetical change
// output: adding it now, and spending it in some future transaction.
type DrainWeights struct {
	// OutputWeight is the weight contribution of adding one change
	// output to the base transaction, including any weight caused by
	// the output-count varint crossing a size boundary.
	OutputWeight uint32

	// SpendWeight is the weight of a future input that spends this
	// change output.
	SpendWeight uint32

	// NOutputs is how many change outputs OutputWeight accounts for.
	// Zero is treated as 1 (the common case of a single change
	// output).
	NOutputs uint32
}

// outputCount returns NOutputs, defaulting to 1.
func (d DrainWeights) outputCount() uint32 {
	if d.NOutputs == 0 {
		return 1
	}
	return d.NOutputs
}

// TrKeyspend is the DrainWeights for a single P2TR change output
// spent later via the taproot key-spend path.
var TrKeyspend = DrainWeights{
	OutputWeight: drain.TROutputWeight,
	SpendWeight:  drain.TRKeyspendSpendWeight,
	NOutputs:     1,
}

// Drain is the decision a ChangePolicy makes: either "no drain",
// represented by the zero value, or a concrete change output of a
// given value and weight impact.
type Drain struct {
	Weights DrainWeights
	Value   Amount
}

// IsNone reports whether this Drain is the "no drain" sentinel.
func (d Drain) IsNone() bool {
	return d.Value == 0 && d.Weights == DrainWeights{}
}
