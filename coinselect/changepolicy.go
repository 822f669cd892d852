package coinselect

// ChangePolicy decides, given a selector's current state and its
// funding target, whether the excess value above the target justifies
// creating a change (drain) output instead of simply paying it all to
// fees.
//
// A ChangePolicy never fails: in degenerate cases (e.g. the drain
// value would be negative after paying for its own output weight) it
// returns the Drain zero value.
type ChangePolicy func(cs *CoinSelector, target Target) Drain

// MinValue builds a ChangePolicy that creates a change output of the
// given weights whenever doing so would leave at least minValue
// satoshis in it.
func MinValue(weights DrainWeights, minValue Amount) ChangePolicy {
	return func(cs *CoinSelector, target Target) Drain {
		excess := cs.Excess(target)

		outputFee := int64(target.Fee.Rate.ImpliedFee(uint64(weights.OutputWeight)))
		drainValue := excess - outputFee

		if drainValue >= int64(minValue) {
			return Drain{Weights: weights, Value: Amount(drainValue)}
		}
		return Drain{}
	}
}

// MinValueAndWaste builds a ChangePolicy that applies MinValue's gate,
// AND additionally only creates change when doing so lowers the
// selection's total cost over time: the fee paid now to add the
// change output must be less than the future saving of not having to
// re-consolidate it at longTermFeerate.
//
// When currentFeerate is below longTermFeerate the right-hand side of
// that comparison is negative, so the inequality is never satisfied
// and change is always suppressed -- the economically correct
// behavior (consolidating now is already cheaper than waiting), with
// no special case required.
func MinValueAndWaste(
	weights DrainWeights,
	minValue Amount,
	currentFeerate FeeRate,
	longTermFeerate FeeRate,
) ChangePolicy {

	minValuePolicy := MinValue(weights, minValue)

	return func(cs *CoinSelector, target Target) Drain {
		costToCreate := float64(weights.OutputWeight) * currentFeerate.SatPerWU()
		futureSaving := float64(weights.SpendWeight) *
			(currentFeerate.SatPerWU() - longTermFeerate.SatPerWU())

		if costToCreate >= futureSaving {
			return Drain{}
		}
		return minValuePolicy(cs, target)
	}
}
