package coinselect

// LowestFee is the one stable Metric: it minimizes the total satoshis
// paid, counting both the current transaction fee and the amortized
// future cost of spending a change output at LongTermFeerate.
type LowestFee struct {
	// LongTermFeerate is the feerate a change output is expected to be
	// consolidated at in the future. It prices the cost of creating
	// change now.
	LongTermFeerate FeeRate
}

// Score implements Metric.
func (m LowestFee) Score(cs *CoinSelector, target Target, policy ChangePolicy) (Score, bool) {
	if !cs.IsTargetMet(target) {
		return 0, false
	}

	d := cs.Drain(target, policy)

	currentFee := int64(cs.selectedValue) - int64(target.Outputs.ValueSum) - int64(d.Value)

	var futureSpendCost float64
	if d.Value != 0 {
		futureSpendCost = float64(d.Weights.SpendWeight) * m.LongTermFeerate.SatPerWU()
	}

	return Score(float64(currentFee) + futureSpendCost), true
}

// Bound implements Metric.
//
// It assumes the partial selection is completed optimally: the
// remaining value comes from the highest value-per-weight-unit
// candidates in the sort-order suffix starting at k, which is exactly
// the front of that suffix under the default descending-value-per-wu
// order. It stops as soon as a prefix of the suffix would satisfy the
// target and reports that prefix's implied fee as the bound.
//
// Any actual completion either uses this exact prefix (equal score)
// or a costlier one (because it spends more weight for the same or
// less value, or because it creates change whose future spend cost
// this bound ignores) -- so the bound never exceeds any reachable
// completion's true score, which is the only property BnB correctness
// requires of it.
func (m LowestFee) Bound(cs *CoinSelector, target Target, policy ChangePolicy, k int) (Score, bool) {
	value := cs.selectedValue
	weight := cs.selectedWeight
	inputCount := cs.selectedInputCount
	segwit := cs.selectedSegwitCount > 0

	check := func() (Score, bool) {
		txWeight := txWeightFromTotals(
			target, weight, inputCount, segwit, Drain{},
		)
		fee := requiredFee(target, txWeight)
		excess := int64(value) - int64(target.Outputs.ValueSum) - int64(fee)
		if inputCount > 0 && excess >= 0 {
			return Score(float64(fee)), true
		}
		return 0, false
	}

	if score, ok := check(); ok {
		return score, true
	}

	for _, idx := range cs.sortOrder[k:] {
		switch cs.states[idx] {
		case stateBanned, stateSelected:
			continue
		}

		c := cs.candidates[idx]
		value += c.Value
		weight += uint64(c.Weight)
		inputCount += uint64(c.InputCount)
		if c.IsSegwit {
			segwit = true
		}

		if score, ok := check(); ok {
			return score, true
		}
	}

	return 0, false
}

// txWeightFromTotals is txWeight's logic, parameterized over totals
// that may not yet live in a CoinSelector's own fields (used by Bound
// to evaluate hypothetical totals without mutating state).
func txWeightFromTotals(
	target Target,
	selectedWeight uint64,
	selectedInputCount uint64,
	anySegwit bool,
	d Drain,
) uint32 {

	tmp := &CoinSelector{
		selectedWeight:      selectedWeight,
		selectedInputCount:  selectedInputCount,
		selectedSegwitCount: boolToCount(anySegwit),
	}
	return tmp.txWeight(target, d)
}

func boolToCount(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
