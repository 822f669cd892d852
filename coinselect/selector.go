package coinselect

import (
	"sort"

	"github.com/ltcsuite/coinselect/coinselect/txsize"
)

// candidateState is the per-index state tracked by a CoinSelector: a
// byte-per-candidate enum over what would otherwise be a bitmap (or
// two bitmaps, one for selected and one for banned).
type candidateState uint8

const (
	stateUnselected candidateState = iota
	stateSelected
	stateBanned
)

// CoinSelector is the mutable selection state over an immutable
// candidate catalog. It tracks, per candidate index, whether the
// candidate is unselected, selected, or banned, plus a sort order
// used both by the greedy selector and by BnB branching.
type CoinSelector struct {
	candidates []Candidate
	states     []candidateState
	sortOrder  []int

	selectedValue       Amount
	selectedWeight      uint64
	selectedInputCount  uint64
	selectedSegwitCount uint64
}

// NewCoinSelector creates a CoinSelector over the given candidate
// catalog. All candidates start unselected, and the initial sort
// order is input order.
func NewCoinSelector(candidates []Candidate) *CoinSelector {
	sortOrder := make([]int, len(candidates))
	for i := range sortOrder {
		sortOrder[i] = i
	}

	return &CoinSelector{
		candidates: candidates,
		states:     make([]candidateState, len(candidates)),
		sortOrder:  sortOrder,
	}
}

// NumCandidates returns the size of the candidate catalog.
func (cs *CoinSelector) NumCandidates() int {
	return len(cs.candidates)
}

// Candidate returns the candidate at catalog index i.
func (cs *CoinSelector) Candidate(i int) Candidate {
	return cs.candidates[i]
}

// SelectedValue returns the total value of all selected candidates.
func (cs *CoinSelector) SelectedValue() Amount {
	return cs.selectedValue
}

// SelectedWeight returns the total weight of all selected candidates,
// not including any base transaction, output, or drain weight.
func (cs *CoinSelector) SelectedWeight() uint64 {
	return cs.selectedWeight
}

// SelectedInputCount returns the total real input count across all
// selected candidates.
func (cs *CoinSelector) SelectedInputCount() uint64 {
	return cs.selectedInputCount
}

// SelectedSegwitCount returns how many selected candidates are
// segwit.
func (cs *CoinSelector) SelectedSegwitCount() uint64 {
	return cs.selectedSegwitCount
}

// IsSelected reports whether candidate i is currently selected.
func (cs *CoinSelector) IsSelected(i int) bool {
	return cs.states[i] == stateSelected
}

// IsBanned reports whether candidate i is currently banned.
func (cs *CoinSelector) IsBanned(i int) bool {
	return cs.states[i] == stateBanned
}

// Select marks candidate i selected. It fails if i is already
// selected or banned.
func (cs *CoinSelector) Select(i int) error {
	switch cs.states[i] {
	case stateSelected:
		return &SelectionConflictError{Index: i, Kind: ConflictAlreadySelected}
	case stateBanned:
		return &SelectionConflictError{Index: i, Kind: ConflictBanned}
	}

	cs.states[i] = stateSelected
	cs.addToTotals(i)
	return nil
}

// Deselect marks candidate i unselected. It is a silent no-op if i is
// already unselected.
func (cs *CoinSelector) Deselect(i int) {
	if cs.states[i] != stateSelected {
		return
	}
	cs.states[i] = stateUnselected
	cs.subFromTotals(i)
}

// Ban forbids candidate i from ever being selected. If i is currently
// selected, it is deselected first.
func (cs *CoinSelector) Ban(i int) error {
	if cs.states[i] == stateSelected {
		cs.subFromTotals(i)
	}
	cs.states[i] = stateBanned
	return nil
}

// Unban clears a ban on candidate i, returning it to the unselected
// state. It fails if i is not currently banned.
func (cs *CoinSelector) Unban(i int) error {
	if cs.states[i] != stateBanned {
		return &SelectionConflictError{Index: i, Kind: ConflictNotBanned}
	}
	cs.states[i] = stateUnselected
	return nil
}

func (cs *CoinSelector) addToTotals(i int) {
	c := cs.candidates[i]
	cs.selectedValue += c.Value
	cs.selectedWeight += uint64(c.Weight)
	cs.selectedInputCount += uint64(c.InputCount)
	if c.IsSegwit {
		cs.selectedSegwitCount++
	}
}

func (cs *CoinSelector) subFromTotals(i int) {
	c := cs.candidates[i]
	cs.selectedValue = saturatingSub(cs.selectedValue, c.Value)
	cs.selectedWeight -= uint64(c.Weight)
	cs.selectedInputCount -= uint64(c.InputCount)
	if c.IsSegwit {
		cs.selectedSegwitCount--
	}
}

// SortCandidatesBy replaces the sort order with the stable sort
// induced by less, a comparator over candidate indices (not sort-order
// positions).
func (cs *CoinSelector) SortCandidatesBy(less func(a, b int) bool) {
	sort.SliceStable(cs.sortOrder, func(i, j int) bool {
		return less(cs.sortOrder[i], cs.sortOrder[j])
	})
}

// SortCandidatesByKey is a convenience wrapper over SortCandidatesBy
// for comparators expressible as an ascending numeric key.
func (cs *CoinSelector) SortCandidatesByKey(key func(i int) float64) {
	cs.SortCandidatesBy(func(a, b int) bool {
		return key(a) < key(b)
	})
}

// SortCandidatesByDescendingValuePWU sorts by descending value per
// weight unit, breaking ties by descending value and then by
// ascending index. This is the default ordering BnB relies on to keep
// its bound tight.
func (cs *CoinSelector) SortCandidatesByDescendingValuePWU() {
	cs.SortCandidatesBy(func(a, b int) bool {
		ca, cb := cs.candidates[a], cs.candidates[b]

		ra, rb := ca.valuePerWeight(), cb.valuePerWeight()
		if ra != rb {
			return ra > rb
		}
		if ca.Value != cb.Value {
			return ca.Value > cb.Value
		}
		return a < b
	})
}

// drainNOutputs is a small helper used when computing tx weight with
// a drain.
func drainNOutputs(d Drain) uint32 {
	if d.IsNone() {
		return 0
	}
	return d.Weights.outputCount()
}

// txWeight computes the full transaction weight implied by the
// current selection, the target's recipient outputs, and an optional
// drain.
func (cs *CoinSelector) txWeight(target Target, drain Drain) uint32 {
	weight := txsize.TxOverheadWeight
	weight += target.Outputs.WeightSum
	weight += txsize.OutputCountVarIntGrowth(
		uint64(target.Outputs.NOutputs) + uint64(drainNOutputs(drain)),
	)
	weight += uint32(cs.selectedWeight)
	weight += txsize.InputCountVarIntGrowth(cs.selectedInputCount)
	if cs.selectedSegwitCount > 0 {
		weight += txsize.SegwitHeaderWeight
	}
	if !drain.IsNone() {
		weight += drain.Weights.OutputWeight
	}
	return weight
}

// Weight returns the transaction weight implied by the current
// selection and target, optionally including a drain output.
func (cs *CoinSelector) Weight(target Target, d Drain) uint32 {
	return cs.txWeight(target, d)
}

// requiredFee returns the larger of the rate-implied fee for
// txWeight and the target's replacement floor.
func requiredFee(target Target, txWeight uint32) Amount {
	rateFee := target.Fee.Rate.ImpliedFee(uint64(txWeight))
	floor := target.Fee.replaceMinFeeOr0()
	if floor > rateFee {
		return floor
	}
	return rateFee
}

// ImpliedFee returns the fee required to meet target given the
// current selection, ignoring any drain.
func (cs *CoinSelector) ImpliedFee(target Target) Amount {
	return requiredFee(target, cs.txWeight(target, Drain{}))
}

// Excess returns selected_value - target_value - required_fee,
// without considering any drain. It may be negative.
func (cs *CoinSelector) Excess(target Target) int64 {
	fee := cs.ImpliedFee(target)
	return int64(cs.selectedValue) - int64(target.Outputs.ValueSum) - int64(fee)
}

// Missing returns max(0, -Excess(target)).
func (cs *CoinSelector) Missing(target Target) Amount {
	excess := cs.Excess(target)
	if excess >= 0 {
		return 0
	}
	return Amount(-excess)
}

// IsTargetMet reports whether the current selection funds target:
// Excess must be non-negative, and at least one candidate must be
// selected (a zero-input transaction can never be valid, even if the
// target value is zero, because fees still apply).
func (cs *CoinSelector) IsTargetMet(target Target) bool {
	if cs.selectedInputCount == 0 {
		return false
	}
	return cs.Excess(target) >= 0
}

// Drain applies policy to the current selection and target, returning
// the resulting Drain decision.
func (cs *CoinSelector) Drain(target Target, policy ChangePolicy) Drain {
	return policy(cs, target)
}

// SelectUntilTargetMet iterates the sort order, selecting each
// unselected, unbanned candidate in turn, stopping at the first
// selection that meets target. It returns InsufficientFundsError if
// the whole catalog is exhausted without meeting target.
func (cs *CoinSelector) SelectUntilTargetMet(target Target) error {
	for _, i := range cs.sortOrder {
		if cs.states[i] != stateUnselected {
			continue
		}
		if err := cs.Select(i); err != nil {
			return err
		}
		if cs.IsTargetMet(target) {
			log.Debugf("select_until_target_met satisfied target "+
				"after selecting candidate %d", i)
			return nil
		}
	}

	return &InsufficientFundsError{Missing: cs.Missing(target)}
}

// clone returns a deep-enough copy of cs for use as an independent
// BnB search node: the state array is copied (so mutating one branch
// doesn't affect a sibling), while the read-only candidate catalog and
// sort order are shared.
func (cs *CoinSelector) clone() *CoinSelector {
	states := make([]candidateState, len(cs.states))
	copy(states, cs.states)

	return &CoinSelector{
		candidates:          cs.candidates,
		states:              states,
		sortOrder:           cs.sortOrder,
		selectedValue:       cs.selectedValue,
		selectedWeight:      cs.selectedWeight,
		selectedInputCount:  cs.selectedInputCount,
		selectedSegwitCount: cs.selectedSegwitCount,
	}
}
