package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func simpleTarget(value Amount, rate FeeRate) Target {
	return Target{
		Outputs: FundOutputs([]OutputInfo{
			{Weight: 0, Value: value},
		}),
		Fee: FromFeerate(rate),
	}
}

// TestExactFitGreedy checks that a single large candidate funds a
// modest target with a comfortable excess.
func TestExactFitGreedy(t *testing.T) {
	candidates := []Candidate{
		{InputCount: 1, Value: 100_000, Weight: 272, IsSegwit: true},
	}

	target := simpleTarget(90_000, FromSatPerVB(1))

	cs := NewCoinSelector(candidates)
	err := cs.SelectUntilTargetMet(target)
	require.NoError(t, err)

	require.True(t, cs.IsSelected(0))
	require.True(t, cs.IsTargetMet(target))

	excess := cs.Excess(target)
	require.Greater(t, excess, int64(9_900))
	require.Less(t, excess, int64(10_000))
}

// TestInsufficientFunds checks that a catalog too small to fund the
// target reports how much is still missing.
func TestInsufficientFunds(t *testing.T) {
	candidates := []Candidate{
		{InputCount: 1, Value: 10_000, Weight: 272, IsSegwit: true},
	}

	target := simpleTarget(1_000_000, FromSatPerVB(1))

	cs := NewCoinSelector(candidates)
	err := cs.SelectUntilTargetMet(target)
	require.Error(t, err)

	var insufficient *InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	require.Greater(t, insufficient.Missing, Amount(990_000))
}

// TestMinimalityUnderGreedyOrder checks that deselecting any single
// selected index breaks target-met-ness after a successful
// SelectUntilTargetMet: the greedy order never over-selects.
func TestMinimalityUnderGreedyOrder(t *testing.T) {
	candidates := []Candidate{
		{InputCount: 1, Value: 50_000, Weight: 272, IsSegwit: true},
		{InputCount: 1, Value: 50_000, Weight: 272, IsSegwit: true},
		{InputCount: 1, Value: 50_000, Weight: 272, IsSegwit: true},
	}

	target := simpleTarget(120_000, FromSatPerVB(1))

	cs := NewCoinSelector(candidates)
	require.NoError(t, cs.SelectUntilTargetMet(target))
	require.True(t, cs.IsTargetMet(target))

	for i := 0; i < len(candidates); i++ {
		if !cs.IsSelected(i) {
			continue
		}
		cs.Deselect(i)
		require.False(t, cs.IsTargetMet(target))
		require.NoError(t, cs.Select(i))
	}
}

// TestReplacementFeeFloor checks a replacement floor that exceeds what
// the feerate alone would require.
func TestReplacementFeeFloor(t *testing.T) {
	floor := Amount(50_000)
	target := Target{
		Outputs: FundOutputs([]OutputInfo{{Weight: 0, Value: 100_000}}),
		Fee: TargetFee{
			Rate:    FromSatPerVB(1),
			Replace: &floor,
		},
	}

	candidates := []Candidate{
		{InputCount: 1, Value: 120_000, Weight: 272, IsSegwit: true},
	}

	cs := NewCoinSelector(candidates)
	require.NoError(t, cs.Select(0))

	// 120,000 - 100,000 = 20,000 available for fees, well short of the
	// 50,000 replacement floor.
	require.False(t, cs.IsTargetMet(target))

	candidates[0].Value = 200_000
	cs2 := NewCoinSelector(candidates)
	require.NoError(t, cs2.Select(0))
	require.True(t, cs2.IsTargetMet(target))
}

// TestBannedNeverSelected checks that a banned candidate is skipped by
// the greedy selector even when it's needed to meet the target.
func TestBannedNeverSelected(t *testing.T) {
	candidates := []Candidate{
		{InputCount: 1, Value: 100_000, Weight: 272, IsSegwit: true},
		{InputCount: 1, Value: 10, Weight: 272, IsSegwit: true},
	}

	target := simpleTarget(90_000, FromSatPerVB(1))

	cs := NewCoinSelector(candidates)
	require.NoError(t, cs.Ban(0))

	err := cs.SelectUntilTargetMet(target)
	require.Error(t, err)

	var insufficient *InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	require.False(t, cs.IsSelected(0))
}

func TestSelectDeselectBanConflicts(t *testing.T) {
	candidates := []Candidate{
		{InputCount: 1, Value: 1, Weight: 1, IsSegwit: false},
	}
	cs := NewCoinSelector(candidates)

	require.NoError(t, cs.Select(0))
	err := cs.Select(0)
	var conflict *SelectionConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, ConflictAlreadySelected, conflict.Kind)

	cs.Deselect(0)
	require.False(t, cs.IsSelected(0))
	// Deselecting again is a silent no-op.
	cs.Deselect(0)

	require.NoError(t, cs.Ban(0))
	err = cs.Select(0)
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, ConflictBanned, conflict.Kind)

	require.NoError(t, cs.Unban(0))
	require.NoError(t, cs.Select(0))
}

func TestBanDeselectsFirst(t *testing.T) {
	candidates := []Candidate{
		{InputCount: 1, Value: 100, Weight: 10, IsSegwit: false},
	}
	cs := NewCoinSelector(candidates)
	require.NoError(t, cs.Select(0))
	require.Equal(t, Amount(100), cs.SelectedValue())

	require.NoError(t, cs.Ban(0))
	require.Equal(t, Amount(0), cs.SelectedValue())
	require.True(t, cs.IsBanned(0))
}

func TestSortCandidatesByDescendingValuePWU(t *testing.T) {
	candidates := []Candidate{
		{InputCount: 1, Value: 100, Weight: 100, IsSegwit: false}, // ratio 1
		{InputCount: 1, Value: 400, Weight: 100, IsSegwit: false}, // ratio 4
		{InputCount: 1, Value: 200, Weight: 100, IsSegwit: false}, // ratio 2
	}
	cs := NewCoinSelector(candidates)
	cs.SortCandidatesByDescendingValuePWU()

	require.Equal(t, []int{1, 2, 0}, cs.sortOrder)
}

func TestApplySelection(t *testing.T) {
	type record struct{ id int }

	original := []record{{0}, {1}, {2}}
	candidates := []Candidate{
		{InputCount: 1, Value: 1, Weight: 1},
		{InputCount: 1, Value: 1, Weight: 1},
		{InputCount: 1, Value: 1, Weight: 1},
	}

	cs := NewCoinSelector(candidates)
	require.NoError(t, cs.Select(2))
	require.NoError(t, cs.Select(0))

	selected := ApplySelection(cs, original)
	require.Len(t, selected, 2)

	ids := make(map[int]bool)
	for _, r := range selected {
		ids[r.id] = true
	}
	require.True(t, ids[0])
	require.True(t, ids[2])
	require.False(t, ids[1])
}

func TestZeroInputsNeverMeetsTarget(t *testing.T) {
	target := simpleTarget(0, FromSatPerVB(1))
	cs := NewCoinSelector(nil)
	require.False(t, cs.IsTargetMet(target))
}
