package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRunBnBChoosesLowestFeeSelection checks that, given a choice
// between a single large candidate (which funds the target and still
// clears the drain's minimum value) and a pair of smaller candidates
// that would need more weight for the same job, BnB picks whichever
// single candidate is cheapest, never the pair.
func TestRunBnBChoosesLowestFeeSelection(t *testing.T) {
	candidates := []Candidate{
		{InputCount: 1, Value: 40_000, Weight: 272, IsSegwit: true},
		{InputCount: 1, Value: 45_000, Weight: 272, IsSegwit: true},
		{InputCount: 1, Value: 90_000, Weight: 272, IsSegwit: true},
		{InputCount: 1, Value: 100_000, Weight: 272, IsSegwit: true},
	}

	target := Target{
		Outputs: FundOutputs([]OutputInfo{{Weight: 0, Value: 80_000}}),
		Fee:     FromFeerate(FromSatPerVB(1)),
	}

	policy := MinValue(DrainWeights{OutputWeight: 172, SpendWeight: 108}, 1_000)
	metric := LowestFee{LongTermFeerate: ZeroFeeRate()}

	cs := NewCoinSelector(candidates)
	cs.SortCandidatesByDescendingValuePWU()

	result, err := cs.RunBnB(metric, target, policy, 10_000)
	require.NoError(t, err)
	require.True(t, result.Proven)
	require.Equal(t, Score(120), result.Score)

	require.Equal(t, uint64(1), cs.SelectedInputCount())
	require.True(t, cs.IsSelected(2) || cs.IsSelected(3))
	require.False(t, cs.IsSelected(0))
	require.False(t, cs.IsSelected(1))
}

// TestRunBnBNoSolution exercises the case where even selecting every
// candidate cannot fund the target.
func TestRunBnBNoSolution(t *testing.T) {
	candidates := []Candidate{
		{InputCount: 1, Value: 1_000, Weight: 272, IsSegwit: true},
		{InputCount: 1, Value: 2_000, Weight: 272, IsSegwit: true},
	}

	target := Target{
		Outputs: FundOutputs([]OutputInfo{{Weight: 0, Value: 1_000_000}}),
		Fee:     FromFeerate(FromSatPerVB(1)),
	}

	policy := MinValue(DrainWeights{OutputWeight: 172}, 1_000)
	metric := LowestFee{LongTermFeerate: ZeroFeeRate()}

	cs := NewCoinSelector(candidates)
	cs.SortCandidatesByDescendingValuePWU()

	_, err := cs.RunBnB(metric, target, policy, 1_000)
	require.Error(t, err)

	var noSolution *BnbNoSolutionError
	require.ErrorAs(t, err, &noSolution)
}

// TestRunBnBRespectsBan checks that, under search, a banned candidate
// must never appear in the winning selection, even when it
// would otherwise be the cheapest choice.
func TestRunBnBRespectsBan(t *testing.T) {
	candidates := []Candidate{
		{InputCount: 1, Value: 90_000, Weight: 272, IsSegwit: true},
		{InputCount: 1, Value: 95_000, Weight: 272, IsSegwit: true},
	}

	target := Target{
		Outputs: FundOutputs([]OutputInfo{{Weight: 0, Value: 80_000}}),
		Fee:     FromFeerate(FromSatPerVB(1)),
	}

	policy := MinValue(DrainWeights{OutputWeight: 172, SpendWeight: 108}, 1_000)
	metric := LowestFee{LongTermFeerate: ZeroFeeRate()}

	cs := NewCoinSelector(candidates)
	cs.SortCandidatesByDescendingValuePWU()
	require.NoError(t, cs.Ban(0))

	result, err := cs.RunBnB(metric, target, policy, 10_000)
	require.NoError(t, err)
	require.True(t, result.Proven)

	require.False(t, cs.IsSelected(0))
	require.True(t, cs.IsSelected(1))
}
