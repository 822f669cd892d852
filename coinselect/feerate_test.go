package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeeRateImpliedFee(t *testing.T) {
	rate := FromSatPerVB(4) // 1 sat/wu
	require.Equal(t, Amount(1000), rate.ImpliedFee(1000))

	// Rounds up.
	rate = FromSatPerVB(1) // 0.25 sat/wu
	require.Equal(t, Amount(250), rate.ImpliedFee(1000))
	require.Equal(t, Amount(1), rate.ImpliedFee(1))
}

func TestDefaultMinRelayFee(t *testing.T) {
	rate := DefaultMinRelayFee()
	require.Equal(t, Amount(272), rate.ImpliedFee(272*4))
}

func TestWeightToVBytes(t *testing.T) {
	require.Equal(t, uint64(1), WeightToVBytes(1))
	require.Equal(t, uint64(1), WeightToVBytes(4))
	require.Equal(t, uint64(2), WeightToVBytes(5))
}
