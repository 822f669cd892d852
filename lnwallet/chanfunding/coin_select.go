package chanfunding

import (
	"errors"
	"fmt"

	"github.com/ltcsuite/coinselect/coinselect"
	"github.com/ltcsuite/lnd/lnwallet/chainfee"
	"github.com/ltcsuite/ltcd/ltcutil"
	"github.com/ltcsuite/ltcd/txscript"
	"github.com/ltcsuite/ltcd/wire"
)

// ErrInsufficientFunds is a type matching the error interface which is
// returned when coin selection for a new funding transaction fails to due
// having an insufficient amount of confirmed funds.
type ErrInsufficientFunds struct {
	amountAvailable ltcutil.Amount
	amountSelected  ltcutil.Amount
}

// Error returns a human readable string describing the error.
func (e *ErrInsufficientFunds) Error() string {
	return fmt.Sprintf("not enough witness outputs to create funding "+
		"transaction, need %v only have %v  available",
		e.amountAvailable, e.amountSelected)
}

// errUnsupportedInput is a type matching the error interface, which is returned
// when trying to calculate the fee of a transaction that references an
// unsupported script in the outpoint of a transaction input.
type errUnsupportedInput struct {
	PkScript []byte
}

// Error returns a human readable string describing the error.
func (e *errUnsupportedInput) Error() string {
	return fmt.Sprintf("unsupported address type: %x", e.PkScript)
}

// Coin represents a spendable UTXO which is available for channel funding.
// This UTXO need not reside in our internal wallet as an example, and instead
// may be derived from an existing watch-only wallet. It wraps both the output
// present within the UTXO set, and also the outpoint that generates this coin.
type Coin struct {
	wire.TxOut

	wire.OutPoint
}

// Weight estimates for the input/output classes channel funding deals
// with. These stand in for input.TxWeightEstimator's per-class
// constants; channel funding only ever spends witness programs and
// only ever pays into a P2WSH multisig output, so a small table is
// enough here without pulling in the full estimator.
const (
	p2wkhInputWeight       = 272
	nestedP2wkhInputWeight = 364
	p2wshOutputWeight      = 172
	p2wkhChangeWeight      = 124
)

// candidateWeight classifies utxo's scriptPubKey and returns the
// weight its input contributes to a transaction.
func candidateWeight(utxo Coin) (uint32, error) {
	switch {
	case txscript.IsPayToWitnessPubKeyHash(utxo.PkScript):
		return p2wkhInputWeight, nil

	case txscript.IsPayToScriptHash(utxo.PkScript):
		return nestedP2wkhInputWeight, nil

	default:
		return 0, &errUnsupportedInput{utxo.PkScript}
	}
}

// asCandidates converts a slice of wallet Coins into the opaque
// Candidates coinselect.CoinSelector operates on. Channel funding only
// ever selects witness inputs, so IsSegwit is unconditionally true.
func asCandidates(coins []Coin) ([]coinselect.Candidate, error) {
	candidates := make([]coinselect.Candidate, len(coins))
	for i, utxo := range coins {
		weight, err := candidateWeight(utxo)
		if err != nil {
			return nil, err
		}
		candidates[i] = coinselect.Candidate{
			InputCount: 1,
			Value:      coinselect.Amount(utxo.Value),
			Weight:     weight,
			IsSegwit:   true,
		}
	}
	return candidates, nil
}

// fundingTarget builds the coinselect.Target for a channel funding
// output of amt, at feeRate, with no replacement floor.
func fundingTarget(feeRate chainfee.SatPerKWeight, amt ltcutil.Amount) coinselect.Target {
	return coinselect.Target{
		Outputs: coinselect.FundOutputs([]coinselect.OutputInfo{
			{Weight: p2wshOutputWeight, Value: coinselect.Amount(amt)},
		}),
		Fee: coinselect.FromFeerate(
			coinselect.FromSatPerWU(float32(feeRate) / 1000),
		),
	}
}

// sanityCheckFee checks if the specified fee amounts to over 20% of the total
// output amount and raises an error.
func sanityCheckFee(totalOut, fee ltcutil.Amount) error {
	// Fail if more than 20% goes to fees.
	// TODO(halseth): smarter fee limit. Make configurable or dynamic wrt
	// total funding size?
	if fee > totalOut/5 {
		return fmt.Errorf("fee %v on total output value %v", fee,
			totalOut)
	}
	return nil
}

// CoinSelect attempts to select a sufficient amount of coins, including a
// change output to fund amt satoshis, adhering to the specified fee rate. The
// specified fee rate should be expressed in sat/kw for coin selection to
// function properly.
//
// Selection itself, and the decision of whether to add a change
// output, are delegated to the generic coinselect engine; this
// function's job is only to translate wallet Coins into Candidates and
// back.
func CoinSelect(feeRate chainfee.SatPerKWeight, amt, dustLimit ltcutil.Amount,
	coins []Coin) ([]Coin, ltcutil.Amount, error) {

	candidates, err := asCandidates(coins)
	if err != nil {
		return nil, 0, err
	}

	target := fundingTarget(feeRate, amt)

	cs := coinselect.NewCoinSelector(candidates)
	cs.SortCandidatesByDescendingValuePWU()

	if err := cs.SelectUntilTargetMet(target); err != nil {
		var insufficient *coinselect.InsufficientFundsError
		if errors.As(err, &insufficient) {
			return nil, 0, &ErrInsufficientFunds{
				amountAvailable: cs.SelectedValue() + insufficient.Missing,
				amountSelected:  cs.SelectedValue(),
			}
		}
		return nil, 0, err
	}

	policy := coinselect.MinValue(
		coinselect.DrainWeights{OutputWeight: p2wkhChangeWeight, NOutputs: 1},
		dustLimit,
	)
	drain := cs.Drain(target, policy)

	selected := coinselect.ApplySelection(cs, coins)

	totalOut := amt + drain.Value
	fee := cs.SelectedValue() - totalOut
	if err := sanityCheckFee(totalOut, fee); err != nil {
		return nil, 0, err
	}

	return selected, drain.Value, nil
}

// CoinSelectSubtractFees attempts to select coins such that we'll spend up to
// amt in total after fees, adhering to the specified fee rate. The selected
// coins, the final output and change values are returned.
func CoinSelectSubtractFees(feeRate chainfee.SatPerKWeight, amt,
	dustLimit ltcutil.Amount, coins []Coin) ([]Coin, ltcutil.Amount,
	ltcutil.Amount, error) {

	candidates, err := asCandidates(coins)
	if err != nil {
		return nil, 0, 0, err
	}

	// We fund the target value itself first; the output value is then
	// reduced by whatever fee that selection implies, mirroring the
	// original "spend up to amt total" semantics.
	target := fundingTarget(feeRate, amt)

	cs := coinselect.NewCoinSelector(candidates)
	cs.SortCandidatesByDescendingValuePWU()

	if err := cs.SelectUntilTargetMet(target); err != nil {
		var insufficient *coinselect.InsufficientFundsError
		if errors.As(err, &insufficient) {
			return nil, 0, 0, &ErrInsufficientFunds{
				amountAvailable: cs.SelectedValue() + insufficient.Missing,
				amountSelected:  cs.SelectedValue(),
			}
		}
		return nil, 0, 0, err
	}

	requiredFeeNoChange := cs.ImpliedFee(target)
	outputAmt := cs.SelectedValue() - requiredFeeNoChange
	changeAmt := ltcutil.Amount(0)

	if outputAmt < dustLimit {
		return nil, 0, 0, fmt.Errorf("output amount(%v) after "+
			"subtracting fees(%v) below dust limit(%v)", outputAmt,
			requiredFeeNoChange, dustLimit)
	}

	policy := coinselect.MinValue(
		coinselect.DrainWeights{OutputWeight: p2wkhChangeWeight, NOutputs: 1},
		dustLimit,
	)
	drain := cs.Drain(target, policy)
	if !drain.IsNone() {
		newOutput := amt - cs.ImpliedFee(fundingTarget(feeRate, amt))
		if drain.Value >= dustLimit && newOutput >= dustLimit {
			outputAmt = newOutput
			changeAmt = drain.Value
		}
	}

	selected := coinselect.ApplySelection(cs, coins)

	totalOut := outputAmt + changeAmt
	fee := cs.SelectedValue() - totalOut
	if err := sanityCheckFee(totalOut, fee); err != nil {
		return nil, 0, 0, err
	}

	return selected, outputAmt, changeAmt, nil
}
