package coinselect

import "github.com/ltcsuite/ltcd/ltcutil"

// Amount is a satoshi quantity. It is an alias for ltcutil.Amount so
// that values constructed by this package compose directly with the
// rest of the ltcsuite stack at the caller's boundary, the same way
// chanfunding.CoinSelect takes and returns ltcutil.Amount.
type Amount = ltcutil.Amount

// Candidate is an immutable descriptor for one spendable UTXO, or a
// bundle of UTXOs the caller wants to treat as a single atomic unit of
// selection (InputCount > 1).
//
// The core never looks inside a candidate beyond these four fields: no
// outpoint, no script, no witness data. Callers precompute Weight from
// whatever signing/witness information they have.
type Candidate struct {
	// InputCount is how many real transaction inputs this candidate
	// represents. Must be >= 1.
	InputCount uint32

	// Value is the candidate's total satoshi value.
	Value Amount

	// Weight is the candidate's total weight in weight units,
	// including witness data for all InputCount inputs.
	Weight uint32

	// IsSegwit is true if any of the candidate's inputs spend a
	// witness program, which forces the transaction's segwit
	// marker+flag header to be serialized.
	IsSegwit bool
}

// valuePerWeight returns the candidate's value-per-weight-unit ratio,
// the key the default BnB ordering sorts by.
func (c Candidate) valuePerWeight() float64 {
	return float64(c.Value) / float64(c.Weight)
}
