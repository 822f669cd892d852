// Package drain publishes the dust-relay minimums and change-output
// weight constants that callers need to build a DrainWeights and a
// dust-aware ChangePolicy, without this module reaching into
// txscript to classify a scriptPubKey itself (script classification
// stays the caller's job).
package drain

// Dust-relay minimum values, in satoshis, for the common output
// script classes. These mirror the thresholds the reference node
// applies before relaying a transaction; a ChangePolicy's min_value
// argument is typically one of these.
const (
	// P2PKHDustRelayMinValue is the dust threshold for a legacy
	// pay-to-pubkey-hash output.
	P2PKHDustRelayMinValue = 546

	// P2SHDustRelayMinValue is the dust threshold for a
	// pay-to-script-hash output (including nested segwit).
	P2SHDustRelayMinValue = 540

	// P2WPKHDustRelayMinValue is the dust threshold for a native
	// segwit pay-to-witness-pubkey-hash output.
	P2WPKHDustRelayMinValue = 294

	// P2WSHDustRelayMinValue is the dust threshold for a native
	// segwit pay-to-witness-script-hash output.
	P2WSHDustRelayMinValue = 330

	// TRDustRelayMinValue is the dust threshold for a taproot
	// (pay-to-taproot) output.
	TRDustRelayMinValue = 330
)

// trScriptPubKeySize is the serialized length, in bytes, of a P2TR
// scriptPubKey: OP_1 push of a 32-byte x-only public key.
const trScriptPubKeySize = 34

// TROutputWeight is the weight contribution of adding one P2TR output
// to a transaction that does not otherwise cross an output-count
// varint boundary: (8-byte value + 1-byte script-length varint +
// 34-byte script) * 4 weight-units-per-byte.
const TROutputWeight = (8 + 1 + trScriptPubKeySize) * 4

// TRKeyspendSpendWeight is the weight of spending a P2TR output via
// the taproot key-spend path. The key-spend witness alone (witness-count
// byte, length prefix and 64-byte Schnorr signature) is 66 weight
// units; the constant adds a further 42 weight units of per-input
// overhead on top of that.
const TRKeyspendSpendWeight = 108
