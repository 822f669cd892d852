// Package txsize holds the small, independently-testable weight-unit
// arithmetic the coin selector needs to turn a selection state into a
// transaction weight: the fixed per-transaction overhead, and the
// varint-growth rules that apply when an input or output count crosses
// a compact-size encoding boundary.
package txsize

import "github.com/ltcsuite/ltcd/wire"

// TxOverheadWeight is the fixed weight of a transaction with zero
// inputs and zero outputs: a 4-byte version, a 4-byte locktime, and
// two empty (1-byte) varints for the input and output counts.
//
// Per spec, the two count varints contribute their raw byte count
// (not multiplied by 4) to this baseline; VarIntGrowth below accounts
// for any additional bytes a count needs beyond that first byte, in
// full weight units.
const TxOverheadWeight uint32 = 4*4 + 4*4 + 1 + 1

// SegwitHeaderWeight is the weight contributed by the segwit
// marker+flag header, present whenever any input in the transaction
// carries a witness.
const SegwitHeaderWeight uint32 = 2

// VarIntGrowth returns the weight delta, in whole weight units, that a
// compact-size-encoded count of n contributes beyond the single-byte
// baseline already folded into TxOverheadWeight. It returns 0 until n
// reaches 253, 8 once n reaches 253, 16 once n reaches 65536, and 32
// once n reaches 4294967296 (wire.VarIntSerializeSize's own
// thresholds), each weight-unit reading for n being entirely
// witness-free (counted at 4 wu/byte like the rest of a txid-covered
// field).
func VarIntGrowth(n uint64) uint32 {
	size := wire.VarIntSerializeSize(n)
	if size <= 1 {
		return 0
	}
	return uint32(size-1) * 4
}

// InputCountVarIntGrowth returns the weight delta for an input count
// of n beyond TxOverheadWeight's single-byte baseline.
func InputCountVarIntGrowth(n uint64) uint32 {
	return VarIntGrowth(n)
}

// OutputCountVarIntGrowth returns the weight delta for an output count
// of n beyond TxOverheadWeight's single-byte baseline.
func OutputCountVarIntGrowth(n uint64) uint32 {
	return VarIntGrowth(n)
}
