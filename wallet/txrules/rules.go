// Copyright (c) 2025 The ckbsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txrules provides the fee rules a transaction builder needs when
// funding a transaction: pricing a serialized size at a fee rate, the cost
// of adding a change output, and the fixed fee contribution of the parts of
// a transaction that do not vary with coin selection.
package txrules

import (
	"github.com/nervosnetwork/ckb-sdk-go/v2/types"

	"github.com/ckbsuite/ckbwallet/pkg/ckbunit"
	"github.com/ckbsuite/ckbwallet/wallet/txsizes"
)

// FeeForSerializedSize calculates the fee for a component of the given
// serialized size at the given fee rate, using the chain's round-up rule.
func FeeForSerializedSize(size int,
	feeRate ckbunit.ShannonPerKB) ckbunit.Shannon {

	return feeRate.FeeForSize(size)
}

// ChangeOutputFee returns the fee cost of adding the given change output to
// a transaction. The size counts the output and its data together with one
// input and one single-signature witness, since creating change implies
// spending it again later; this is the overshoot tolerance ("cost of
// change") the coin selection search is allowed above its target.
func ChangeOutputFee(changeOutput *types.CellOutput, changeOutputData []byte,
	feeRate ckbunit.ShannonPerKB) ckbunit.Shannon {

	size := txsizes.SerializedCellOutputSize(changeOutput) +
		txsizes.SerializedOutputDataSize(changeOutputData) +
		txsizes.SerializedCellInputSize +
		txsizes.SerializedSingleSigWitnessSize

	return FeeForSerializedSize(size, feeRate)
}

// FixedFee returns the fee contribution of the parts of a transaction that
// are fixed before coin selection runs: its cell deps, header deps, and the
// payment outputs with their data. Empty slices contribute zero bytes; an
// all-empty call prices an empty skeleton and returns 0.
func FixedFee(cellDeps []*types.CellDep, headerDeps []types.Hash,
	outputs []*types.CellOutput, outputsData [][]byte,
	feeRate ckbunit.ShannonPerKB) ckbunit.Shannon {

	size := len(cellDeps) * txsizes.SerializedCellDepSize
	size += len(headerDeps) * txsizes.SerializedHeaderDepSize

	for _, output := range outputs {
		size += txsizes.SerializedCellOutputSize(output)
	}

	for _, data := range outputsData {
		size += txsizes.SerializedOutputDataSize(data)
	}

	return FeeForSerializedSize(size, feeRate)
}
