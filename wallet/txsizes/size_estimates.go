// Copyright (c) 2025 The ckbsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txsizes provides the serialized byte sizes of the transaction
// components under the chain's molecule encoding. The sizes reported here
// are marginal sizes: they include the per-element offset a component
// contributes when it lives inside one of the transaction's dynamic vectors,
// so summing them prices the bytes a component actually adds to a
// transaction. This package performs measurement only; fee logic lives in
// the txrules package.
package txsizes

import "github.com/nervosnetwork/ckb-sdk-go/v2/types"

const (
	// SerializedOffsetSize is the size of the offset every element of a
	// molecule dynamic vector (dynvec) contributes to the vector header.
	// Fixed-width vectors (fixvec) carry no per-element offsets.
	SerializedOffsetSize = 4

	// SerializedOutPointSize is the serialized size of an out point:
	// 32 bytes of transaction hash plus a 4-byte output index.
	SerializedOutPointSize = 32 + 4

	// SerializedCellInputSize is the serialized size of one cell input:
	// an 8-byte since field plus the previous out point. Inputs are
	// stored in a fixvec, so no offset applies.
	SerializedCellInputSize = 8 + SerializedOutPointSize

	// SerializedCellDepSize is the serialized size of one cell
	// dependency: an out point plus a 1-byte dep type. Cell deps are
	// stored in a fixvec.
	SerializedCellDepSize = SerializedOutPointSize + 1

	// SerializedHeaderDepSize is the serialized size of one header
	// dependency, a 32-byte header hash in a fixvec.
	SerializedHeaderDepSize = 32

	// serializedScriptBaseSize is the serialized size of a script before
	// its args: a 4-byte full-size header, three 4-byte field offsets, a
	// 32-byte code hash, a 1-byte hash type, and the 4-byte length prefix
	// of the args bytes.
	serializedScriptBaseSize = 4 + 3*4 + 32 + 1 + 4

	// serializedCellOutputBaseSize is the serialized size of a cell
	// output before its scripts: a 4-byte full-size header, three 4-byte
	// field offsets, and an 8-byte capacity. An absent type script
	// serializes to zero bytes.
	serializedCellOutputBaseSize = 4 + 3*4 + 8

	// serializedWitnessArgsBaseSize is the serialized size of a witness
	// args structure with all three fields absent: a 4-byte full-size
	// header plus three 4-byte field offsets.
	serializedWitnessArgsBaseSize = 4 + 3*4

	// secp256k1SignatureSize is the size of a recoverable secp256k1
	// signature placed in the witness lock field by the default
	// single-signature lock script.
	secp256k1SignatureSize = 65

	// SerializedSingleSigWitnessSize is the serialized size of one
	// witness carrying a single secp256k1 signature: the witness args
	// base, the 4-byte length prefix of the lock bytes, the signature
	// itself, and the offset the witness contributes to the witnesses
	// dynvec.
	SerializedSingleSigWitnessSize = serializedWitnessArgsBaseSize +
		4 + secp256k1SignatureSize + SerializedOffsetSize
)

// SerializedScriptSize returns the serialized size of the given script. A
// nil script (an absent optional type script) serializes to zero bytes.
func SerializedScriptSize(script *types.Script) int {
	if script == nil {
		return 0
	}

	return serializedScriptBaseSize + len(script.Args)
}

// SerializedCellOutputSize returns the serialized size of the given cell
// output, including the offset it contributes to the outputs dynvec. The
// size depends on the output's lock script and, when present, its type
// script.
func SerializedCellOutputSize(output *types.CellOutput) int {
	if output == nil {
		return 0
	}

	return serializedCellOutputBaseSize +
		SerializedScriptSize(output.Lock) +
		SerializedScriptSize(output.Type) +
		SerializedOffsetSize
}

// SerializedOutputDataSize returns the serialized size of one unit of output
// data: the 4-byte length prefix, the data itself, and the offset it
// contributes to the outputs data dynvec.
func SerializedOutputDataSize(data []byte) int {
	return 4 + len(data) + SerializedOffsetSize
}
