// Copyright (c) 2025 The ckbsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coinselect implements the coin selection used to fund a
// transaction from a wallet's pool of spendable live cells. Candidate cells
// are partitioned into output groups that always spend together, and a
// branch and bound search picks the subset of groups covering the payment
// target with the least waste. The packages txsizes and txrules supply the
// size and fee accounting the search relies on; fetching candidates,
// building the final transaction, and signing are the caller's concern.
package coinselect

import (
	"errors"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/nervosnetwork/ckb-sdk-go/v2/types"

	"github.com/ckbsuite/ckbwallet/pkg/ckbunit"
)

var (
	// ErrNoCoins is returned when a coin list is required but empty.
	ErrNoCoins = errors.New("coin list cannot be empty")

	// ErrDuplicatedCoin is returned when the same live cell is specified
	// multiple times.
	ErrDuplicatedCoin = errors.New("duplicated coin")
)

// Coin represents a spendable live cell which is available for coin
// selection.
type Coin struct {
	// Output is the cell output that will be consumed as a transaction
	// input.
	Output *types.CellOutput

	// Data is the cell's output data.
	Data []byte

	// OutPoint locates the live cell on chain.
	OutPoint types.OutPoint
}

// Capacity returns the coin's capacity as a shannon amount.
func (c *Coin) Capacity() ckbunit.Shannon {
	return ckbunit.Shannon(c.Output.Capacity)
}

// validateCoins checks a slice of coins for emptiness and duplicate out
// points. It returns ErrNoCoins if the slice is empty and ErrDuplicatedCoin
// if any out point appears more than once.
func validateCoins(coins []Coin) error {
	if len(coins) == 0 {
		return ErrNoCoins
	}

	outpoints := make([]types.OutPoint, 0, len(coins))
	for _, coin := range coins {
		outpoints = append(outpoints, coin.OutPoint)
	}

	dedupOutpoints := fn.NewSet(outpoints...)
	if len(dedupOutpoints) != len(coins) {
		return ErrDuplicatedCoin
	}

	return nil
}
