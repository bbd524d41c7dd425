// Copyright (c) 2025 The ckbsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"errors"
	"fmt"

	"github.com/nervosnetwork/ckb-sdk-go/v2/types"

	"github.com/ckbsuite/ckbwallet/pkg/ckbunit"
	"github.com/ckbsuite/ckbwallet/wallet/txrules"
	"github.com/ckbsuite/ckbwallet/wallet/txsizes"
)

var (
	// ErrInsufficientGroupValue is returned when an output group's total
	// value cannot cover the fee of spending the group's own coins. Such
	// a group is malformed input; the caller must exclude or repair it
	// before retrying.
	ErrInsufficientGroupValue = errors.New("group value cannot cover its " +
		"own spending fee")
)

// OutputGroup is an immutable grouping of coins that are always spent
// together in any selection decision. The selection search operates on
// groups rather than individual coins so that cells which would reveal the
// same information when spent are treated as a single unit.
type OutputGroup struct {
	// coins is the ordered set of coins that move together.
	coins []Coin

	// fee is the cost of including the group's coins as transaction
	// inputs at the fee rate the group was constructed with.
	fee ckbunit.Shannon

	// value is the sum of the coins' capacities.
	value ckbunit.Shannon

	// effectiveValue is the group's value net of its spending fee. This
	// is the amount a selection actually gains by including the group.
	effectiveValue ckbunit.Shannon

	// longTermFee is an estimate of fee under a long-run fee rate
	// assumption, used to judge whether paying extra now is worse than
	// paying for a change output later. No long-term fee estimator is
	// wired up yet, so this is always zero, which disables the related
	// pruning shortcut in the search.
	longTermFee ckbunit.Shannon
}

// NewOutputGroup constructs an output group from the given coins at the
// given fee rate. Every coin costs one input and one single-signature
// witness to spend. The constructor fails with ErrInsufficientGroupValue
// when the group's value cannot cover its own spending fee; the group is
// immutable afterwards.
func NewOutputGroup(coins []Coin,
	feeRate ckbunit.ShannonPerKB) (*OutputGroup, error) {

	if err := validateCoins(coins); err != nil {
		return nil, err
	}

	spendSize := (txsizes.SerializedCellInputSize +
		txsizes.SerializedSingleSigWitnessSize) * len(coins)

	fee := txrules.FeeForSerializedSize(spendSize, feeRate)

	var value ckbunit.Shannon
	for _, coin := range coins {
		value += coin.Capacity()
	}

	if value < fee {
		return nil, fmt.Errorf("%w: value %v cannot pay fee %v",
			ErrInsufficientGroupValue, value, fee)
	}

	return &OutputGroup{
		coins:          append([]Coin(nil), coins...),
		fee:            fee,
		value:          value,
		effectiveValue: value - fee,
	}, nil
}

// Coins returns the coins in the group. The returned slice is shared with
// the group and must not be modified.
func (g *OutputGroup) Coins() []Coin {
	return g.coins
}

// Fee returns the cost of including the group's coins as inputs.
func (g *OutputGroup) Fee() ckbunit.Shannon {
	return g.fee
}

// Value returns the sum of the group's coin capacities.
func (g *OutputGroup) Value() ckbunit.Shannon {
	return g.value
}

// EffectiveValue returns the group's value net of its spending fee.
func (g *OutputGroup) EffectiveValue() ckbunit.Shannon {
	return g.effectiveValue
}

// LongTermFee returns the group's spending fee under a long-run fee rate
// assumption.
func (g *OutputGroup) LongTermFee() ckbunit.Shannon {
	return g.longTermFee
}

// GroupCoins partitions a flat list of spendable coins into output groups,
// one group per distinct lock script. Spending any cell reveals its lock's
// unlocking data, so cells sharing a lock script gain no privacy by being
// selected separately and always move together. Group order follows the
// first appearance of each lock script in the input.
func GroupCoins(coins []Coin,
	feeRate ckbunit.ShannonPerKB) ([]*OutputGroup, error) {

	if err := validateCoins(coins); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(coins))
	grouped := make(map[string][]Coin, len(coins))

	for _, coin := range coins {
		key := lockKey(coin.Output.Lock)
		if _, ok := grouped[key]; !ok {
			keys = append(keys, key)
		}

		grouped[key] = append(grouped[key], coin)
	}

	groups := make([]*OutputGroup, 0, len(keys))
	for _, key := range keys {
		group, err := NewOutputGroup(grouped[key], feeRate)
		if err != nil {
			return nil, err
		}

		groups = append(groups, group)
	}

	return groups, nil
}

// lockKey derives a map key identifying a lock script by its code hash,
// hash type and args.
func lockKey(lock *types.Script) string {
	if lock == nil {
		return ""
	}

	return fmt.Sprintf("%x:%s:%x", lock.CodeHash, lock.HashType, lock.Args)
}
