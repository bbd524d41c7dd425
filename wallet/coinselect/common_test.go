package coinselect

import (
	"encoding/binary"
	"sync/atomic"
	"testing"

	"github.com/nervosnetwork/ckb-sdk-go/v2/types"
	"github.com/stretchr/testify/require"

	"github.com/ckbsuite/ckbwallet/pkg/ckbunit"
)

// outPointCounter hands out unique out points across all tests in the
// package, which run in parallel.
var outPointCounter atomic.Uint64

// nextOutPoint returns an out point no other test coin uses.
func nextOutPoint() types.OutPoint {
	var txHash types.Hash
	binary.BigEndian.PutUint64(txHash[:8], outPointCounter.Add(1))

	return types.OutPoint{TxHash: txHash, Index: 0}
}

// newTestLock returns a single-signature lock script whose args are derived
// from the given tag, so coins with equal tags share a lock.
func newTestLock(tag byte) *types.Script {
	return &types.Script{
		CodeHash: types.Hash{0x9b},
		HashType: types.HashTypeType,
		Args:     []byte{tag},
	}
}

// newTestCoin returns a spendable coin of the given capacity with a unique
// out point.
func newTestCoin(capacity uint64, lock *types.Script) Coin {
	return Coin{
		Output: &types.CellOutput{
			Capacity: capacity,
			Lock:     lock,
		},
		OutPoint: nextOutPoint(),
	}
}

// newTestGroup returns a single-coin output group of the given capacity.
func newTestGroup(t *testing.T, capacity uint64,
	feeRate ckbunit.ShannonPerKB) *OutputGroup {

	t.Helper()

	group, err := NewOutputGroup(
		[]Coin{newTestCoin(capacity, newTestLock(0x01))}, feeRate,
	)
	require.NoError(t, err)

	return group
}

// newTestPool returns a pool with one single-coin group per capacity.
func newTestPool(t *testing.T, feeRate ckbunit.ShannonPerKB,
	capacities ...uint64) []*OutputGroup {

	t.Helper()

	pool := make([]*OutputGroup, 0, len(capacities))
	for _, capacity := range capacities {
		pool = append(pool, newTestGroup(t, capacity, feeRate))
	}

	return pool
}

// sumCapacities returns the summed capacity of the given coins.
func sumCapacities(coins []Coin) ckbunit.Shannon {
	var total ckbunit.Shannon
	for _, coin := range coins {
		total += coin.Capacity()
	}

	return total
}
