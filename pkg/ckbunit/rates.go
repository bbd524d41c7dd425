// Copyright (c) 2025 The ckbsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ckbunit

import "fmt"

var (
	// ZeroShannonPerKB is a fee rate of 0 shannons/kB.
	ZeroShannonPerKB = NewShannonPerKB(0)
)

// ShannonPerKB expresses a fee rate in shannons per 1000 transaction bytes.
// This is the canonical fee rate unit of the chain: fee estimators quote
// rates in it and transactions are priced by their serialized size in bytes.
type ShannonPerKB uint64

// NewShannonPerKB creates a new ShannonPerKB from a uint64 value.
func NewShannonPerKB(val uint64) ShannonPerKB {
	return ShannonPerKB(val)
}

// FeeForSize calculates the fee for a serialized size of the given number of
// bytes at this fee rate.
//
// The result is rounded up to the next whole shannon. A transaction paying
// the truncated fee can fall below the rate it was quoted at and be rejected
// by relay policy, so the chain's fee rule always rounds toward the payer.
func (r ShannonPerKB) FeeForSize(size int) Shannon {
	if size <= 0 {
		return 0
	}

	total := uint64(size) * uint64(r)

	fee := total / kilo
	if total%kilo != 0 {
		fee++
	}

	return Shannon(fee)
}

// String returns the string representation of the fee rate.
func (r ShannonPerKB) String() string {
	return fmt.Sprintf("%d shannons/kB", uint64(r))
}
