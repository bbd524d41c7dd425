// Copyright (c) 2025 The ckbsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ckbunit provides a set of types for dealing with CKB units.
package ckbunit

import (
	"errors"
	"math"
	"strconv"
)

const (
	// ShannonsPerCKByte is the number of shannons in one CKByte. The
	// shannon is the chain's indivisible base unit; all capacities and
	// fees are expressed in it.
	ShannonsPerCKByte = 100_000_000

	// kilo is a generic multiplier for kilo units.
	kilo = 1000
)

var (
	// MaxShannon is the largest representable amount. It is used as a
	// sentinel for "no value recorded yet" comparisons, e.g. the best
	// waste seen by a selection search.
	MaxShannon = Shannon(math.MaxInt64)

	// ErrInvalidCKBytes is returned when a floating point CKByte value
	// cannot be converted to a shannon amount.
	ErrInvalidCKBytes = errors.New("invalid CKByte amount")
)

// Shannon represents an amount in the chain's base unit. It is a signed
// integer so that intermediate fee arithmetic, which may go negative, can be
// expressed without conversions.
type Shannon int64

// ToCKBytes returns the amount expressed in floating point CKBytes.
func (s Shannon) ToCKBytes() float64 {
	return float64(s) / ShannonsPerCKByte
}

// String returns the amount formatted in CKBytes.
func (s Shannon) String() string {
	return strconv.FormatFloat(s.ToCKBytes(), 'f', -1, 64) + " CKB"
}

// NewShannonFromCKBytes converts a floating point CKByte value to a shannon
// amount, rounding half away from zero. NaN and infinities are rejected since
// they do not describe a spendable amount.
func NewShannonFromCKBytes(ckbytes float64) (Shannon, error) {
	if math.IsNaN(ckbytes) || math.IsInf(ckbytes, 0) {
		return 0, ErrInvalidCKBytes
	}

	return Shannon(math.Round(ckbytes * ShannonsPerCKByte)), nil
}
