// Copyright (c) 2025 The ckbsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"sort"

	"github.com/davecgh/go-spew/spew"

	"github.com/ckbsuite/ckbwallet/pkg/ckbunit"
)

const (
	// TotalTries is the default cap on the number of decision steps the
	// branch and bound search performs before giving up. The cap bounds
	// the search's runtime independently of pool size and guarantees
	// termination.
	TotalTries = 100_000
)

// SelectionResult is the outcome of a coin selection attempt. Failure is a
// first-class value rather than an error: it signals either that the pool
// cannot cover the target at all or that the search exhausted its budget
// without finding a subset within the overshoot tolerance, and callers are
// expected to fall back to another funding strategy.
type SelectionResult struct {
	// Success reports whether a selection meeting the target was found.
	Success bool

	// Coins holds the selected coins. It is empty on failure.
	Coins []Coin

	// TotalValue is the summed value (not effective value) of the
	// selected groups. It is zero on failure.
	TotalValue ckbunit.Shannon
}

// BranchAndBoundSelector selects the subset of an output group pool that
// covers a payment target with the least waste, where waste is the excess
// paid in fees versus a perfectly sized selection. It explores
// include/exclude decisions per group with an explicit decision stack,
// pruning branches that can no longer reach the target, overshoot beyond
// the change tolerance, or cannot improve on the best waste found so far.
type BranchAndBoundSelector struct {
	// MaxTries caps the number of decision steps per search. A value of
	// zero or below selects the TotalTries default.
	MaxTries int
}

// DefaultSelector is a selector with the default iteration cap.
var DefaultSelector = &BranchAndBoundSelector{MaxTries: TotalTries}

// SelectCoins runs the default selector over the given pool. See
// BranchAndBoundSelector.SelectCoins.
func SelectCoins(pool []*OutputGroup, targetValue, costOfChange,
	notInputFees ckbunit.Shannon) *SelectionResult {

	return DefaultSelector.SelectCoins(
		pool, targetValue, costOfChange, notInputFees,
	)
}

// sortByEffectiveValue is a sortable type for ordering output groups by
// their effective value.
type sortByEffectiveValue []*OutputGroup

func (s sortByEffectiveValue) Len() int { return len(s) }
func (s sortByEffectiveValue) Less(i, j int) bool {
	return s[i].effectiveValue < s[j].effectiveValue
}
func (s sortByEffectiveValue) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// SelectCoins searches the pool for the subset of groups whose effective
// values cover notInputFees + targetValue while overshooting by at most
// costOfChange, and returns the subset with the least waste. The caller's
// slice is not modified; the search sorts a private copy descending by
// effective value, which the pruning bound and the equivalent-branch skip
// rely on. Given the same pool contents and parameters the result is
// deterministic.
func (s *BranchAndBoundSelector) SelectCoins(pool []*OutputGroup,
	targetValue, costOfChange,
	notInputFees ckbunit.Shannon) *SelectionResult {

	maxTries := s.MaxTries
	if maxTries <= 0 {
		maxTries = TotalTries
	}

	actualTarget := notInputFees + targetValue

	pool = append([]*OutputGroup(nil), pool...)
	sort.Sort(sort.Reverse(sortByEffectiveValue(pool)))

	// If the whole pool cannot reach the target there is nothing to
	// search.
	var availableValue ckbunit.Shannon
	for _, group := range pool {
		availableValue += group.effectiveValue
	}

	if availableValue < actualTarget {
		log.Debugf("Coin selection failed: pool effective value %v "+
			"below target %v", availableValue, actualTarget)

		return &SelectionResult{}
	}

	// currSelection records the include/exclude decision per group up to
	// the current search depth; its length is the depth. currValue and
	// currWaste track the included groups' effective values and
	// fee-versus-long-term-fee excess, and currAvailableValue tracks the
	// effective value still undecided.
	currSelection := make([]bool, 0, len(pool))

	var (
		currValue ckbunit.Shannon
		currWaste ckbunit.Shannon
	)

	currAvailableValue := availableValue

	var bestSelection []bool
	bestWaste := ckbunit.MaxShannon

	for tries := 0; tries < maxTries; tries++ {
		backtrack := false

		switch {
		// Prune: this branch cannot reach the target anymore, has
		// overshot beyond the change tolerance, or carries more waste
		// than the best selection while fees exceed their long-term
		// estimate, meaning adding groups can only make it worse.
		case currValue+currAvailableValue < actualTarget,
			currValue > actualTarget+costOfChange,
			currWaste > bestWaste &&
				pool[0].fee > pool[0].longTermFee:

			backtrack = true

		// Accept: the target is reached, so this is a complete
		// candidate. Record it when it ties or improves the best
		// waste, then keep searching for something better.
		case currValue >= actualTarget:
			waste := currWaste + currValue - actualTarget
			if waste <= bestWaste {
				bestSelection = append(
					bestSelection[:0], currSelection...,
				)
				bestSelection = append(bestSelection, make(
					[]bool, len(pool)-len(currSelection),
				)...)

				bestWaste = waste
			}

			backtrack = true
		}

		if backtrack {
			// Walk back over trailing exclusions, restoring their
			// groups to the undecided set.
			for len(currSelection) > 0 &&
				!currSelection[len(currSelection)-1] {

				currSelection = currSelection[:len(
					currSelection,
				)-1]

				currAvailableValue += pool[len(
					currSelection,
				)].effectiveValue
			}

			// An empty decision stack means every branch has been
			// explored.
			if len(currSelection) == 0 {
				break
			}

			// Flip the deepest inclusion into an exclusion and
			// resume the search from there.
			last := len(currSelection) - 1
			currSelection[last] = false
			currValue -= pool[last].effectiveValue
			currWaste -= pool[last].fee - pool[last].longTermFee

			continue
		}

		// Move forward: decide the next undecided group.
		group := pool[len(currSelection)]
		currAvailableValue -= group.effectiveValue

		// When the previous group was excluded and this one is
		// functionally identical, including it would explore a
		// duplicate branch; exclude it outright.
		prev := len(currSelection) - 1
		if prev >= 0 && !currSelection[prev] &&
			group.effectiveValue == pool[prev].effectiveValue &&
			group.fee == pool[prev].fee {

			currSelection = append(currSelection, false)

			continue
		}

		currSelection = append(currSelection, true)
		currValue += group.effectiveValue
		currWaste += group.fee - group.longTermFee
	}

	if len(bestSelection) == 0 {
		log.Debugf("Coin selection failed: no subset within waste "+
			"tolerance found for target %v in %d tries",
			actualTarget, maxTries)

		return &SelectionResult{}
	}

	result := &SelectionResult{Success: true}
	for i, included := range bestSelection {
		if !included {
			continue
		}

		result.Coins = append(result.Coins, pool[i].coins...)
		result.TotalValue += pool[i].value
	}

	log.Debugf("Coin selection succeeded: %d coins with total value %v "+
		"cover target %v at waste %v", len(result.Coins),
		result.TotalValue, actualTarget, bestWaste)

	log.Tracef("Selected coins: %v", newLogClosure(func() string {
		return spew.Sdump(result.Coins)
	}))

	return result
}
