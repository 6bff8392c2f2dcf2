package calculator

import (
	"fmt"
)

// SplitPennyPerfect splits an integer number of cents across participants:
//
//	base = totalCents / m
//	remainder = totalCents % m
//	first 'remainder' participants get base + 1, the rest get base
//
// The returned amounts align with the participants order, so reordering the
// list changes who absorbs the remainder cents even though the amount
// multiset stays the same.
func SplitPennyPerfect(totalCents int64, participants []string) (Allocation, error) {
	if err := validateSplitInput(totalCents, participants); err != nil {
		return Allocation{}, err
	}

	m := int64(len(participants))
	base := totalCents / m
	remainder := totalCents % m

	amounts := make([]int64, len(participants))
	for i := range amounts {
		if int64(i) < remainder {
			amounts[i] = base + 1
		} else {
			amounts[i] = base
		}
	}

	return newAllocation(totalCents, participants, amounts)
}

// SplitFairRemainder splits like SplitPennyPerfect but hands the remainder
// cents, one at a time, to whichever listed participant currently has the
// lowest simulated total: their prior running total plus whatever this item
// has already given them. Ties go to the smallest rank in participantOrder.
//
// Missing runningTotals entries count as zero. A missing participantOrder
// rank is a caller contract violation and reported as an internal
// inconsistency rather than a validation failure.
func SplitFairRemainder(totalCents int64, participants []string, runningTotals map[string]int64, participantOrder map[string]int) (Allocation, error) {
	if err := validateSplitInput(totalCents, participants); err != nil {
		return Allocation{}, err
	}

	m := int64(len(participants))
	base := totalCents / m
	remainder := totalCents % m

	amounts := make([]int64, len(participants))
	simulated := make([]int64, len(participants))
	ranks := make([]int, len(participants))
	for i, p := range participants {
		rank, ok := participantOrder[p]
		if !ok {
			return Allocation{}, fmt.Errorf("%w: participant %q has no order rank", ErrInternalInconsistency, p)
		}
		amounts[i] = base
		simulated[i] = runningTotals[p] + base
		ranks[i] = rank
	}

	// One cent at a time: each award must see the effect of the previous
	// one, otherwise consecutive cents pile onto the same participant.
	for u := int64(0); u < remainder; u++ {
		lowest := 0
		for i := 1; i < len(participants); i++ {
			if simulated[i] < simulated[lowest] ||
				(simulated[i] == simulated[lowest] && ranks[i] < ranks[lowest]) {
				lowest = i
			}
		}
		amounts[lowest]++
		simulated[lowest]++
	}

	return newAllocation(totalCents, participants, amounts)
}
