package calculator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput marks failures caused by caller-supplied values:
	// negative totals, empty participant lists, blank participant ids.
	// Retrying without changed inputs reproduces the identical failure.
	ErrInvalidInput = errors.New("invalid split input")

	// ErrInternalInconsistency marks invariant violations inside the
	// allocator: amounts that do not sum to the total, or a participant
	// missing an order rank. It signals a defect, not bad input.
	ErrInternalInconsistency = errors.New("internal split inconsistency")
)

// Allocation is the result of splitting one item among selected participants.
// AmountsCents is ordered to match the Participants order.
type Allocation struct {
	TotalCents   int64
	Participants []string
	AmountsCents []int64
}

func validateSplitInput(totalCents int64, participants []string) error {
	if totalCents < 0 {
		return fmt.Errorf("%w: total cents must be >= 0, got %d", ErrInvalidInput, totalCents)
	}
	if len(participants) == 0 {
		return fmt.Errorf("%w: participants must contain at least one participant", ErrInvalidInput)
	}
	for _, p := range participants {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: participant ids must be non-blank", ErrInvalidInput)
		}
	}
	return nil
}

// newAllocation copies the participant list into a fresh Allocation after
// checking the penny-perfect invariant.
func newAllocation(totalCents int64, participants []string, amounts []int64) (Allocation, error) {
	var sum int64
	for _, a := range amounts {
		sum += a
	}
	if sum != totalCents {
		return Allocation{}, fmt.Errorf("%w: allocation sums to %d, want %d", ErrInternalInconsistency, sum, totalCents)
	}
	return Allocation{
		TotalCents:   totalCents,
		Participants: append([]string(nil), participants...),
		AmountsCents: amounts,
	}, nil
}
