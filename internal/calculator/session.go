package calculator

import "fmt"

// Item is one priced line of a bill together with the participants who
// share it.
type Item struct {
	ID           string
	TotalCents   int64
	Participants []string
}

// AddToTotals folds an allocation into a running-totals ledger keyed by
// participant id. The ledger is mutated and returned for convenience.
func AddToTotals(totals map[string]int64, alloc Allocation) map[string]int64 {
	for i, p := range alloc.Participants {
		totals[p] += alloc.AmountsCents[i]
	}
	return totals
}

// ExtendOrder assigns the next free ranks to participants that do not have
// one yet, in list order. Ranked participants keep their rank, so a
// participant's rank is fixed the first time they appear in a session.
func ExtendOrder(order map[string]int, participants []string) map[string]int {
	for _, p := range participants {
		if _, ok := order[p]; !ok {
			order[p] = len(order)
		}
	}
	return order
}

// SplitItems runs a whole bill through the fair-remainder policy: items are
// split in the given order while one running-totals ledger and one
// participant-order index are threaded across the calls. It returns the
// final cents owed per participant, summing exactly to the sum of the item
// totals.
//
// The ledger and order index live for this call only. Concurrent sessions
// each get their own; nothing here is shared or locked.
func SplitItems(items []Item) (map[string]int64, error) {
	totals := make(map[string]int64)
	order := make(map[string]int)
	for _, item := range items {
		ExtendOrder(order, item.Participants)
		alloc, err := SplitFairRemainder(item.TotalCents, item.Participants, totals, order)
		if err != nil {
			return nil, fmt.Errorf("split item %q: %w", item.ID, err)
		}
		AddToTotals(totals, alloc)
	}
	return totals, nil
}
