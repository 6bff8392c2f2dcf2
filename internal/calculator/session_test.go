package calculator

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddToTotalsAccumulates(t *testing.T) {
	totals := make(map[string]int64)

	alloc, err := SplitPennyPerfect(101, []string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatalf("SplitPennyPerfect() error = %v", err)
	}
	AddToTotals(totals, alloc)
	want := map[string]int64{"a": 26, "b": 25, "c": 25, "d": 25}
	if diff := cmp.Diff(want, totals); diff != "" {
		t.Fatalf("totals after first item (-want +got):\n%s", diff)
	}

	alloc, err = SplitPennyPerfect(3, []string{"b", "d"})
	if err != nil {
		t.Fatalf("SplitPennyPerfect() error = %v", err)
	}
	AddToTotals(totals, alloc)
	want = map[string]int64{"a": 26, "b": 27, "c": 25, "d": 26}
	if diff := cmp.Diff(want, totals); diff != "" {
		t.Errorf("totals after second item (-want +got):\n%s", diff)
	}
}

func TestExtendOrderFixesRankAtFirstAppearance(t *testing.T) {
	order := make(map[string]int)
	ExtendOrder(order, []string{"a", "b"})
	ExtendOrder(order, []string{"b", "c", "d"})
	ExtendOrder(order, []string{"d", "a"})

	want := map[string]int{"a": 0, "b": 1, "c": 2, "d": 3}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitItems(t *testing.T) {
	tests := []struct {
		name    string
		items   []Item
		want    map[string]int64
		wantErr error
	}{
		{
			name: "two item receipt",
			items: []Item{
				{ID: "i1", TotalCents: 101, Participants: []string{"a", "b"}},
				{ID: "i2", TotalCents: 99, Participants: []string{"b", "c", "d"}},
			},
			want: map[string]int64{"a": 51, "b": 83, "c": 33, "d": 33},
		},
		{
			name: "remainder cents even out across items",
			items: []Item{
				{ID: "i1", TotalCents: 101, Participants: []string{"a", "b"}},
				{ID: "i2", TotalCents: 101, Participants: []string{"a", "b"}},
			},
			want: map[string]int64{"a": 101, "b": 101},
		},
		{
			name:  "no items",
			items: nil,
			want:  map[string]int64{},
		},
		{
			name: "invalid item total propagates",
			items: []Item{
				{ID: "i1", TotalCents: 100, Participants: []string{"a"}},
				{ID: "i2", TotalCents: -5, Participants: []string{"a"}},
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, err := SplitItems(tt.items)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SplitItems() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitItems() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, totals); diff != "" {
				t.Errorf("totals mismatch (-want +got):\n%s", diff)
			}

			var wantSum, gotSum int64
			for _, item := range tt.items {
				wantSum += item.TotalCents
			}
			for _, cents := range totals {
				gotSum += cents
			}
			if gotSum != wantSum {
				t.Errorf("totals sum to %d, want %d", gotSum, wantSum)
			}
		})
	}
}
