package compound

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSeriesFrom(t *testing.T) {
	res := mustCompute(t, NewParams(1000, 3, 10, 100, Annually, Annually, "USD"))

	got := SeriesFrom(res.Ledger)
	want := Series{
		Currency:               "USD",
		Years:                  []int{1, 2, 3},
		CumulativeContribution: []Money{USD(1100), USD(1200), USD(1300)},
		CumulativeInterest:     []Money{USD(100), USD(220), USD(362)},
		Balance:                []Money{USD(1200), USD(1420), USD(1662)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SeriesFrom() mismatch (-want +got):\n%s", diff)
	}
}

func TestSeriesFrom_Aligned(t *testing.T) {
	for _, tc := range invariantCases {
		t.Run(tc.name, func(t *testing.T) {
			res := mustCompute(t, tc.p)
			s := SeriesFrom(res.Ledger)
			if s.Len() != len(res.Ledger) {
				t.Fatalf("Len() = %d, want %d", s.Len(), len(res.Ledger))
			}
			for i, rec := range res.Ledger {
				// stacked contribution and interest add up to the balance
				stacked := s.CumulativeContribution[i].Add(s.CumulativeInterest[i])
				if !stacked.Equal(s.Balance[i]) {
					t.Errorf("year %d: contribution+interest = %v, want balance %v", rec.Year, stacked, s.Balance[i])
				}
			}
		})
	}
}

func TestSeriesFrom_Empty(t *testing.T) {
	s := SeriesFrom(nil)
	if s.Len() != 0 || s.Currency != "" {
		t.Errorf("SeriesFrom(nil) = %+v, want empty", s)
	}
}
