package compound

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSummaryFrom(t *testing.T) {
	for _, tc := range invariantCases {
		t.Run(tc.name, func(t *testing.T) {
			res := mustCompute(t, tc.p)
			if diff := cmp.Diff(res.Summary, SummaryFrom(res.Ledger)); diff != "" {
				t.Errorf("SummaryFrom() mismatch (-compute +summaryFrom):\n%s", diff)
			}
		})
	}
}

func TestSummaryFrom_PartialLedger(t *testing.T) {
	res := mustCompute(t, NewParams(1000, 3, 10, 100, Annually, Annually, "USD"))

	got := SummaryFrom(res.Ledger[:2])
	want := Summary{FinalBalance: USD(1420), TotalContributed: USD(1200), TotalInterest: USD(220)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SummaryFrom() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryFrom_Empty(t *testing.T) {
	got := SummaryFrom(nil)
	if !got.FinalBalance.IsZero() || !got.TotalContributed.IsZero() || !got.TotalInterest.IsZero() {
		t.Errorf("SummaryFrom(nil) = %+v, want zero", got)
	}
}
