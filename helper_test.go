package compound

import "testing"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// mustCompute computes p and fails the test on error.
func mustCompute(t testing.TB, p Params) *Result {
	t.Helper()
	res, err := Compute(p)
	if err != nil {
		t.Fatalf("Compute(%+v) unexpected error: %v", p, err)
	}
	return res
}
