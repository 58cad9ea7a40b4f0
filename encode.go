package compound

// This file contains the JSON encoding of projections.
//
// Objects are written with a stable key order, the order of the ledger table,
// so that the output is diffable and easy to read. The currency is written
// once at the top of a Result or a Series, every amount below it is a plain
// JSON number with two decimals.

// MarshalJSON encodes the summary totals.
func (s Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("finalBalance", s.FinalBalance.amount())
	w.Append("totalContributed", s.TotalContributed.amount())
	w.Append("totalInterest", s.TotalInterest.amount())
	return w.MarshalJSON()
}

// MarshalJSON encodes a ledger entry.
func (r YearRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", r.Year)
	w.Append("balanceStartOfYear", r.BalanceStartOfYear.amount())
	w.Append("contributionThisYear", r.ContributionThisYear.amount())
	w.Append("cumulativeContribution", r.CumulativeContribution.amount())
	w.Append("interestEarnedThisYear", r.InterestEarnedThisYear.amount())
	w.Append("cumulativeInterest", r.CumulativeInterest.amount())
	w.Append("balanceEndOfYear", r.BalanceEndOfYear.amount())
	return w.MarshalJSON()
}

// MarshalJSON encodes the whole projection.
func (r *Result) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", r.Currency())
	w.Append("summary", r.Summary)
	ledger := r.Ledger
	if ledger == nil {
		ledger = Ledger{}
	}
	w.Append("ledger", []YearRecord(ledger))
	return w.MarshalJSON()
}

// MarshalJSON encodes the series as parallel arrays.
func (s Series) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", s.Currency)
	years := s.Years
	if years == nil {
		years = []int{}
	}
	w.Append("years", years)
	w.Append("cumulativeContribution", amounts(s.CumulativeContribution))
	w.Append("cumulativeInterest", amounts(s.CumulativeInterest))
	w.Append("balance", amounts(s.Balance))
	return w.MarshalJSON()
}

func amounts(list []Money) []any {
	res := make([]any, 0, len(list))
	for _, m := range list {
		res = append(res, m.amount())
	}
	return res
}
