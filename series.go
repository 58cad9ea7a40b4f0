package compound

// Series holds aligned sequences indexed by year, ready for stacked-area or
// line charts: Years[i] is the year of every other value at index i.
type Series struct {
	Currency               string
	Years                  []int
	CumulativeContribution []Money
	CumulativeInterest     []Money
	Balance                []Money // end of year
}

// SeriesFrom maps a ledger to its chart series, preserving order.
func SeriesFrom(ledger Ledger) Series {
	s := Series{
		Years:                  make([]int, 0, len(ledger)),
		CumulativeContribution: make([]Money, 0, len(ledger)),
		CumulativeInterest:     make([]Money, 0, len(ledger)),
		Balance:                make([]Money, 0, len(ledger)),
	}
	for _, rec := range ledger {
		s.Years = append(s.Years, rec.Year)
		s.CumulativeContribution = append(s.CumulativeContribution, rec.CumulativeContribution)
		s.CumulativeInterest = append(s.CumulativeInterest, rec.CumulativeInterest)
		s.Balance = append(s.Balance, rec.BalanceEndOfYear)
	}
	if len(ledger) > 0 {
		s.Currency = ledger[0].BalanceEndOfYear.Currency()
	}
	return s
}

// Len returns the number of points in the series.
func (s Series) Len() int { return len(s.Years) }
