package compound

// Summary holds the totals of a projection.
type Summary struct {
	FinalBalance     Money
	TotalContributed Money // principal included
	TotalInterest    Money // FinalBalance - TotalContributed
}

// SummaryFrom computes the summary of an existing ledger, without simulating
// again. The summary of an empty ledger is zero.
func SummaryFrom(ledger Ledger) Summary {
	if len(ledger) == 0 {
		return Summary{}
	}
	last := ledger[len(ledger)-1]
	return Summary{
		FinalBalance:     last.BalanceEndOfYear,
		TotalContributed: last.CumulativeContribution,
		TotalInterest:    last.BalanceEndOfYear.Sub(last.CumulativeContribution),
	}
}
