package compound

// YearRecord is the ledger entry of one simulated year.
type YearRecord struct {
	Year                   int // 1-indexed
	BalanceStartOfYear     Money
	ContributionThisYear   Money
	CumulativeContribution Money // principal included
	InterestEarnedThisYear Money
	CumulativeInterest     Money
	BalanceEndOfYear       Money
}

// Ledger is the ordered sequence of YearRecord spanning a projection.
type Ledger []YearRecord

// Result is the outcome of a projection.
type Result struct {
	Ledger  Ledger
	Summary Summary
}

// Currency returns the display currency of the projection.
func (r *Result) Currency() string {
	if len(r.Ledger) == 0 {
		return r.Summary.FinalBalance.Currency()
	}
	return r.Ledger[0].BalanceStartOfYear.Currency()
}

// Compute runs the projection described by p.
//
// Interest is earned once a year on the balance at the start of the year and
// rounded to the cent when computed. The year's contributions are added at the
// end of the year and earn nothing until the following year. Amounts are
// quantized to the cent on entry, so every later sum is exact and
//
//	FinalBalance - TotalContributed == sum of InterestEarnedThisYear
//
// holds to the cent.
//
// Invalid params are rejected with an *Error before anything is simulated.
func Compute(p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	principal := p.Principal.Round()
	contribution := p.PeriodicContribution.Round().Times(int(p.ContributionsPerYear))

	ledger := make(Ledger, 0, p.Years)
	balance, contributed, earned := principal, principal, M(0, principal.Currency())
	for year := 1; year <= p.Years; year++ {
		interest := balance.Interest(p.AnnualRate)
		contributed = contributed.Add(contribution)
		earned = earned.Add(interest)
		end := balance.Add(interest).Add(contribution)
		ledger = append(ledger, YearRecord{
			Year:                   year,
			BalanceStartOfYear:     balance,
			ContributionThisYear:   contribution,
			CumulativeContribution: contributed,
			InterestEarnedThisYear: interest,
			CumulativeInterest:     earned,
			BalanceEndOfYear:       end,
		})
		balance = end
	}

	return &Result{Ledger: ledger, Summary: SummaryFrom(ledger)}, nil
}
