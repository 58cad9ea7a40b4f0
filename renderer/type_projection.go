package renderer

import (
	"github.com/etnz/compound"
)

// Projection is the printable view of a projection: every amount is already
// formatted in the projection currency.
type Projection struct {
	Principal    string `json:"principal"`
	Years        int    `json:"years"`
	Rate         string `json:"rate"`
	Contribution string `json:"contribution"`
	Frequency    string `json:"frequency"`

	FinalBalance     string `json:"finalBalance"`
	TotalContributed string `json:"totalContributed"`
	TotalInterest    string `json:"totalInterest"`

	Rows []ProjectionRow `json:"rows"`
}

// ProjectionRow is one line of the year-by-year breakdown.
type ProjectionRow struct {
	Year              int    `json:"year"`
	BalanceBoY        string `json:"balanceBoY"`
	YearlyContributed string `json:"yearlyContributed"`
	TotalContributed  string `json:"totalContributed"`
	YearlyInterest    string `json:"yearlyInterest"`
	TotalInterest     string `json:"totalInterest"`
	BalanceEoY        string `json:"balanceEoY"`
}

// NewProjection builds the view of res, computed from p.
func NewProjection(p compound.Params, res *compound.Result) *Projection {
	v := &Projection{
		Principal:        p.Principal.Round().String(),
		Years:            p.Years,
		Rate:             p.AnnualRate.String(),
		Contribution:     p.PeriodicContribution.Round().String(),
		Frequency:        p.ContributionsPerYear.String(),
		FinalBalance:     res.Summary.FinalBalance.String(),
		TotalContributed: res.Summary.TotalContributed.String(),
		TotalInterest:    res.Summary.TotalInterest.String(),
		Rows:             make([]ProjectionRow, 0, len(res.Ledger)),
	}
	for _, rec := range res.Ledger {
		v.Rows = append(v.Rows, ProjectionRow{
			Year:              rec.Year,
			BalanceBoY:        rec.BalanceStartOfYear.String(),
			YearlyContributed: rec.ContributionThisYear.String(),
			TotalContributed:  rec.CumulativeContribution.String(),
			YearlyInterest:    rec.InterestEarnedThisYear.String(),
			TotalInterest:     rec.CumulativeInterest.String(),
			BalanceEoY:        rec.BalanceEndOfYear.String(),
		})
	}
	return v
}
