package compound

// MaxYears is the longest projection Compute accepts.
const MaxYears = 50

// Params are the inputs of a projection.
type Params struct {
	Principal            Money
	Years                int
	AnnualRate           Rate
	PeriodicContribution Money
	ContributionsPerYear Frequency
	// CompoundsPerYear is validated and carried along, but interest always
	// compounds annually.
	CompoundsPerYear Frequency
}

// NewParams builds Params from plain numbers, the rate being given in percent.
func NewParams(principal float64, years int, annualRatePercent, periodicContribution float64, contributionsPerYear, compoundsPerYear Frequency, currency string) Params {
	return Params{
		Principal:            M(principal, currency),
		Years:                years,
		AnnualRate:           Percent(annualRatePercent),
		PeriodicContribution: M(periodicContribution, currency),
		ContributionsPerYear: contributionsPerYear,
		CompoundsPerYear:     compoundsPerYear,
	}
}

// Validate checks p and returns the first failure as an *Error.
func (p Params) Validate() error {
	switch {
	case p.Years < 1:
		return newError(InvalidYears, FieldYears, p.Years)
	case p.Years > MaxYears:
		return newError(YearsOutOfRange, FieldYears, p.Years)
	case p.Principal.IsNegative():
		return newError(InvalidAmount, FieldPrincipal, p.Principal.Decimal())
	case p.PeriodicContribution.IsNegative():
		return newError(InvalidAmount, FieldContribution, p.PeriodicContribution.Decimal())
	case p.Principal.Currency() != "" && p.PeriodicContribution.Currency() != "" &&
		p.Principal.Currency() != p.PeriodicContribution.Currency():
		return newError(InvalidAmount, "currency", p.PeriodicContribution.Currency())
	case !p.ContributionsPerYear.Valid():
		return newError(InvalidFrequency, FieldContribFrequency, int(p.ContributionsPerYear))
	case !p.CompoundsPerYear.Valid():
		return newError(InvalidFrequency, FieldCompoundFrequency, int(p.CompoundsPerYear))
	}
	return nil
}
