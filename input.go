package compound

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// Form field names of an Input.
const (
	FieldPrincipal         = "principal"
	FieldYears             = "years"
	FieldRate              = "rate"
	FieldContribution      = "contrib"
	FieldContribFrequency  = "contrib_frequency"
	FieldCompoundFrequency = "compound_frequency"
)

// Input holds the raw, untrusted fields of a projection request, as typed by
// a user in a form or on a command line. Rate is a percentage.
type Input struct {
	Principal         string `json:"principal"`
	Years             string `json:"years"`
	Rate              string `json:"rate"`
	Contribution      string `json:"contrib"`
	ContribFrequency  string `json:"contrib_frequency"`
	CompoundFrequency string `json:"compound_frequency"`
}

// DefaultInput returns the input pre-filled in an empty form: 20000 invested
// for 10 years at 10%, plus 700 every month.
func DefaultInput() Input {
	return Input{
		Principal:         "20000",
		Years:             "10",
		Rate:              "10",
		Contribution:      "700",
		ContribFrequency:  "12",
		CompoundFrequency: "1",
	}
}

// InputFromValues reads an Input from form values. Missing or empty fields
// keep their DefaultInput value.
func InputFromValues(values url.Values) Input {
	in := DefaultInput()
	in.merge(Input{
		Principal:         values.Get(FieldPrincipal),
		Years:             values.Get(FieldYears),
		Rate:              values.Get(FieldRate),
		Contribution:      values.Get(FieldContribution),
		ContribFrequency:  values.Get(FieldContribFrequency),
		CompoundFrequency: values.Get(FieldCompoundFrequency),
	})
	return in
}

// merge overrides fields of in by the non empty fields of o.
func (in *Input) merge(o Input) {
	set := func(dst *string, src string) {
		if strings.TrimSpace(src) != "" {
			*dst = src
		}
	}
	set(&in.Principal, o.Principal)
	set(&in.Years, o.Years)
	set(&in.Rate, o.Rate)
	set(&in.Contribution, o.Contribution)
	set(&in.ContribFrequency, o.ContribFrequency)
	set(&in.CompoundFrequency, o.CompoundFrequency)
}

// Values returns the input as form values.
func (in Input) Values() url.Values {
	v := url.Values{}
	v.Set(FieldPrincipal, in.Principal)
	v.Set(FieldYears, in.Years)
	v.Set(FieldRate, in.Rate)
	v.Set(FieldContribution, in.Contribution)
	v.Set(FieldContribFrequency, in.ContribFrequency)
	v.Set(FieldCompoundFrequency, in.CompoundFrequency)
	return v
}

// UnmarshalJSON accepts every field either as a string or as a JSON number,
// and keeps DefaultInput values for missing fields.
func (in *Input) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var o Input
	for key, dst := range map[string]*string{
		FieldPrincipal:         &o.Principal,
		FieldYears:             &o.Years,
		FieldRate:              &o.Rate,
		FieldContribution:      &o.Contribution,
		FieldContribFrequency:  &o.ContribFrequency,
		FieldCompoundFrequency: &o.CompoundFrequency,
	} {
		val, ok := raw[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(val, &s); err == nil {
			*dst = s
			continue
		}
		var n json.Number
		if err := json.Unmarshal(val, &n); err != nil {
			return &Error{Kind: kindOfField(key), Field: key, Value: string(val), Err: err}
		}
		*dst = n.String()
	}
	*in = DefaultInput()
	in.merge(o)
	return nil
}

func kindOfField(field string) Kind {
	switch field {
	case FieldYears:
		return InvalidYears
	case FieldContribFrequency, FieldCompoundFrequency:
		return InvalidFrequency
	default:
		return InvalidAmount
	}
}

// Params parses the input into Params in the given currency. Parse failures
// are reported as an *Error for the first failing field, wrapping the parse
// error. Amounts beyond ±MaxAmount and rates beyond ±MaxRatePercent are
// parse failures; the other ranges are checked by Compute.
func (in Input) Params(currency string) (Params, error) {
	var p Params
	var err error

	if p.Principal, err = ParseMoney(strings.TrimSpace(in.Principal), currency); err != nil {
		return Params{}, &Error{Kind: InvalidAmount, Field: FieldPrincipal, Value: in.Principal, Err: err}
	}
	if p.Years, err = strconv.Atoi(strings.TrimSpace(in.Years)); err != nil {
		return Params{}, &Error{Kind: InvalidYears, Field: FieldYears, Value: in.Years, Err: err}
	}
	if p.AnnualRate, err = ParsePercent(strings.TrimSpace(in.Rate)); err != nil {
		return Params{}, &Error{Kind: InvalidAmount, Field: FieldRate, Value: in.Rate, Err: err}
	}
	if p.PeriodicContribution, err = ParseMoney(strings.TrimSpace(in.Contribution), currency); err != nil {
		return Params{}, &Error{Kind: InvalidAmount, Field: FieldContribution, Value: in.Contribution, Err: err}
	}
	if p.ContributionsPerYear, err = ParseFrequency(in.ContribFrequency); err != nil {
		return Params{}, &Error{Kind: InvalidFrequency, Field: FieldContribFrequency, Value: in.ContribFrequency, Err: err}
	}
	if p.CompoundsPerYear, err = ParseFrequency(in.CompoundFrequency); err != nil {
		return Params{}, &Error{Kind: InvalidFrequency, Field: FieldCompoundFrequency, Value: in.CompoundFrequency, Err: err}
	}
	return p, nil
}

// Project parses the input and computes its projection.
func (in Input) Project(currency string) (Params, *Result, error) {
	p, err := in.Params(currency)
	if err != nil {
		return Params{}, nil, err
	}
	res, err := Compute(p)
	if err != nil {
		return p, nil, err
	}
	return p, res, nil
}
