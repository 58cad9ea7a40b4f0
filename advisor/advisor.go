// Package advisor narrates a projection in plain language.
//
// An Advisor asks a Gemini model to comment the projection figures. Without a
// model client it falls back to a fixed narrative computed from the figures
// alone, so that explanations are always available offline.
package advisor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/compound"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is set.
const DefaultModel = "gemini-2.5-flash"

const systemInstruction = `
You are a friendly personal finance educator. You explain compound interest projections to
people with no financial background.

You are given the inputs and the figures of a projection. Comment them in a few short
markdown paragraphs: how much comes from the saver and how much from interest, when interest
starts to outweigh the contributions, and what the rate assumption means.
Quote the figures exactly as given, never recompute them. Do not give investment advice.
`

// Advisor explains projections.
type Advisor struct {
	// Model is the Gemini model name.
	Model  string
	client *genai.Client
}

// New creates an Advisor using client. A nil client makes an offline Advisor
// that always returns the fallback narrative.
func New(client *genai.Client, model string) *Advisor {
	if model == "" {
		model = DefaultModel
	}
	return &Advisor{Model: model, client: client}
}

// NewFromEnv creates an Advisor with a Gemini client if an API key is set in
// GEMINI_API_KEY or GOOGLE_API_KEY, or an offline Advisor otherwise.
func NewFromEnv(ctx context.Context, model string) (*Advisor, error) {
	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		return New(nil, model), nil
	}
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing Gemini's client: %w", err)
	}
	return New(client, model), nil
}

// Online reports whether the Advisor asks a model.
func (a *Advisor) Online() bool { return a.client != nil }

// Explain returns a short markdown narrative of the projection res of p.
func (a *Advisor) Explain(ctx context.Context, p compound.Params, res *compound.Result) (string, error) {
	if a.client == nil {
		return Fallback(p, res), nil
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	resp, err := a.client.Models.GenerateContent(ctx, a.Model, genai.Text(Prompt(p, res)), config)
	if err != nil {
		return "", fmt.Errorf("asking %s: %w", a.Model, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Fallback(p, res), nil
	}
	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return Fallback(p, res), nil
	}
	return text, nil
}

// Prompt returns the question asked to the model about the projection res of p.
func Prompt(p compound.Params, res *compound.Result) string {
	var b strings.Builder
	fmt.Fprintln(&b, "Explain this compound interest projection.")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "- Initial investment: %s\n", p.Principal)
	fmt.Fprintf(&b, "- Duration: %s\n", years(p.Years))
	fmt.Fprintf(&b, "- Annual interest rate: %s\n", p.AnnualRate)
	fmt.Fprintf(&b, "- Contribution: %s %s\n", p.PeriodicContribution, p.ContributionsPerYear)
	fmt.Fprintf(&b, "- Final balance: %s\n", res.Summary.FinalBalance)
	fmt.Fprintf(&b, "- Total contributed, initial investment included: %s\n", res.Summary.TotalContributed)
	fmt.Fprintf(&b, "- Total interest: %s\n", res.Summary.TotalInterest)
	if y, ok := crossover(res.Ledger); ok {
		fmt.Fprintf(&b, "- First year where the interest exceeds the yearly contributions: %d\n", y)
	}
	return b.String()
}

// Fallback returns the narrative of the projection res of p computed from the
// figures alone.
func Fallback(p compound.Params, res *compound.Result) string {
	var b strings.Builder
	s := res.Summary

	fmt.Fprintf(&b, "Investing %s for %s at %s a year", p.Principal, years(p.Years), p.AnnualRate)
	if p.PeriodicContribution.IsPositive() {
		fmt.Fprintf(&b, ", adding %s %s,", p.PeriodicContribution, p.ContributionsPerYear)
	}
	fmt.Fprintf(&b, " grows to **%s**.\n\n", s.FinalBalance)

	fmt.Fprintf(&b, "Contributions total %s, the initial %s included.", s.TotalContributed, p.Principal)
	switch {
	case s.TotalInterest.IsNegative():
		fmt.Fprintf(&b, " The negative rate costs %s.\n", s.TotalInterest.Neg())
	case s.TotalInterest.IsZero():
		fmt.Fprintln(&b, " No interest is earned.")
	default:
		share := compound.Fraction(s.TotalInterest.Decimal().Div(s.FinalBalance.Decimal()).Round(4))
		fmt.Fprintf(&b, " Interest adds %s, that is %s of the final balance.\n", s.TotalInterest, share)
	}

	if y, ok := crossover(res.Ledger); ok {
		fmt.Fprintf(&b, "\nFrom year %d, the interest earned each year exceeds the yearly contributions.\n", y)
	}
	return b.String()
}

// crossover returns the first year whose interest exceeds its contributions,
// if contributions are made at all.
func crossover(ledger compound.Ledger) (int, bool) {
	for _, r := range ledger {
		if r.ContributionThisYear.IsZero() {
			return 0, false
		}
		if r.ContributionThisYear.LessThan(r.InterestEarnedThisYear) {
			return r.Year, true
		}
	}
	return 0, false
}

func years(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}
