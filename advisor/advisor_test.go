package advisor

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/compound"
)

func project(t *testing.T, p compound.Params) *compound.Result {
	t.Helper()
	res, err := compound.Compute(p)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	return res
}

func TestFallback(t *testing.T) {
	tests := []struct {
		name   string
		params compound.Params
		want   string
	}{
		{
			name:   "worked scenario",
			params: compound.NewParams(1000, 3, 10, 100, compound.Annually, compound.Annually, "USD"),
			want: "Investing $1,000.00 for 3 years at 10.00% a year, adding $100.00 annually, grows to **$1,662.00**.\n" +
				"\n" +
				"Contributions total $1,300.00, the initial $1,000.00 included. Interest adds $362.00, that is 21.78% of the final balance.\n" +
				"\n" +
				"From year 2, the interest earned each year exceeds the yearly contributions.\n",
		},
		{
			name:   "no contribution",
			params: compound.NewParams(1000, 1, 10, 0, compound.Annually, compound.Annually, "USD"),
			want: "Investing $1,000.00 for 1 year at 10.00% a year grows to **$1,100.00**.\n" +
				"\n" +
				"Contributions total $1,000.00, the initial $1,000.00 included. Interest adds $100.00, that is 9.09% of the final balance.\n",
		},
		{
			name:   "zero rate",
			params: compound.NewParams(1000, 2, 0, 0, compound.Annually, compound.Annually, "USD"),
			want: "Investing $1,000.00 for 2 years at 0.00% a year grows to **$1,000.00**.\n" +
				"\n" +
				"Contributions total $1,000.00, the initial $1,000.00 included. No interest is earned.\n",
		},
		{
			name:   "negative rate",
			params: compound.NewParams(1000, 1, -10, 0, compound.Annually, compound.Annually, "USD"),
			want: "Investing $1,000.00 for 1 year at -10.00% a year grows to **$900.00**.\n" +
				"\n" +
				"Contributions total $1,000.00, the initial $1,000.00 included. The negative rate costs $100.00.\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Fallback(tc.params, project(t, tc.params))
			if got != tc.want {
				t.Errorf("Fallback() =\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestExplain_Offline(t *testing.T) {
	p := compound.NewParams(1000, 3, 10, 100, compound.Annually, compound.Annually, "USD")
	res := project(t, p)

	a := New(nil, "")
	if a.Online() {
		t.Fatal("Online() = true for an Advisor without client")
	}
	if a.Model != DefaultModel {
		t.Errorf("Model = %q, want %q", a.Model, DefaultModel)
	}
	got, err := a.Explain(context.Background(), p, res)
	if err != nil {
		t.Fatalf("Explain() unexpected error: %v", err)
	}
	if want := Fallback(p, res); got != want {
		t.Errorf("Explain() =\n%s\nwant the fallback\n%s", got, want)
	}
}

func TestNewFromEnv_NoKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	a, err := NewFromEnv(context.Background(), "some-model")
	if err != nil {
		t.Fatalf("NewFromEnv() unexpected error: %v", err)
	}
	if a.Online() {
		t.Error("Online() = true without API key")
	}
	if a.Model != "some-model" {
		t.Errorf("Model = %q, want %q", a.Model, "some-model")
	}
}

func TestPrompt(t *testing.T) {
	p := compound.NewParams(1000, 3, 10, 100, compound.Monthly, compound.Annually, "USD")
	got := Prompt(p, project(t, p))
	for _, want := range []string{
		"- Initial investment: $1,000.00\n",
		"- Duration: 3 years\n",
		"- Annual interest rate: 10.00%\n",
		"- Contribution: $100.00 monthly\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Prompt() does not contain %q:\n%s", want, got)
		}
	}
}
