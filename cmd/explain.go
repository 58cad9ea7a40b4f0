package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/compound/advisor"
	"github.com/google/subcommands"
)

type explainCmd struct {
	inputFlags
	model string
}

func (*explainCmd) Name() string     { return "explain" }
func (*explainCmd) Synopsis() string { return "explain a projection in plain words" }
func (*explainCmd) Usage() string {
	return `cip explain ` + inputUsage + ` [-model <name>]

  Prints a short narrative of the projection. It is written by a Gemini model
  when GEMINI_API_KEY or GOOGLE_API_KEY is set, and computed offline otherwise.
`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.StringVar(&c.model, "model", advisor.DefaultModel, "Gemini model")
}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	params, res, status := c.project()
	if status != subcommands.ExitSuccess {
		return status
	}

	a, err := advisor.NewFromEnv(ctx, c.model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	log := logger()
	log.Debug().Bool("online", a.Online()).Str("model", a.Model).Msg("explaining")

	text, err := a.Explain(ctx, params, res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error explaining projection: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(text)
	return subcommands.ExitSuccess
}
