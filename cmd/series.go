package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/compound"
	"github.com/google/subcommands"
)

type seriesCmd struct {
	inputFlags
}

func (*seriesCmd) Name() string     { return "series" }
func (*seriesCmd) Synopsis() string { return "print the chart series of a projection as JSON" }
func (*seriesCmd) Usage() string {
	return `cip series ` + inputUsage + `

  Prints the total contributed, total interest and balance of each year of
  the projection, as parallel JSON arrays.
`
}

func (c *seriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, res, status := c.project()
	if status != subcommands.ExitSuccess {
		return status
	}
	data, err := json.Marshal(compound.SeriesFrom(res.Ledger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding series: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(output, string(data))
	return subcommands.ExitSuccess
}
