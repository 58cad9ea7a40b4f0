package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/compound"
	"github.com/google/subcommands"
)

// inputFlags are the projection inputs shared by every computing command.
type inputFlags struct {
	in compound.Input
}

const inputUsage = `[-p <principal>] [-y <years>] [-r <rate>] [-c <contribution>] [-cf <frequency>] [-kf <frequency>]`

func (c *inputFlags) SetFlags(f *flag.FlagSet) {
	def := compound.DefaultInput()
	f.StringVar(&c.in.Principal, "p", def.Principal, "Initial investment")
	f.StringVar(&c.in.Years, "y", def.Years, "Number of years, from 1 to 50")
	f.StringVar(&c.in.Rate, "r", def.Rate, "Annual interest rate in percent, may be negative")
	f.StringVar(&c.in.Contribution, "c", def.Contribution, "Periodic contribution")
	f.StringVar(&c.in.ContribFrequency, "cf", def.ContribFrequency, "Contributions per year: 1 (annually) or 12 (monthly)")
	f.StringVar(&c.in.CompoundFrequency, "kf", def.CompoundFrequency, "Compounding periods per year: 1 or 12")
}

// project computes the projection of the flags. On failure, it prints the
// error and returns the exit status to use.
func (c *inputFlags) project() (compound.Params, *compound.Result, subcommands.ExitStatus) {
	log := logger()
	if err := compound.ValidCurrency(*currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return compound.Params{}, nil, subcommands.ExitUsageError
	}

	params, res, err := c.in.Project(*currency)
	if err != nil {
		log.Debug().Str("kind", string(compound.KindOf(err))).Msg("invalid input")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return compound.Params{}, nil, subcommands.ExitUsageError
	}
	log.Debug().
		Int("years", params.Years).
		Str("rate", params.AnnualRate.String()).
		Str("final_balance", res.Summary.FinalBalance.String()).
		Msg("projection computed")
	return params, res, subcommands.ExitSuccess
}
