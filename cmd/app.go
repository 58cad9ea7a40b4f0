// Package cmd implements the cip command line application.
//
// Every command is a google/subcommands Command listed in Commands. A main
// package registers them and executes the one selected by the user.
package cmd

import (
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands lists the cip subcommands.
var Commands = []subcommands.Command{
	&projectCmd{},
	&seriesCmd{},
	&explainCmd{},
	&serveCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currency = flag.String("currency", defaultCurrency(), "Currency of the amounts ($CIP_CURRENCY)")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "Verbose logging")

// output is where commands print their results.
var output io.Writer = os.Stdout

func defaultCurrency() string {
	if c := os.Getenv(EnvCurrency); c != "" {
		return c
	}
	return "EUR"
}

// logger returns the CLI logger, writing human readable lines to stderr.
// Only warnings are printed unless -v is set.
func logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if *Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
