// Command cip projects the growth of an investment under compound interest.
//
// Run 'cip topic' for the user manual.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/compound/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Complete("cip")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	flag.Parse()

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if ok, code := cmd.RunExtension(name, flag.Args()[1:]); ok {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a command of c.
func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		if sc.Name() == name {
			found = true
		}
	})
	return found
}
