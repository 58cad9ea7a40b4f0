package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/compound/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the cip manual, one topic at a time or all at once" }
func (*topicCmd) Usage() string {
	return `cip topic [-list] [<topic>|'*'...]

  Without a topic, print the readme, the index of every topic.

  Each named topic is printed in the given order, one after the other,
  as a single markdown document. '*' stands for every topic but the
  readme, sorted by name. Quote it so that the shell does not expand it.

  An unknown topic prints nothing and exits with a usage error.

Flags:
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "print the topic names only, one per line")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		names, err := docs.GetAllTopics()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot list topics: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, name := range names {
			fmt.Fprintln(output, name)
		}
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nRun \"cip topic -list\" for the available topics, or \"cip topic '*'\" to read them all.\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
