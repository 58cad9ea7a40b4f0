package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/compound/renderer"
	"github.com/google/subcommands"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	inputFlags
	json  bool
	query string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the growth of an investment" }
func (*projectCmd) Usage() string {
	return `cip project ` + inputUsage + ` [-json] [-q <jsonpath>]

  Computes the year by year projection of an investment and prints its
  summary and ledger.

  With -json the projection is printed as JSON. With -q only the value
  selected by the JSONPath expression is printed, e.g. -q '$.summary.finalBalance'.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "Print the projection as JSON")
	f.StringVar(&c.query, "q", "", "Print only the value selected by this JSONPath expression")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	params, res, status := c.project()
	if status != subcommands.ExitSuccess {
		return status
	}

	switch {
	case c.query != "":
		val, err := query(res, c.query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error querying %q: %v\n", c.query, err)
			return subcommands.ExitUsageError
		}
		fmt.Fprintln(output, val)
	case c.json:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding projection: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(output, string(data))
	default:
		printMarkdown(renderer.RenderProjection(renderer.NewProjection(params, res)))
	}
	return subcommands.ExitSuccess
}

// query returns the value at path in the JSON encoding of v. Strings are
// returned as is, other values as JSON.
func query(v any, path string) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return "", err
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", err
	}
	if s, ok := jval.(string); ok {
		return s, nil
	}
	out, err := json.Marshal(jval)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
