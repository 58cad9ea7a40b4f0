package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders md for the terminal. If rendering fails md is printed as is.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log := logger()
		log.Debug().Err(err).Msg("cannot create markdown renderer")
		fmt.Fprint(output, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log := logger()
		log.Debug().Err(err).Msg("cannot render markdown")
		fmt.Fprint(output, md)
		return
	}
	fmt.Fprint(output, out)
}
