package cmd

import (
	"flag"

	"github.com/etnz/compound/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var frequencies = predict.Set{"1", "12", "annually", "monthly"}

// Complete runs the shell completion of the cip command named name, if the
// shell asked for it. Otherwise it returns immediately.
//
// Install it with COMP_INSTALL=1 cip.
func Complete(name string) {
	completion().Complete(name)
}

// completion returns the completion tree of the global flags and of every command in Commands.
func completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = predictFlag(f)
	})

	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predictFlag(f)
		})
		root.Sub[c.Name()] = sub
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(topics, "readme", "*"))
	}
	return root
}

func predictFlag(f *flag.Flag) complete.Predictor {
	switch f.Name {
	case "cf", "kf":
		return frequencies
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}
