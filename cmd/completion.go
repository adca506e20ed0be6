package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
// Install it with `COMP_INSTALL=1 inv`.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"file":     predict.Files("*"),
			"currency": predict.Set{"ZAR", "USD", "EUR", "GBP"},
			"strict":   predict.Nothing,
			"plain":    predict.Nothing,
			"v":        predict.Nothing,
		},
	}
	for _, g := range Commands {
		for _, c := range g.Commands {
			f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(f)
			sub := &complete.Command{Flags: map[string]complete.Predictor{}}
			f.VisitAll(func(fl *flag.Flag) {
				sub.Flags[fl.Name] = predict.Something
			})
			root.Sub[c.Name()] = sub
		}
	}
	root.Sub["topic"].Args = predict.Set{"readme", "format", "menu", "*"}
	root.Sub["import"].Args = predict.Files("*.jsonl")
	root.Sub["export"].Flags["f"] = predict.Set{"jsonl", "yaml"}
	root.Sub["export"].Flags["o"] = predict.Files("*")
	return root
}
