package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

// restockCmd holds the flags for the 'restock' subcommand.
type restockCmd struct {
	code     string
	quantity int
}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "show the shoe to restock, or restock a shoe" }
func (*restockCmd) Usage() string {
	return `inv restock [-code <code>] [-q <quantity>]

  Without -q, shows the shoe with the lowest quantity, the one to restock first.
  With -q, adds that many units to the shoe identified by -code, or to the
  lowest one when -code is not set.
`
}

func (c *restockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Code of the shoe to restock. Defaults to the shoe with the lowest quantity.")
	f.IntVar(&c.quantity, "q", 0, "Quantity to add")
}

func (c *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.quantity < 0 {
		fmt.Fprintln(os.Stderr, "Error: quantity must be positive")
		return subcommands.ExitUsageError
	}
	store, status := openStore()
	if store == nil {
		return status
	}

	stock := store.Lowest()
	if c.code != "" {
		var ok bool
		if stock, ok = store.Find(c.code); !ok {
			fmt.Fprintf(os.Stderr, "Error: shoe %q not found\n", c.code)
			return subcommands.ExitFailure
		}
	}
	if stock == nil {
		fmt.Fprintln(stdout, renderer.NoStock)
		return subcommands.ExitSuccess
	}

	if c.quantity == 0 {
		printMarkdown(stdout, renderer.Restock(stock))
		return subcommands.ExitSuccess
	}

	if _, err := store.Restock(stock.Code, c.quantity); err != nil {
		fmt.Fprintf(os.Stderr, "Error restocking %s: %v\n", stock.Code, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Restocked %s, %d in stock\n", stock.Code, stock.Quantity)
	return subcommands.ExitSuccess
}
