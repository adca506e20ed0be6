package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	country  string
	code     string
	product  string
	cost     string
	quantity int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new shoe to the inventory" }
func (*addCmd) Usage() string {
	return `inv add -country <country> -code <code> [-product <name>] -cost <cost> [-q <quantity>]

  Adds a new shoe to the inventory file. The code must not be used yet, the
  cost must be positive and the quantity cannot be negative.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.country, "country", "", "Country the shoe comes from")
	f.StringVar(&c.code, "code", "", "Product code, stored upper-case")
	f.StringVar(&c.product, "product", "", "Product name")
	f.StringVar(&c.cost, "cost", "", "Unit cost, in the inventory currency")
	f.IntVar(&c.quantity, "q", 0, "Quantity in stock")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.cost == "" {
		fmt.Fprintln(os.Stderr, "Error: -cost is required")
		return subcommands.ExitUsageError
	}
	cost, err := inventory.ParseMoney(c.cost, currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cost: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, status := openStore()
	if store == nil {
		return status
	}

	stock := inventory.NewStock(c.country, c.code, c.product, cost, c.quantity)
	if err := store.Add(stock); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding shoe: %v\n", err)
		if errors.Is(err, inventory.ErrInvalidStock) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	log.Debug().Str("code", stock.Code).Str("file", store.Path()).Msg("stock added")
	fmt.Fprintf(stdout, "Added %s to %s\n", stock.Code, store.Path())
	return subcommands.ExitSuccess
}
