package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

// printReport opens the inventory and prints the report built by md, or a notice when it is empty.
func printReport(md func(*inventory.Store) string) subcommands.ExitStatus {
	store, status := openStore()
	if store == nil {
		return status
	}
	if store.Len() == 0 {
		fmt.Fprintln(stdout, renderer.NoStock)
		return subcommands.ExitSuccess
	}
	printMarkdown(stdout, md(store))
	return subcommands.ExitSuccess
}

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display all the shoes in stock" }
func (*listCmd) Usage() string {
	return `inv list

  Displays every shoe of the inventory in a table.
`
}
func (c *listCmd) SetFlags(f *flag.FlagSet) {}
func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return printReport(func(s *inventory.Store) string { return renderer.Stocks(s.Inventory) })
}

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "display a shoe by its code" }
func (*searchCmd) Usage() string {
	return `inv search <code>

  Displays the shoe with the given code. Codes are not case sensitive.
`
}
func (c *searchCmd) SetFlags(f *flag.FlagSet) {}
func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: search requires exactly one code")
		return subcommands.ExitUsageError
	}
	store, status := openStore()
	if store == nil {
		return status
	}
	s, ok := store.Find(f.Arg(0))
	if !ok {
		fmt.Fprintln(os.Stderr, "Shoe not found")
		return subcommands.ExitFailure
	}
	printMarkdown(stdout, renderer.Stock("Shoe Found", s))
	return subcommands.ExitSuccess
}

type valuesCmd struct{}

func (*valuesCmd) Name() string     { return "values" }
func (*valuesCmd) Synopsis() string { return "display the value of each product" }
func (*valuesCmd) Usage() string {
	return `inv values

  Displays the value (cost times quantity) of each shoe.
`
}
func (c *valuesCmd) SetFlags(f *flag.FlagSet) {}
func (c *valuesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return printReport(func(s *inventory.Store) string { return renderer.Values(s.ValueReport()) })
}

type forSaleCmd struct{}

func (*forSaleCmd) Name() string     { return "forsale" }
func (*forSaleCmd) Synopsis() string { return "display the shoe with the highest quantity" }
func (*forSaleCmd) Usage() string {
	return `inv forsale

  Displays the shoe with the most units in stock, the one to mark for sale.
`
}
func (c *forSaleCmd) SetFlags(f *flag.FlagSet) {}
func (c *forSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return printReport(func(s *inventory.Store) string { return renderer.ForSale(s.Highest()) })
}

// countryCmd holds the flags for the 'country' subcommand.
type countryCmd struct {
	country string
}

func (*countryCmd) Name() string     { return "country" }
func (*countryCmd) Synopsis() string { return "display the stock by country" }
func (*countryCmd) Usage() string {
	return `inv country [-c <country>]

  Displays the number of products, units and the value of the stock of each
  country, most valuable first. With -c, displays the value for that country only.
`
}
func (c *countryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.country, "c", "", "Country to report the total value of")
}
func (c *countryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.country != "" {
		return printReport(func(s *inventory.Store) string {
			return renderer.CountryTotal(c.country, s.ValueByCountry(c.country))
		})
	}
	return printReport(func(s *inventory.Store) string { return renderer.Countries(s.CountryReport()) })
}

type totalCmd struct{}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "display the total value of the warehouse" }
func (*totalCmd) Usage() string {
	return `inv total

  Displays the sum of cost times quantity over all the shoes.
`
}
func (c *totalCmd) SetFlags(f *flag.FlagSet) {}
func (c *totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return printReport(func(s *inventory.Store) string { return renderer.Total(s.TotalValue()) })
}
