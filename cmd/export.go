package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the inventory as JSONL or YAML" }
func (*exportCmd) Usage() string {
	return `inv export [-f jsonl|yaml] [-o <file>]

  Writes every shoe, with its value, in a machine readable format.
  The JSONL format can be read back by 'inv import'.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "f", "jsonl", "Output format: jsonl or yaml")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the standard output.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var export func(io.Writer, *inventory.Inventory) error
	switch c.format {
	case "jsonl", "json":
		export = inventory.ExportJSON
	case "yaml", "yml":
		export = inventory.ExportYAML
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	store, status := openStore()
	if store == nil {
		return status
	}

	w := stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}
	if err := export(w, store.Inventory); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Debug().Str("format", c.format).Int("stocks", store.Len()).Msg("inventory exported")
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "add shoes from a JSONL file" }
func (*importCmd) Usage() string {
	return `inv import <file.jsonl>

  Adds the shoes of a JSONL file, as written by 'inv export', to the inventory.
  Nothing is saved if one of them is invalid or already in the inventory.
`
}
func (c *importCmd) SetFlags(f *flag.FlagSet) {}
func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import requires exactly one file")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	store, status := openStore()
	if store == nil {
		return status
	}
	n, err := inventory.ImportJSON(file, store.Inventory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	if err := store.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Imported %d shoes into %s\n", n, store.Path())
	return subcommands.ExitSuccess
}

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the inventory with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `inv query <jsonpath>

  Evaluates a JSONPath expression against the inventory, as exported in JSON,
  and prints the result.

Usage Examples:
# codes of the shoes from Vietnam
$ inv query '$[?(@.country=="Vietnam")].code'

`
}
func (c *queryCmd) SetFlags(f *flag.FlagSet) {}
func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query requires exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}
	store, status := openStore()
	if store == nil {
		return status
	}
	v, err := inventory.Query(store.Inventory, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
