package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the inventory file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `inv fmt

  Validates and formats the inventory file. This command reads all the shoes,
  reports and drops the malformed lines, and writes the file back in its
  canonical form: header first, upper-case codes, costs with two decimals.

Usage Examples:
$ inv fmt
$ inv -file other.txt fmt

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, status := openStore()
	if store == nil {
		return status
	}

	fmt.Fprintf(os.Stderr, "Formatting inventory %q...\n", store.Path())
	if err := store.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted inventory %q: %v\n", store.Path(), err)
		return subcommands.ExitFailure
	}
	if n := len(store.Skipped()); n > 0 {
		fmt.Fprintf(os.Stderr, "Dropped %d malformed lines.\n", n)
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %d shoes.\n", store.Len())
	return subcommands.ExitSuccess
}
