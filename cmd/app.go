// Package cmd implements the CLI application to manage a shoe inventory.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/inventory"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Group is a named group of subcommands, as listed by the help command.
type Group struct {
	Name     string
	Commands []subcommands.Command
}

// Commands lists every subcommand of the application.
var Commands = []Group{
	{"stock", []subcommands.Command{
		&addCmd{},
		&restockCmd{},
		&importCmd{},
		&fmtCmd{},
	}},
	{"reports", []subcommands.Command{
		&listCmd{},
		&searchCmd{},
		&valuesCmd{},
		&forSaleCmd{},
		&countryCmd{},
		&totalCmd{},
		&exportCmd{},
		&queryCmd{},
	}},
	{"", []subcommands.Command{
		&menuCmd{},
		&topicCmd{},
	}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range Commands {
		for _, cmd := range g.Commands {
			c.Register(cmd, g.Name)
		}
	}
}

// IsCommand reports whether name is a builtin subcommand.
func IsCommand(name string) bool {
	for _, g := range Commands {
		if slices.ContainsFunc(g.Commands, func(c subcommands.Command) bool { return c.Name() == name }) {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	inventoryFile = "inventory.txt"
	currency      = inventory.DefaultCurrency
	strict        bool
	plain         bool
	verbose       bool

	// stdout receives the reports, tests redirect it.
	stdout io.Writer = os.Stdout
)

// RegisterFlags declares the global flags, their defaults come from cfg.
func RegisterFlags(f *flag.FlagSet, cfg *Config) {
	f.StringVar(&inventoryFile, "file", cfg.File, "Path to the inventory file")
	f.StringVar(&currency, "currency", cfg.Currency, "Currency of the costs in the inventory file")
	f.BoolVar(&strict, "strict", cfg.Strict, "Fail on the first malformed line of the inventory file instead of skipping it")
	f.BoolVar(&plain, "plain", cfg.Plain, "Print reports as raw markdown, without terminal styling")
	f.BoolVar(&verbose, "v", cfg.Verbose, "Verbose logging")
}

// ValidateFlags checks the global flags once they are parsed.
func ValidateFlags() error {
	if inventoryFile == "" {
		return errors.New("the inventory file cannot be empty")
	}
	return checkCurrency(currency)
}

// Menu runs the interactive menu, it is the default command.
func Menu(ctx context.Context) subcommands.ExitStatus {
	return (&menuCmd{}).Execute(ctx, flag.NewFlagSet("menu", flag.ContinueOnError))
}

// OpenStore opens the app inventory file, logging what happened while loading it.
func OpenStore() (*inventory.Store, error) {
	s, err := inventory.OpenStore(inventoryFile, inventory.DecodeOptions{Currency: currency, Strict: strict})
	if err != nil {
		return nil, err
	}
	if s.Created() {
		log.Info().Str("file", s.Path()).Msg("inventory file not found, created an empty one")
	}
	for _, l := range s.Skipped() {
		log.Warn().Str("file", l.Filename).Int("line", l.Line).Str("text", l.Text).Err(l.Err).Msg("skipped malformed line")
	}
	log.Debug().Str("file", s.Path()).Int("stocks", s.Len()).Msg("inventory loaded")
	return s, nil
}

// openStore is OpenStore for commands: errors are printed and turned into an exit status.
func openStore() (*inventory.Store, subcommands.ExitStatus) {
	if err := ValidateFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading inventory: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return s, subcommands.ExitSuccess
}

// printMarkdown renders markdown to w, styled for the terminal unless -plain is set.
func printMarkdown(w io.Writer, md string) {
	if plain {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	log.Debug().Err(err).Msg("cannot render markdown, printing it raw")
	fmt.Fprint(w, md)
}
