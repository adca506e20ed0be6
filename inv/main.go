package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/inventory/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.SetupLogger(os.Stderr)
	cmd.Completion().Complete(name)

	cfg, err := cmd.LoadConfig(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)
	cmd.RegisterFlags(flag.CommandLine, cfg)

	flag.Parse()
	cmd.SetupLogger(os.Stderr)
	if err := cmd.ValidateFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	ctx := context.Background()
	if flag.NArg() == 0 {
		os.Exit(int(cmd.Menu(ctx)))
	}
	if sub := flag.Arg(0); !cmd.IsCommand(sub) && !isBuiltin(sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(ctx)))
}

func isBuiltin(name string) bool {
	return name == "help" || name == "flags" || name == "commands"
}
