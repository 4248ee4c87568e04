package main

import (
	"context"
	"flag"
	"os"

	"peaknear-tools/pntools/config"
	t "peaknear-tools/pntools/terminal"

	"github.com/google/subcommands"
)

func main() {

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&nearCmd{}, "")

	cfg, err := config.Load()
	if err != nil {
		t.Error(err, "Failed to load config")
		os.Exit(1)
	}

	ctx := context.Background()

	// running without a subcommand is the common case and behaves
	// like `near` with its default flags
	if flag.NArg() == 0 {
		cmd := &nearCmd{format: textFormat}
		os.Exit(int(cmd.Execute(ctx, flag.CommandLine, cfg)))
	}

	os.Exit(int(subcommands.Execute(ctx, cfg)))
}
