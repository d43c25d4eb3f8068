package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/mfinelli/fbarcalc/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	ctx := context.Background()

	// without a subcommand, run the calculation flow.
	if flag.NArg() == 0 {
		os.Exit(int(cmd.Calculate(ctx)))
	}
	os.Exit(int(commander.Execute(ctx)))
}
