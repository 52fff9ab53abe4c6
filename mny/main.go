// Command mny formats, computes and converts money from the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/monetary/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, "mny")
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	// exits when invoked by the shell for completion.
	cmd.Completion(commander).Complete("mny")

	flag.Parse()
	ctx, err := cmd.Configure(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	if name := flag.Arg(0); name != "" && !cmd.IsRegistered(commander, name) {
		if ok, code := cmd.RunExtension(name, flag.Args()[1:]); ok {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(ctx)))
}
