package cmd

import (
	"flag"

	"github.com/etnz/monetary"
	"github.com/etnz/monetary/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the commands registered in c
// and of the global flags.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		switch cmd.Name() {
		case "format", "calc", "convert":
			sub.Args = currencyCodes()
		case "topic":
			topics, _ := docs.Topics()
			sub.Args = predict.Set(topics)
		case "help":
			var names []string
			c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) { names = append(names, cmd.Name()) })
			sub.Args = predict.Set(names)
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// flagPredictors predicts flag values from their names.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			m[f.Name] = predict.Nothing
			return
		}
		switch f.Name {
		case "locale":
			m[f.Name] = predict.Set(monetary.Cultures())
		case "currency", "from", "to":
			m[f.Name] = currencyCodes()
		case "spec":
			m[f.Name] = predict.Set{"C", "C0", "C2", "C4", "N", "N0", "N2", "N4"}
		case "rates":
			m[f.Name] = predict.Files("*.json*")
		default:
			m[f.Name] = predict.Something
		}
	})
	return m
}

func currencyCodes() predict.Set {
	var codes []string
	for c := range monetary.Currencies() {
		codes = append(codes, c.Code())
	}
	return predict.Set(codes)
}
