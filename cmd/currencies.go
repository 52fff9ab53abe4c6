package cmd

import (
	"context"
	"flag"

	"github.com/etnz/monetary"
	"github.com/etnz/monetary/renderer"
	"github.com/google/subcommands"
)

type currenciesCmd struct {
	filter string
}

func (*currenciesCmd) Name() string     { return "currencies" }
func (*currenciesCmd) Synopsis() string { return "list the known currencies" }
func (*currenciesCmd) Usage() string {
	return `mny currencies [-filter <text>]

  Lists the ISO 4217 currencies, with a sample amount formatted in the
  current culture.
`
}

func (c *currenciesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filter, "filter", "", "Only list currencies whose code or name contains this text.")
}

func (c *currenciesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l := renderer.NewCurrencyList(monetary.Currencies(), c.filter, monetary.CultureFrom(ctx))
	printMarkdown(renderer.RenderCurrencies(l))
	return subcommands.ExitSuccess
}
