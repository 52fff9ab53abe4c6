package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/monetary"
	"github.com/google/subcommands"
)

type formatCmd struct {
	spec string
}

func (*formatCmd) Name() string     { return "format" }
func (*formatCmd) Synopsis() string { return "format an amount in the current culture" }
func (*formatCmd) Usage() string {
	return `mny format [-spec <spec>] <amount> [<code>]

  Prints the amount formatted with the culture selected by -locale.
  Without a code the amount is in the default currency.

  Specs are C (currency, the default) and N (number without symbol),
  optionally followed by the number of decimals: C0, C3, N2...
`
}

func (c *formatCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.spec, "spec", "C", "Format spec: C, Cn, N or Nn.")
}

func (c *formatCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 || f.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "format expects an amount and an optional currency code")
		return subcommands.ExitUsageError
	}
	m, err := parseAmount(strings.Join(f.Args(), " "), func() (monetary.Currency, error) { return defaultCurrency(ctx) })
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := monetary.CultureFrom(ctx).FormatSpec(m, c.spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting: %v\n", err)
		return subcommands.ExitUsageError
	}
	fmt.Println(s)
	return subcommands.ExitSuccess
}
