package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/monetary"
	"github.com/etnz/monetary/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type convertCmd struct {
	rate  string
	rates string
	path  string
	from  string
	to    string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount through an exchange rate" }
func (*convertCmd) Usage() string {
	return `mny convert -rate <BASE/QUOTE=rate> <amount>
mny convert -rates <file> -from <BASE> -to <QUOTE> [-path <jsonpath>] <amount>

  Converts an amount in the base currency into the quote currency.

  The rate is either given on the command line (-rate EUR/USD=1.1) or read
  from a local file. Without -path the file holds exchange rates, one JSON
  object per line:

    {"baseCurrency":"EUR","quoteCurrency":"USD","value":"1.1"}

  With -path the file is any JSON document, and the jsonpath expression
  selects the rate of one -from unit in -to, for instance '$.rates.USD'.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rate, "rate", "", "Exchange rate, as BASE/QUOTE=rate.")
	f.StringVar(&c.rates, "rates", "", "Local file to read the exchange rate from.")
	f.StringVar(&c.path, "path", "", "JSONPath of the rate in the -rates file.")
	f.StringVar(&c.from, "from", "", "Base currency code, with -rates.")
	f.StringVar(&c.to, "to", "", "Quote currency code, with -rates.")
}

func (c *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "convert expects an amount")
		return subcommands.ExitUsageError
	}
	rate, err := c.exchangeRate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading exchange rate: %v\n", err)
		return subcommands.ExitUsageError
	}
	m, err := parseAmount(strings.Join(f.Args(), " "), fixed(rate.Base()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	conv, err := renderer.NewConversion(rate, m, monetary.CultureFrom(ctx))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderConversion(conv))
	return subcommands.ExitSuccess
}

func (c *convertCmd) exchangeRate() (monetary.ExchangeRate, error) {
	switch {
	case c.rate != "" && c.rates != "":
		return monetary.ExchangeRate{}, fmt.Errorf("-rate and -rates are exclusive")
	case c.rate != "":
		return monetary.ParseExchangeRate(c.rate)
	case c.rates == "":
		return monetary.ExchangeRate{}, fmt.Errorf("one of -rate or -rates is required")
	}

	data, err := os.ReadFile(c.rates)
	if err != nil {
		return monetary.ExchangeRate{}, err
	}
	if c.path != "" {
		return rateAt(data, c.path, c.from, c.to)
	}
	return findRate(data, c.from, c.to)
}

// findRate returns the from/to rate among JSONL rates.
// The inverse rate is never used.
func findRate(data []byte, from, to string) (monetary.ExchangeRate, error) {
	rates, err := monetary.DecodeExchangeRates(bytes.NewReader(data))
	if err != nil {
		return monetary.ExchangeRate{}, err
	}
	for _, r := range rates {
		if r.Base().Code() == from && r.Quote().Code() == to {
			return r, nil
		}
	}
	return monetary.ExchangeRate{}, fmt.Errorf("no %s/%s rate in %d rates", from, to, len(rates))
}

// rateAt reads the value at path in a JSON document as the from/to rate.
func rateAt(data []byte, path, from, to string) (monetary.ExchangeRate, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return monetary.ExchangeRate{}, fmt.Errorf("cannot decode rates: %w", err)
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return monetary.ExchangeRate{}, fmt.Errorf("cannot evaluate %s: %w", path, err)
	}
	var value decimal.Decimal
	switch v := v.(type) {
	case json.Number:
		value, err = decimal.NewFromString(v.String())
	case string:
		value, err = decimal.NewFromString(v)
	default:
		err = fmt.Errorf("%s is a %T, not a rate", path, v)
	}
	if err != nil {
		return monetary.ExchangeRate{}, err
	}
	return monetary.NewExchangeRateFromCode(from, to, value)
}
