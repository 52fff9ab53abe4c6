package cmd

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/etnz/monetary"
	"github.com/shopspring/decimal"
)

// parseAmount reads an amount from the command line. It can be a bare
// number in the def currency, or carry its own code: "EUR 10", "10 EUR",
// "EUR10" and "10EUR" are all accepted.
func parseAmount(s string, def func() (monetary.Currency, error)) (monetary.Money, error) {
	s = strings.TrimSpace(s)
	if d, err := decimal.NewFromString(s); err == nil {
		c, err := def()
		if err != nil {
			return monetary.Money{}, fmt.Errorf("amount %q: %w", s, err)
		}
		return monetary.New(d, c), nil
	}

	i := strings.IndexFunc(s, unicode.IsLetter)
	switch {
	case i < 0:
		return monetary.Money{}, fmt.Errorf("%w: invalid amount %q", monetary.ErrInvalidArgument, s)
	case i == 0:
		j := strings.LastIndexFunc(s, unicode.IsLetter)
		return monetary.Parse(s[:j+1] + " " + s[j+1:])
	default:
		return monetary.Parse(s[:i] + " " + s[i:])
	}
}

// fixed returns a parseAmount default that is always c.
func fixed(c monetary.Currency) func() (monetary.Currency, error) {
	return func() (monetary.Currency, error) { return c, nil }
}
