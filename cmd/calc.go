package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/monetary"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type calcCmd struct {
	exact bool
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "add, subtract, multiply or divide an amount" }
func (*calcCmd) Usage() string {
	return `mny calc [-exact] <amount> <op> <operand>

  Computes a single operation on an amount:

    <amount> + <amount>   addition, both amounts in the same currency
    <amount> - <amount>   subtraction
    <amount> x <number>   multiplication by a scalar ('*' works when quoted)
    <amount> / <number>   division by a scalar

  The right amount takes the left amount's currency when it has no code.
  The result is formatted in the current culture, or printed with all its
  digits with -exact.
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.exact, "exact", false, "Print the exact result, without rounding.")
}

func (c *calcCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "calc expects <amount> <op> <operand>")
		return subcommands.ExitUsageError
	}
	left, err := parseAmount(f.Arg(0), func() (monetary.Currency, error) { return defaultCurrency(ctx) })
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	r, err := calculate(left, f.Arg(1), f.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.exact {
		fmt.Println(r.Amount().String(), r.Currency().Code())
	} else {
		fmt.Println(monetary.FormatContext(ctx, r))
	}
	return subcommands.ExitSuccess
}

// calculate applies op to left and operand.
func calculate(left monetary.Money, op, operand string) (monetary.Money, error) {
	switch op {
	case "+", "-":
		right, err := parseAmount(operand, fixed(left.Currency()))
		if err != nil {
			return monetary.Money{}, err
		}
		if op == "+" {
			return monetary.Add(left, right)
		}
		return monetary.Subtract(left, right)
	case "*", "x", "/":
		s, err := decimal.NewFromString(operand)
		if err != nil {
			return monetary.Money{}, fmt.Errorf("%w: %q is not a number", monetary.ErrInvalidArgument, operand)
		}
		if op == "/" {
			return left.Divide(s)
		}
		return left.Multiply(s), nil
	}
	return monetary.Money{}, fmt.Errorf("%w: unknown operator %q", monetary.ErrInvalidArgument, op)
}
