package monetary

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// String formats m in the invariant culture, rounded half away from zero to
// the currency's decimal digits, e.g. "€10.00".
func (m Money) String() string { return InvariantCulture.Format(m) }

// Format implements fmt.Formatter. %v and %s print m like String; a
// precision overrides the currency's decimal digits: fmt.Sprintf("%.1v",
// Euro(10.99)) is "€11.0". Width and the '-' flag pad the result.
func (m Money) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
	default:
		fmt.Fprintf(f, "%%!%c(monetary.Money=%s)", verb, m.String())
		return
	}
	digits := m.currency.roundingDigits()
	if p, ok := f.Precision(); ok {
		digits = int32(p)
	}
	s := InvariantCulture.format(m, digits, true)
	if w, ok := f.Width(); ok {
		if pad := w - len([]rune(s)); pad > 0 {
			if f.Flag('-') {
				s += strings.Repeat(" ", pad)
			} else {
				s = strings.Repeat(" ", pad) + s
			}
		}
	}
	io.WriteString(f, s)
}

// FormatContext formats m with the culture carried by ctx.
func FormatContext(ctx context.Context, m Money) string {
	return CultureFrom(ctx).Format(m)
}

// Format formats m with the culture's separators and symbol placement,
// rounded half away from zero to the currency's decimal digits.
//
//	nl, _ := ParseCulture("nl-NL")
//	nl.Format(Yen(10.9999)) // "¥ 11"
func (c Culture) Format(m Money) string {
	return c.format(m, m.currency.roundingDigits(), true)
}

// FormatSpec formats m according to a format specifier:
//
//	"" or "C"  currency symbol and the currency's decimal digits
//	"Cn"       currency symbol and n decimal digits, e.g. "C1"
//	"N"        no symbol, the currency's decimal digits
//	"Nn"       no symbol, n decimal digits
//
// Unknown specifiers fail with ErrInvalidArgument.
func (c Culture) FormatSpec(m Money, spec string) (string, error) {
	if spec == "" {
		return c.Format(m), nil
	}
	var symbol bool
	switch spec[0] {
	case 'C', 'c':
		symbol = true
	case 'N', 'n':
		symbol = false
	default:
		return "", fmt.Errorf("%w: unknown format specifier %q", ErrInvalidArgument, spec)
	}
	digits := m.currency.roundingDigits()
	if len(spec) > 1 {
		n, err := strconv.Atoi(spec[1:])
		if err != nil || n < 0 || n > 28 {
			return "", fmt.Errorf("%w: invalid precision in format specifier %q", ErrInvalidArgument, spec)
		}
		digits = int32(n)
	}
	return c.format(m, digits, symbol), nil
}

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// format rounds m to digits and lays it out with the culture's templates.
func (c Culture) format(m Money, digits int32, symbol bool) string {
	if digits < 0 {
		digits = 0
	}
	rounded := m.amount.Round(digits)
	template, grapheme := c.positive, ""
	if rounded.IsNegative() {
		template = c.negative
	}
	if symbol {
		grapheme = m.currency.symbol
	} else {
		template = withoutSymbol(template)
	}

	minor := rounded.Abs().Shift(digits)
	if minor.LessThanOrEqual(maxInt64) {
		f := money.NewFormatter(int(digits), c.decimal, c.group, grapheme, template)
		return f.Format(minor.IntPart())
	}
	return formatLarge(minor.String(), int(digits), c.decimal, c.group, grapheme, template)
}

// withoutSymbol removes the symbol placeholder and the space around it.
func withoutSymbol(template string) string {
	template = strings.Replace(template, "$ ", "", 1)
	template = strings.Replace(template, " $", "", 1)
	return strings.Replace(template, "$", "", 1)
}

// formatLarge lays out amounts that do not fit go-money's int64 minor units,
// with the same rules as money.Formatter.
func formatLarge(digits string, fraction int, decimalSep, group, grapheme, template string) string {
	if len(digits) <= fraction {
		digits = strings.Repeat("0", fraction-len(digits)+1) + digits
	}
	intPart, fracPart := digits[:len(digits)-fraction], digits[len(digits)-fraction:]
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && group != "" && (len(intPart)-i)%3 == 0 {
			b.WriteString(group)
		}
		b.WriteRune(r)
	}
	if fraction > 0 {
		b.WriteString(decimalSep)
		b.WriteString(fracPart)
	}
	s := strings.Replace(template, "1", b.String(), 1)
	return strings.Replace(s, "$", grapheme, 1)
}
