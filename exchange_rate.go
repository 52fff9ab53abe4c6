package monetary

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ExchangeRate converts money from a base currency into a quote currency.
// The rate is the amount of quote currency for one unit of base currency:
// EUR/USD 1.1 means 1 EUR buys 1.1 USD.
type ExchangeRate struct {
	base  Currency
	quote Currency
	value decimal.Decimal
}

// NewExchangeRate returns the rate of base in quote. The rate must be
// strictly positive. base and quote may be the same currency, with any rate.
func NewExchangeRate[T Number](base, quote Currency, rate T) (ExchangeRate, error) {
	v := newDecimal(rate)
	if !v.IsPositive() {
		return ExchangeRate{}, fmt.Errorf("%w: exchange rate %s/%s must be positive, got %v", ErrInvalidArgument, base, quote, v)
	}
	return ExchangeRate{base: base, quote: quote, value: v}, nil
}

// NewExchangeRateFromCode is like NewExchangeRate with ISO currency codes.
func NewExchangeRateFromCode[T Number](base, quote string, rate T) (ExchangeRate, error) {
	b, err := FromCode(base)
	if err != nil {
		return ExchangeRate{}, err
	}
	q, err := FromCode(quote)
	if err != nil {
		return ExchangeRate{}, err
	}
	return NewExchangeRate(b, q, rate)
}

// ParseExchangeRate reads a rate written as "EUR/USD 1.2591". The rate uses
// a decimal point. "EUR/USD=1.2591" and "EUR/USD = 1.2591" are accepted too.
func ParseExchangeRate(s string) (ExchangeRate, error) {
	pair, value, ok := strings.Cut(strings.TrimSpace(s), "=")
	if !ok {
		pair, value, ok = strings.Cut(strings.TrimSpace(s), " ")
	}
	base, quote, okPair := strings.Cut(strings.TrimSpace(pair), "/")
	if !ok || !okPair {
		return ExchangeRate{}, fmt.Errorf("%w: cannot parse exchange rate %q: want 'BASE/QUOTE rate'", ErrInvalidArgument, s)
	}
	v, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("%w: cannot parse exchange rate %q: %v", ErrInvalidArgument, s, err)
	}
	r, err := NewExchangeRateFromCode(base, quote, v)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("cannot parse exchange rate %q: %w", s, err)
	}
	return r, nil
}

func (r ExchangeRate) Base() Currency         { return r.base }
func (r ExchangeRate) Quote() Currency        { return r.quote }
func (r ExchangeRate) Value() decimal.Decimal { return r.value }

// Equal reports whether both rates have the same currencies and numerically
// equal values.
func (r ExchangeRate) Equal(s ExchangeRate) bool {
	return r.base.Equal(s.base) && r.quote.Equal(s.quote) && r.value.Equal(s.value)
}

// String returns the rate as "EUR/USD 1.2591".
func (r ExchangeRate) String() string {
	return fmt.Sprintf("%s/%s %s", r.base.code, r.quote.code, r.value.String())
}

// Convert returns m in the quote currency. m must be in the base currency,
// otherwise it fails with ErrCurrencyMismatch. The result is not rounded.
func (r ExchangeRate) Convert(m Money) (Money, error) {
	if err := checkSameCurrency(m.currency, r.base); err != nil {
		return Money{}, fmt.Errorf("cannot convert %v with %v: %w", m, r, err)
	}
	return Money{amount: m.amount.Mul(r.value), currency: r.quote}, nil
}
