package monetary

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount in a given currency.
//
// The amount is expressed in major units: ten euros is 10.00 EUR, not 1000.
// Money values are immutable, every operation returns a new value. Operations
// combining two amounts require both to be in the same currency.
//
// The zero value is 0 in no currency.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// New returns amount in currency c.
//
// Float amounts are converted to the shortest decimal that represents them,
// New(0.1, c) is exactly 0.1. NaN and infinite floats panic.
func New[T Number](amount T, c Currency) Money {
	return Money{amount: newDecimal(amount), currency: c}
}

// NewFromCode returns amount in the currency with the given ISO code.
func NewFromCode[T Number](amount T, code string) (Money, error) {
	c, err := FromCode(code)
	if err != nil {
		return Money{}, err
	}
	return New(amount, c), nil
}

// NewInCulture returns amount in the default currency of a culture.
func NewInCulture[T Number](amount T, culture Culture) (Money, error) {
	c, err := culture.Currency()
	if err != nil {
		return Money{}, err
	}
	return New(amount, c), nil
}

// FromContext returns amount in the default currency of the culture carried
// by ctx (see WithCulture).
func FromContext[T Number](ctx context.Context, amount T) (Money, error) {
	return NewInCulture(amount, CultureFrom(ctx))
}

var (
	euro          = MustFromCode("EUR")
	usDollar      = MustFromCode("USD")
	yen           = MustFromCode("JPY")
	poundSterling = MustFromCode("GBP")
)

// Euro returns amount in EUR.
func Euro[T Number](amount T) Money { return New(amount, euro) }

// USDollar returns amount in USD.
func USDollar[T Number](amount T) Money { return New(amount, usDollar) }

// Yen returns amount in JPY.
func Yen[T Number](amount T) Money { return New(amount, yen) }

// PoundSterling returns amount in GBP.
func PoundSterling[T Number](amount T) Money { return New(amount, poundSterling) }

// Parse reads money written as "EUR 10.50" or "10.50 EUR". The amount uses a
// decimal point and no grouping.
func Parse(s string) (Money, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Money{}, fmt.Errorf("%w: cannot parse money %q: want '<code> <amount>' or '<amount> <code>'", ErrInvalidArgument, s)
	}
	code, amount := fields[0], fields[1]
	if _, err := decimal.NewFromString(code); err == nil {
		code, amount = amount, code
	}
	c, err := FromCode(code)
	if err != nil {
		return Money{}, fmt.Errorf("cannot parse money %q: %w", s, err)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: cannot parse money %q: %v", ErrInvalidArgument, s, err)
	}
	return Money{amount: d, currency: c}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() Currency      { return m.currency }
func (m Money) IsZero() bool            { return m.amount.IsZero() }
func (m Money) IsPositive() bool        { return m.amount.IsPositive() }
func (m Money) IsNegative() bool        { return m.amount.IsNegative() }

// Sign returns -1, 0 or +1.
func (m Money) Sign() int { return m.amount.Sign() }

// Equal reports whether m and n have the same currency and numerically
// equal amounts: 10 EUR equals 10.00 EUR.
func (m Money) Equal(n Money) bool {
	return m.currency.code == n.currency.code && m.amount.Equal(n.amount)
}

// Equals is like Equal for any value. It is false for anything that is not
// Money or *Money, and never fails.
func (m Money) Equals(other any) bool {
	switch n := other.(type) {
	case Money:
		return m.Equal(n)
	case *Money:
		return n != nil && m.Equal(*n)
	}
	return false
}

// Compare returns the sign of m - n. It fails with ErrCurrencyMismatch if
// the currencies differ.
func (m Money) Compare(n Money) (int, error) {
	if err := checkSameCurrency(m.currency, n.currency); err != nil {
		return 0, err
	}
	return m.amount.Cmp(n.amount), nil
}

// CompareTo is like Compare for any value. A nil target fails with
// ErrNilArgument, any other value that is not Money fails with
// ErrInvalidArgument.
func (m Money) CompareTo(other any) (int, error) {
	switch n := other.(type) {
	case nil:
		return 0, fmt.Errorf("%w: cannot compare %v to nil", ErrNilArgument, m)
	case Money:
		return m.Compare(n)
	case *Money:
		if n == nil {
			return 0, fmt.Errorf("%w: cannot compare %v to nil", ErrNilArgument, m)
		}
		return m.Compare(*n)
	}
	return 0, fmt.Errorf("%w: cannot compare %v to %T", ErrInvalidArgument, m, other)
}

func (m Money) LessThan(n Money) (bool, error) {
	c, err := m.Compare(n)
	return c < 0, err
}

func (m Money) LessThanOrEqual(n Money) (bool, error) {
	c, err := m.Compare(n)
	return c <= 0 && err == nil, err
}

func (m Money) GreaterThan(n Money) (bool, error) {
	c, err := m.Compare(n)
	return c > 0, err
}

func (m Money) GreaterThanOrEqual(n Money) (bool, error) {
	c, err := m.Compare(n)
	return c >= 0 && err == nil, err
}

// Hash returns a hash of the amount and currency code. Equal values have the
// same hash, whatever the number of trailing zeros.
func (m Money) Hash() uint64 {
	h := fnv.New64a()
	// String drops trailing zeros: 10.00 and 10 write the same bytes.
	h.Write([]byte(m.amount.String()))
	h.Write([]byte{0})
	h.Write([]byte(m.currency.code))
	return h.Sum64()
}

// Add returns m + n. It fails with ErrCurrencyMismatch if the currencies differ.
func (m Money) Add(n Money) (Money, error) {
	if err := checkSameCurrency(m.currency, n.currency); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(n.amount), currency: m.currency}, nil
}

// Sub returns m - n. It fails with ErrCurrencyMismatch if the currencies differ.
func (m Money) Sub(n Money) (Money, error) {
	if err := checkSameCurrency(m.currency, n.currency); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Sub(n.amount), currency: m.currency}, nil
}

// Add returns a + b.
func Add(a, b Money) (Money, error) { return a.Add(b) }

// Subtract returns a - b.
func Subtract(a, b Money) (Money, error) { return a.Sub(b) }

// Multiply returns m * s, in m's currency.
func (m Money) Multiply(s decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(s), currency: m.currency}
}

// Divide returns m / s, in m's currency. A quotient that does not terminate
// is rounded to decimal.DivisionPrecision fractional digits, or to more when
// m itself has more, so that (m * s) / s is always m.
// It fails with ErrDivideByZero if s is zero.
func (m Money) Divide(s decimal.Decimal) (Money, error) {
	if s.IsZero() {
		return Money{}, fmt.Errorf("%w: %v / 0", ErrDivideByZero, m)
	}
	return Money{amount: m.amount.DivRound(s, divisionDigits(m.amount, s)), currency: m.currency}, nil
}

// divisionDigits is the number of fractional digits kept by a / s.
func divisionDigits(a, s decimal.Decimal) int32 {
	return max(int32(decimal.DivisionPrecision), -a.Exponent()+max(0, s.Exponent()))
}

// Mul returns m * s for any scalar. There is no Money * Money.
func Mul[T Number](m Money, s T) Money { return m.Multiply(newDecimal(s)) }

// Div returns m / s for any scalar.
func Div[T Number](m Money, s T) (Money, error) { return m.Divide(newDecimal(s)) }

func (m Money) Neg() Money { return Money{amount: m.amount.Neg(), currency: m.currency} }
func (m Money) Abs() Money { return Money{amount: m.amount.Abs(), currency: m.currency} }

// Round rounds m half away from zero to the currency's decimal digits.
func (m Money) Round() Money {
	return m.RoundTo(m.currency.roundingDigits())
}

// RoundTo rounds m half away from zero to the given number of fractional digits.
func (m Money) RoundTo(digits int32) Money {
	return Money{amount: m.amount.Round(digits), currency: m.currency}
}

// Allocate splits m according to ratios without losing a minor unit: the
// parts always add up to m. Leftover minor units go to the first parts.
//
//	Allocate(Euro(100), 1, 1, 1) // 33.34 EUR, 33.33 EUR, 33.33 EUR
func (m Money) Allocate(ratios ...int) ([]Money, error) {
	if len(ratios) == 0 {
		return nil, fmt.Errorf("%w: no ratios", ErrInvalidArgument)
	}
	total := 0
	for _, r := range ratios {
		if r < 0 {
			return nil, fmt.Errorf("%w: negative ratio %d", ErrInvalidArgument, r)
		}
		total += r
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: ratios sum to zero", ErrInvalidArgument)
	}

	digits := m.currency.roundingDigits()
	sum := decimal.NewFromInt(int64(total))
	parts := make([]Money, len(ratios))
	remainder := m.amount
	for i, r := range ratios {
		share := m.amount.Mul(decimal.NewFromInt(int64(r))).Div(sum).Truncate(digits)
		parts[i] = Money{amount: share, currency: m.currency}
		remainder = remainder.Sub(share)
	}

	// remainder is now a few minor units, hand them out one by one.
	unit := decimal.New(int64(remainder.Sign()), -digits)
	for i := 0; remainder.Abs().GreaterThanOrEqual(unit.Abs()) && !unit.IsZero(); i = (i + 1) % len(ratios) {
		if ratios[i] == 0 {
			continue
		}
		parts[i].amount = parts[i].amount.Add(unit)
		remainder = remainder.Sub(unit)
	}
	// sub-unit dust, when m has more digits than its currency.
	if !remainder.IsZero() {
		for i, r := range ratios {
			if r != 0 {
				parts[i].amount = parts[i].amount.Add(remainder)
				break
			}
		}
	}
	return parts, nil
}

// Float64 returns the amount as the nearest float64. The currency is dropped.
func (m Money) Float64() float64 { return m.amount.InexactFloat64() }

// Float32 returns the amount as the nearest float32. The currency is dropped.
func (m Money) Float32() float32 { return float32(m.amount.InexactFloat64()) }

// Int64 returns the integer part of the amount, truncated toward zero.
// The currency is dropped.
func (m Money) Int64() int64 { return m.amount.IntPart() }

func (m Money) Int32() int32 { return int32(m.amount.IntPart()) }
func (m Money) Int16() int16 { return int16(m.amount.IntPart()) }
func (m Money) Int() int     { return int(m.amount.IntPart()) }

// Uint8 returns the integer part of the amount as a byte. Like a conversion,
// it wraps when the amount does not fit.
func (m Money) Uint8() uint8 { return uint8(m.amount.IntPart()) }
