package monetary

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package. Use errors.Is to test for them,
// the returned error usually wraps one of these with more context.
var (
	// ErrUnknownCurrency is returned when a code, a numeric code, a region or
	// a locale does not resolve to a registered currency.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrUnknownCulture is returned when a locale has no formatting conventions.
	ErrUnknownCulture = errors.New("unknown culture")
	// ErrCurrencyMismatch is returned when two amounts in different currencies
	// are combined, or when a conversion gets money in the wrong currency.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrInvalidArgument is returned for incompatible comparison targets,
	// non-positive exchange rates or malformed format specifiers.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDivideByZero is returned when money is divided by a zero scalar.
	ErrDivideByZero = errors.New("division by zero")
	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = errors.New("nil argument")
)

// UnknownCurrencyError reports the lookup key that failed to resolve.
type UnknownCurrencyError struct {
	Key string // code, numeric code, region or locale
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency %q", e.Key)
}

func (e *UnknownCurrencyError) Unwrap() error { return ErrUnknownCurrency }

// CurrencyMismatchError reports the two currency codes that could not be combined.
type CurrencyMismatchError struct {
	Left, Right string
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch %s != %s", e.Left, e.Right)
}

func (e *CurrencyMismatchError) Unwrap() error { return ErrCurrencyMismatch }

func unknownCurrency(key string) error { return &UnknownCurrencyError{Key: key} }

// checkSameCurrency returns a *CurrencyMismatchError if a and b differ.
func checkSameCurrency(a, b Currency) error {
	if a.code != b.code {
		return &CurrencyMismatchError{Left: a.code, Right: b.code}
	}
	return nil
}
