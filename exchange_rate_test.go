package monetary

import (
	"errors"
	"testing"
)

func TestExchangeRate_Convert(t *testing.T) {
	rate, err := NewExchangeRateFromCode("EUR", "USD", 1.1)
	if err != nil {
		t.Fatalf("NewExchangeRateFromCode unexpected error: %v", err)
	}
	got, err := rate.Convert(EUR(10.00))
	if err != nil {
		t.Fatalf("Convert unexpected error: %v", err)
	}
	if !got.Equal(USD(11.00)) {
		t.Errorf("Convert(10 EUR) = %v, want 11.00 USD", got)
	}

	// no intermediate rounding.
	got, _ = rate.Convert(EUR(0.015))
	if !got.Amount().Equal(dec("0.0165")) {
		t.Errorf("Convert(0.015 EUR) = %s, want 0.0165", got.Amount())
	}

	if _, err := rate.Convert(USD(10)); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Convert(USD) error = %v, want ErrCurrencyMismatch", err)
	}
}

func TestExchangeRate_NoImplicitInversion(t *testing.T) {
	rate, _ := NewExchangeRate(MustFromCode("USD"), MustFromCode("EUR"), dec("0.9"))
	if _, err := rate.Convert(EUR(10)); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("converting quote currency must fail, got %v", err)
	}
}

func TestExchangeRate_Identity(t *testing.T) {
	eur := MustFromCode("EUR")
	rate, err := NewExchangeRate(eur, eur, 1)
	if err != nil {
		t.Fatalf("identity rate unexpected error: %v", err)
	}
	got, _ := rate.Convert(EUR(42))
	if !got.Equal(EUR(42)) {
		t.Errorf("identity Convert = %v, want 42 EUR", got)
	}
}

func TestNewExchangeRate_Invalid(t *testing.T) {
	eur, usd := MustFromCode("EUR"), MustFromCode("USD")
	for _, v := range []float64{0, -1.1} {
		if _, err := NewExchangeRate(eur, usd, v); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewExchangeRate(%v) error = %v, want ErrInvalidArgument", v, err)
		}
	}
	if _, err := NewExchangeRateFromCode("EUR", "XYZ", 1); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("NewExchangeRateFromCode(XYZ) error = %v, want ErrUnknownCurrency", err)
	}
	if _, err := NewExchangeRateFromCode("XYZ", "EUR", 1); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("NewExchangeRateFromCode(XYZ) error = %v, want ErrUnknownCurrency", err)
	}
}

func TestParseExchangeRate(t *testing.T) {
	want, _ := NewExchangeRateFromCode("EUR", "USD", dec("1.2591"))
	for _, s := range []string{"EUR/USD 1.2591", "EUR/USD=1.2591", " EUR/USD 1.2591 ", "EUR/USD = 1.2591", "EUR/USD= 1.2591"} {
		got, err := ParseExchangeRate(s)
		if err != nil {
			t.Errorf("ParseExchangeRate(%q) unexpected error: %v", s, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseExchangeRate(%q) = %v, want %v", s, got, want)
		}
	}
	if got := want.String(); got != "EUR/USD 1.2591" {
		t.Errorf("String() = %q", got)
	}
	if got, _ := ParseExchangeRate(want.String()); !got.Equal(want) {
		t.Errorf("String and Parse do not round-trip: %v", got)
	}

	for _, s := range []string{"", "EURUSD 1.1", "EUR/USD", "EUR/USD abc", "EUR/USD -1"} {
		if _, err := ParseExchangeRate(s); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseExchangeRate(%q) error = %v, want ErrInvalidArgument", s, err)
		}
	}
	if _, err := ParseExchangeRate("EUR/XYZ 1"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("ParseExchangeRate(EUR/XYZ) error = %v, want ErrUnknownCurrency", err)
	}
}

func TestExchangeRate_Accessors(t *testing.T) {
	rate, _ := NewExchangeRateFromCode("GBP", "JPY", 190)
	if rate.Base().Code() != "GBP" || rate.Quote().Code() != "JPY" || !rate.Value().Equal(dec("190")) {
		t.Errorf("accessors = %v %v %v", rate.Base(), rate.Quote(), rate.Value())
	}
	rebuilt, err := NewExchangeRate(rate.Base(), rate.Quote(), rate.Value())
	if err != nil || !rebuilt.Equal(rate) {
		t.Errorf("accessors are not enough to rebuild the rate: %v, %v", rebuilt, err)
	}
}
