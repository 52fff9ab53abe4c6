package monetary

import "github.com/shopspring/decimal"

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return New(v, MustFromCode("EUR")) }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return New(v, MustFromCode("USD")) }

// JPY is a helper for test to create yen money from const
func JPY(v float64) Money { return New(v, MustFromCode("JPY")) }

// dec is a helper for test to create exact decimals from strings.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// culture is a helper for test to get a built-in culture.
func culture(name string) Culture {
	c, err := ParseCulture(name)
	if err != nil {
		panic(err)
	}
	return c
}
