package renderer

import (
	"github.com/etnz/monetary"
)

// Conversion is an amount converted through an exchange rate.
type Conversion struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
	Rate  string `json:"rate"`
	// From and To are formatted in a culture, hence rounded to their
	// currency's digits.
	From string `json:"from"`
	To   string `json:"to"`
	// Exact is the converted amount before any rounding.
	Exact string `json:"exact"`
}

// NewConversion converts m with rate and formats both sides in culture.
func NewConversion(rate monetary.ExchangeRate, m monetary.Money, culture monetary.Culture) (*Conversion, error) {
	to, err := rate.Convert(m)
	if err != nil {
		return nil, err
	}
	return &Conversion{
		Base:  rate.Base().Code(),
		Quote: rate.Quote().Code(),
		Rate:  rate.Value().String(),
		From:  culture.Format(m),
		To:    culture.Format(to),
		Exact: to.Amount().String() + " " + to.Currency().Code(),
	}, nil
}
