package renderer

import (
	"iter"
	"strconv"
	"strings"

	"github.com/etnz/monetary"
	"github.com/shopspring/decimal"
)

// CurrencyList is a listing of currencies, with a sample amount formatted in
// a culture for each of them.
//
// All fields are already formatted so the templates need no functions.
type CurrencyList struct {
	// Filter that selected the currencies, if any.
	Filter string `json:"filter,omitempty"`
	// Culture used for the samples. Empty for the invariant culture.
	Culture    string        `json:"culture,omitempty"`
	Currencies []CurrencyRow `json:"currencies"`
}

// CurrencyRow is a single currency in a CurrencyList.
type CurrencyRow struct {
	Code    string `json:"code"`
	Numeric string `json:"numeric"`
	// Digits is "-" for currencies without a minor unit.
	Digits string `json:"digits"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Sample string `json:"sample"`
}

// sampleAmount is formatted in every row of a listing.
var sampleAmount = decimal.RequireFromString("1234.56")

// NewCurrencyList builds a listing of currencies whose code or English name
// contains filter, case-insensitively. An empty filter selects them all.
func NewCurrencyList(currencies iter.Seq[monetary.Currency], filter string, culture monetary.Culture) *CurrencyList {
	l := &CurrencyList{
		Filter:     filter,
		Culture:    culture.Name(),
		Currencies: []CurrencyRow{},
	}
	needle := strings.ToLower(filter)
	for c := range currencies {
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.Code()), needle) &&
			!strings.Contains(strings.ToLower(c.EnglishName()), needle) {
			continue
		}
		digits := "-"
		if c.HasMinorUnit() {
			digits = strconv.Itoa(c.DecimalDigits())
		}
		l.Currencies = append(l.Currencies, CurrencyRow{
			Code:    c.Code(),
			Numeric: c.NumericCode(),
			Digits:  digits,
			Symbol:  c.Symbol(),
			Name:    c.EnglishName(),
			Sample:  culture.Format(monetary.New(sampleAmount, c)),
		})
	}
	return l
}
