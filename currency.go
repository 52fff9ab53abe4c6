package monetary

// NoMinorUnit is the DecimalDigits of currencies without subdivision, like
// the precious metals or the special drawing rights. Amounts in such
// currencies are rounded to whole units.
const NoMinorUnit = -1

// Currency describes an ISO 4217 currency.
//
// Currencies are obtained from the registry with FromCode, FromNumericCode,
// FromRegion or FromCulture. Two currencies are equal when their codes are
// equal; the zero value is "no currency".
type Currency struct {
	code          string
	numericCode   string
	decimalDigits int
	englishName   string
	symbol        string
}

// Code returns the three-letter ISO 4217 code, e.g. "EUR".
func (c Currency) Code() string { return c.code }

// NumericCode returns the three-digit ISO 4217 numeric code, e.g. "978", or
// "" for codes without one.
func (c Currency) NumericCode() string { return c.numericCode }

// DecimalDigits returns the number of minor unit digits, or NoMinorUnit.
func (c Currency) DecimalDigits() int { return c.decimalDigits }

// HasMinorUnit reports whether the currency is subdivided.
func (c Currency) HasMinorUnit() bool { return c.decimalDigits != NoMinorUnit }

func (c Currency) EnglishName() string { return c.englishName }
func (c Currency) Symbol() string      { return c.symbol }
func (c Currency) IsZero() bool        { return c.code == "" }
func (c Currency) Equal(d Currency) bool {
	return c.code == d.code
}

// String returns the currency code.
func (c Currency) String() string { return c.code }

// roundingDigits returns the number of digits used to round amounts in this currency.
func (c Currency) roundingDigits() int32 {
	if c.decimalDigits == NoMinorUnit {
		return 0
	}
	return int32(c.decimalDigits)
}
