package monetary

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// registry is the read-only catalog of currencies.
type registry struct {
	byCode    map[string]Currency
	byNumeric map[string]Currency
	sorted    []Currency
}

// currencies builds the registry on first use. It is never mutated afterwards
// so lookups need no locking.
var currencies = sync.OnceValue(func() *registry {
	r := &registry{
		byCode:    make(map[string]Currency, len(iso4217)),
		byNumeric: make(map[string]Currency, len(iso4217)),
		sorted:    slices.Clone(iso4217),
	}
	slices.SortFunc(r.sorted, func(a, b Currency) int { return strings.Compare(a.code, b.code) })
	for _, c := range r.sorted {
		if _, exists := r.byCode[c.code]; exists {
			panic(fmt.Sprintf("currency %q is registered twice", c.code))
		}
		r.byCode[c.code] = c
		// historical codes may share a numeric code with their successor, first wins.
		if _, exists := r.byNumeric[c.numericCode]; c.numericCode != "" && !exists {
			r.byNumeric[c.numericCode] = c
		}
	}
	return r
})

// FromCode returns the currency with the given ISO 4217 code.
// The match is exact and case-sensitive: "eur" is not a known code.
func FromCode(code string) (Currency, error) {
	c, ok := currencies().byCode[code]
	if !ok {
		return Currency{}, unknownCurrency(code)
	}
	return c, nil
}

// MustFromCode is like FromCode but panics if the code is unknown.
// It simplifies the initialization of variables with well known codes.
func MustFromCode(code string) Currency {
	c, err := FromCode(code)
	if err != nil {
		panic(err)
	}
	return c
}

// FromNumericCode returns the currency with the given ISO 4217 numeric code, e.g. "978".
func FromNumericCode(code string) (Currency, error) {
	c, ok := currencies().byNumeric[code]
	if !ok {
		return Currency{}, unknownCurrency(code)
	}
	return c, nil
}

// IsKnown reports whether code is a registered currency code.
func IsKnown(code string) bool {
	_, ok := currencies().byCode[code]
	return ok
}

// Currencies iterates over all registered currencies, in code order.
func Currencies() iter.Seq[Currency] {
	return func(yield func(Currency) bool) {
		for _, c := range currencies().sorted {
			if !yield(c) {
				return
			}
		}
	}
}

// FromRegion returns the currency in use in a region, identified by its
// ISO 3166 code ("NL") or its UN M.49 code ("528").
func FromRegion(region string) (Currency, error) {
	r, err := language.ParseRegion(region)
	if err != nil {
		return Currency{}, fmt.Errorf("%w: %v", unknownCurrency(region), err)
	}
	return fromRegion(region, r)
}

// FromCulture returns the currency conventionally used in a locale.
//
// The locale is a BCP 47 identifier like "nl-NL" or "fr-BE". A bare region
// like "NL" is also accepted. When the locale has no explicit region, the
// most likely one is used ("nl" is Dutch as spoken in the Netherlands).
func FromCulture(locale string) (Currency, error) {
	if isRegionCode(locale) {
		return FromRegion(locale)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Currency{}, fmt.Errorf("%w: %v", unknownCurrency(locale), err)
	}
	r, conf := tag.Region()
	if conf == language.No {
		return Currency{}, unknownCurrency(locale)
	}
	return fromRegion(locale, r)
}

func fromRegion(key string, r language.Region) (Currency, error) {
	unit, ok := currency.FromRegion(r)
	if !ok {
		return Currency{}, unknownCurrency(key)
	}
	code := unit.String()
	if next, ok := successors[code]; ok {
		code = next
	}
	return FromCode(code)
}

// successors maps withdrawn codes that the region data may still report to
// the code that replaced them.
var successors = map[string]string{
	"EEK": "EUR",
	"HRK": "EUR",
	"LTL": "EUR",
	"LVL": "EUR",
	"MRO": "MRU",
	"SLL": "SLE",
	"VEF": "VES",
	"ZWL": "ZWG",
}

// isRegionCode reports whether s looks like "NL" or "528" rather than a language tag.
func isRegionCode(s string) bool {
	switch len(s) {
	case 2:
		return isUpper(s[0]) && isUpper(s[1])
	case 3:
		return isDigit(s[0]) && isDigit(s[1]) && isDigit(s[2])
	}
	return false
}

func isUpper(b byte) bool { return 'A' <= b && b <= 'Z' }
func isDigit(b byte) bool { return '0' <= b && b <= '9' }
