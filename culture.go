package monetary

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Culture holds the number formatting conventions of a locale: separators
// and where the currency symbol goes. Symbol placement is a property of the
// locale, not of the currency: euros are "€11.00" in en-US and "11,00 €" in
// fr-BE.
//
// Templates use the go-money syntax: "$" stands for the currency symbol and
// "1" for the formatted number, so "$ -1" reads symbol, space, minus sign,
// number.
type Culture struct {
	name     string
	decimal  string
	group    string
	positive string
	negative string
}

// InvariantCulture formats with a decimal point, comma grouping and the
// symbol in front. Money.String uses it.
var InvariantCulture = Culture{name: "", decimal: ".", group: ",", positive: "$1", negative: "-$1"}

// NewCulture creates custom formatting conventions.
// name is the BCP 47 tag used to resolve the culture's own currency, it can
// be empty.
func NewCulture(name, decimal, group, positive, negative string) (Culture, error) {
	if !strings.Contains(positive, "1") || !strings.Contains(negative, "1") {
		return Culture{}, fmt.Errorf("%w: templates %q and %q must contain the number placeholder '1'", ErrInvalidArgument, positive, negative)
	}
	if decimal == "" {
		return Culture{}, fmt.Errorf("%w: empty decimal separator", ErrInvalidArgument)
	}
	return Culture{name: name, decimal: decimal, group: group, positive: positive, negative: negative}, nil
}

// cultures lists the built-in conventions. Separators are plain ASCII
// spaces where CLDR uses non-breaking ones.
var cultures = []Culture{
	{"en-US", ".", ",", "$1", "-$1"},
	{"en-GB", ".", ",", "$1", "-$1"},
	{"en-IE", ".", ",", "$1", "-$1"},
	{"en-CA", ".", ",", "$1", "-$1"},
	{"en-AU", ".", ",", "$1", "-$1"},
	{"en-NZ", ".", ",", "$1", "-$1"},
	{"nl-NL", ",", ".", "$ 1", "$ -1"},
	{"nl-BE", ",", ".", "$ 1", "$ -1"},
	{"fr-FR", ",", " ", "1 $", "-1 $"},
	{"fr-BE", ",", " ", "1 $", "-1 $"},
	{"fr-CA", ",", " ", "1 $", "-1 $"},
	{"fr-CH", ",", " ", "1 $", "-1 $"},
	{"de-DE", ",", ".", "1 $", "-1 $"},
	{"de-AT", ",", " ", "$ 1", "-$ 1"},
	{"de-CH", ".", "'", "$ 1", "$-1"},
	{"it-IT", ",", ".", "1 $", "-1 $"},
	{"es-ES", ",", ".", "1 $", "-1 $"},
	{"es-MX", ".", ",", "$1", "-$1"},
	{"pt-BR", ",", ".", "$ 1", "-$ 1"},
	{"pt-PT", ",", " ", "1 $", "-1 $"},
	{"da-DK", ",", ".", "1 $", "-1 $"},
	{"sv-SE", ",", " ", "1 $", "-1 $"},
	{"fi-FI", ",", " ", "1 $", "-1 $"},
	{"pl-PL", ",", " ", "1 $", "-1 $"},
	{"cs-CZ", ",", " ", "1 $", "-1 $"},
	{"ru-RU", ",", " ", "1 $", "-1 $"},
	{"tr-TR", ",", ".", "$1", "-$1"},
	{"ja-JP", ".", ",", "$1", "-$1"},
	{"zh-CN", ".", ",", "$1", "-$1"},
	{"ko-KR", ".", ",", "$1", "-$1"},
}

type cultureIndex struct {
	byName  map[string]Culture
	tags    []language.Tag
	matcher language.Matcher
}

var cultureTable = sync.OnceValue(func() *cultureIndex {
	idx := &cultureIndex{byName: make(map[string]Culture, len(cultures))}
	for _, c := range cultures {
		idx.byName[c.name] = c
		idx.tags = append(idx.tags, language.MustParse(c.name))
	}
	idx.matcher = language.NewMatcher(idx.tags)
	return idx
})

// ParseCulture returns the built-in conventions for a BCP 47 locale.
// The empty string is the invariant culture. Locales without an exact entry
// get the closest one when the match is good enough ("en-US-u-cu-eur"
// resolves to en-US), otherwise ErrUnknownCulture is returned.
func ParseCulture(name string) (Culture, error) {
	if name == "" {
		return InvariantCulture, nil
	}
	idx := cultureTable()
	if c, ok := idx.byName[name]; ok {
		return c, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return Culture{}, fmt.Errorf("%w %q: %v", ErrUnknownCulture, name, err)
	}
	_, i, conf := idx.matcher.Match(tag)
	if conf < language.High {
		return Culture{}, fmt.Errorf("%w %q", ErrUnknownCulture, name)
	}
	return cultures[i], nil
}

// Cultures returns the names of the built-in cultures.
func Cultures() []string {
	names := make([]string, len(cultures))
	for i, c := range cultures {
		names[i] = c.name
	}
	return names
}

// Name returns the BCP 47 tag of the culture, "" for the invariant culture.
func (c Culture) Name() string { return c.name }

func (c Culture) DecimalSeparator() string { return c.decimal }
func (c Culture) GroupSeparator() string   { return c.group }

// Currency returns the currency conventionally used in the culture's region.
func (c Culture) Currency() (Currency, error) {
	if c.name == "" {
		return Currency{}, fmt.Errorf("%w: the invariant culture has no currency", unknownCurrency(""))
	}
	return FromCulture(c.name)
}

func (c Culture) String() string {
	if c.name == "" {
		return "invariant"
	}
	return c.name
}

type cultureKey struct{}

// WithCulture returns a copy of ctx carrying c as the current culture.
//
// The current culture replaces a process-wide "current locale": it decides
// the default currency of FromContext and the formatting of FormatContext.
func WithCulture(ctx context.Context, c Culture) context.Context {
	return context.WithValue(ctx, cultureKey{}, c)
}

// CultureFrom returns the culture carried by ctx, or InvariantCulture.
func CultureFrom(ctx context.Context) Culture {
	if c, ok := ctx.Value(cultureKey{}).(Culture); ok {
		return c
	}
	return InvariantCulture
}
