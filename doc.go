// Package monetary provides money as a first-class value: an exact decimal
// amount tied to an ISO 4217 currency, with currency-aware arithmetic,
// comparison, rounding and locale-sensitive formatting.
//
// The main types are:
//   - Currency: an immutable currency descriptor (code, numeric code, minor
//     unit digits, name, symbol) obtained from a static registry built once on
//     first use (FromCode, FromNumericCode, FromRegion, FromCulture,
//     Currencies).
//   - Money: an amount in major units and a Currency. Arithmetic is exact and
//     never rounds; combining two amounts in different currencies fails with
//     ErrCurrencyMismatch instead of silently mixing them.
//   - ExchangeRate: a fixed rate between a base and a quote currency, used to
//     Convert money from one to the other.
//   - Culture: the number formatting conventions of a locale. Rounding only
//     happens when formatting, or on an explicit Round.
//
// All values are immutable and safe for concurrent use.
//
// There is no process-wide current locale. Code that wants one passes a
// Culture in a context.Context:
//
//	nl, _ := monetary.ParseCulture("nl-NL")
//	ctx := monetary.WithCulture(context.Background(), nl)
//	m, _ := monetary.FromContext(ctx, 10.9999) // 10.9999 EUR
//	monetary.FormatContext(ctx, m)             // "€ 11,00"
package monetary
