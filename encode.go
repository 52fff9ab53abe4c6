package monetary

import (
	"bufio"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// This file contains the JSON and XML representations of currencies, money
// and exchange rates. They only rely on public accessors and constructors.
//
//   Currency      "EUR"
//   Money         {"amount":"10.5","currency":"EUR"}
//   ExchangeRate  {"baseCurrency":"EUR","quoteCurrency":"USD","value":"1.2591"}
//
// Decimals are written as strings with a decimal point, whatever the locale.

// MarshalText implements encoding.TextMarshaler, a currency is its code.
func (c Currency) MarshalText() ([]byte, error) { return []byte(c.code), nil }

// UnmarshalText implements encoding.TextUnmarshaler. An empty text is the zero currency.
func (c *Currency) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = Currency{}
		return nil
	}
	cur, err := FromCode(string(text))
	if err != nil {
		return err
	}
	*c = cur
	return nil
}

// MarshalJSON implements json.Marshaler.
func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", m.amount)
	w.Optional("currency", m.currency.code)
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler. The amount can be a JSON string
// or a JSON number.
func (m *Money) UnmarshalJSON(data []byte) error {
	var jm struct {
		Amount   decimal.Decimal `json:"amount"`
		Currency Currency        `json:"currency"`
	}
	if err := json.Unmarshal(data, &jm); err != nil {
		return fmt.Errorf("cannot decode money %s: %w", data, err)
	}
	if err := checkDecodedMoney(jm.Amount, jm.Currency); err != nil {
		return fmt.Errorf("cannot decode money %s: %w", data, err)
	}
	*m = Money{amount: jm.Amount, currency: jm.Currency}
	return nil
}

// checkDecodedMoney rejects an amount without a currency. Only the zero
// Money, which is encoded without one, may have none.
func checkDecodedMoney(amount decimal.Decimal, cur Currency) error {
	if cur.IsZero() && !amount.IsZero() {
		return fmt.Errorf("%w: amount %s has no currency", ErrInvalidArgument, amount)
	}
	return nil
}

// MarshalXML implements xml.Marshaler as <Money Amount="10.5" Currency="EUR"/>.
func (m Money) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if e == nil {
		return fmt.Errorf("%w: xml encoder", ErrNilArgument)
	}
	start.Attr = append(start.Attr,
		xml.Attr{Name: xml.Name{Local: "Amount"}, Value: m.amount.String()},
		xml.Attr{Name: xml.Name{Local: "Currency"}, Value: m.currency.code},
	)
	return e.EncodeElement(struct{}{}, start)
}

// UnmarshalXML implements xml.Unmarshaler.
func (m *Money) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if d == nil {
		return fmt.Errorf("%w: xml decoder", ErrNilArgument)
	}
	var amount decimal.Decimal
	var cur Currency
	for _, a := range start.Attr {
		var err error
		switch a.Name.Local {
		case "Amount":
			amount, err = decimal.NewFromString(a.Value)
		case "Currency":
			err = cur.UnmarshalText([]byte(a.Value))
		}
		if err != nil {
			return fmt.Errorf("cannot decode money attribute %s=%q: %w", a.Name.Local, a.Value, err)
		}
	}
	if err := checkDecodedMoney(amount, cur); err != nil {
		return fmt.Errorf("cannot decode money: %w", err)
	}
	*m = Money{amount: amount, currency: cur}
	return d.Skip()
}

// MarshalJSON implements json.Marshaler.
func (r ExchangeRate) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("baseCurrency", r.base.code)
	w.Append("quoteCurrency", r.quote.code)
	w.Append("value", r.value.String())
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler. The value can be a JSON string
// or a JSON number. All three fields are required.
func (r *ExchangeRate) UnmarshalJSON(data []byte) error {
	var jr struct {
		Base  string          `json:"baseCurrency"`
		Quote string          `json:"quoteCurrency"`
		Value decimal.Decimal `json:"value"`
	}
	if err := json.Unmarshal(data, &jr); err != nil {
		return fmt.Errorf("cannot decode exchange rate %s: %w", data, err)
	}
	rate, err := NewExchangeRateFromCode(jr.Base, jr.Quote, jr.Value)
	if err != nil {
		return fmt.Errorf("cannot decode exchange rate %s: %w", data, err)
	}
	*r = rate
	return nil
}

// MarshalXML implements xml.Marshaler as
// <ExchangeRate BaseCurrency="EUR" QuoteCurrency="USD" Value="1.2591"/>.
func (r ExchangeRate) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if e == nil {
		return fmt.Errorf("%w: xml encoder", ErrNilArgument)
	}
	start.Attr = append(start.Attr,
		xml.Attr{Name: xml.Name{Local: "BaseCurrency"}, Value: r.base.code},
		xml.Attr{Name: xml.Name{Local: "QuoteCurrency"}, Value: r.quote.code},
		xml.Attr{Name: xml.Name{Local: "Value"}, Value: r.value.String()},
	)
	return e.EncodeElement(struct{}{}, start)
}

// UnmarshalXML implements xml.Unmarshaler.
func (r *ExchangeRate) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if d == nil {
		return fmt.Errorf("%w: xml decoder", ErrNilArgument)
	}
	attrs := make(map[string]string, 3)
	for _, a := range start.Attr {
		attrs[a.Name.Local] = a.Value
	}
	v, err := decimal.NewFromString(attrs["Value"])
	if err != nil {
		return fmt.Errorf("%w: cannot decode exchange rate value %q: %v", ErrInvalidArgument, attrs["Value"], err)
	}
	rate, err := NewExchangeRateFromCode(attrs["BaseCurrency"], attrs["QuoteCurrency"], v)
	if err != nil {
		return fmt.Errorf("cannot decode exchange rate: %w", err)
	}
	*r = rate
	return d.Skip()
}

// EncodeExchangeRates writes rates as JSONL, one rate per line.
func EncodeExchangeRates(w io.Writer, rates ...ExchangeRate) error {
	if w == nil {
		return fmt.Errorf("%w: writer", ErrNilArgument)
	}
	enc := json.NewEncoder(w)
	for _, r := range rates {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("cannot encode %v: %w", r, err)
		}
	}
	return nil
}

// DecodeExchangeRates reads JSONL rates as written by EncodeExchangeRates.
// Blank lines are ignored.
func DecodeExchangeRates(r io.Reader) ([]ExchangeRate, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: reader", ErrNilArgument)
	}
	var rates []ExchangeRate
	scanner := bufio.NewScanner(r)
	for i := 1; scanner.Scan(); i++ {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var rate ExchangeRate
		if err := json.Unmarshal(line, &rate); err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", i, err)
		}
		rates = append(rates, rate)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rates, nil
}
