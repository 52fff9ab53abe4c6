package monetary

import "github.com/shopspring/decimal"

// Number is the set of numeric types accepted as amounts, scalars and rates.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | decimal.Decimal
}

// newDecimal is a convenient factory for decimal.Decimal.
//
// Floating point values are converted to the shortest decimal that
// round-trips to the same float: 0.1 becomes exactly 0.1, and a given float
// always yields the same decimal on every platform.
func newDecimal[T Number](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int8:
		return decimal.NewFromInt(int64(v))
	case int16:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint8:
		return decimal.NewFromUint64(uint64(v))
	case uint16:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}
