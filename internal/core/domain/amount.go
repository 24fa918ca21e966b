package domain

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// Amount is a decimal that tolerates the loosely typed numeric inputs the
// report sheets produce: JSON numbers, numeric strings, "", null and plain
// garbage all unmarshal, with anything non-numeric coerced to zero. This is
// the single place that coercion happens, so NaN can never enter the system.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal in an Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// UnmarshalJSON implements json.Unmarshaler with blank/non-numeric -> 0.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		s = unquoted
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// MarshalJSON emits the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}
