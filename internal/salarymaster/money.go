package salarymaster

import (
	"bytes"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a rupee amount with two decimal places. On the wire it is a JSON
// number such as 1249.5; in Postgres it is numeric(15,2).
type Money struct {
	decimal.Decimal
}

const moneyPlaces = 2

// MaxAmount bounds a single earning so every derived figure still fits the
// numeric(15,2) columns.
var MaxAmount = decimal.RequireFromString("999999999.99")

var (
	ErrInvalidMoney    = errors.New("money must be a number with at most two decimals")
	ErrMoneyOutOfRange = errors.New("money must not exceed 999999999.99")
)

// NewMoney rounds d half away from zero to the paisa.
func NewMoney(d decimal.Decimal) Money {
	return Money{d.Round(moneyPlaces)}
}

func Rupees(r int64) Money {
	return NewMoney(decimal.NewFromInt(r))
}

// Fixed formats m with exactly two decimals for documents: "1249.50".
func (m Money) Fixed() string {
	return m.StringFixed(moneyPlaces)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	v, err := ParseMoney(string(bytes.Trim(data, `"`)))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseMoney reads a decimal rupee amount such as "15000", "-3.5" or
// "1249.50". Exponents and more than two decimals are rejected rather than
// silently rounded.
func ParseMoney(s string) (Money, error) {
	if s == "" || strings.ContainsAny(s, "eE+ ") {
		return Money{}, ErrInvalidMoney
	}

	d, err := decimal.NewFromString(s)
	if err != nil || d.Exponent() < -moneyPlaces {
		return Money{}, ErrInvalidMoney
	}
	if d.Abs().GreaterThan(MaxAmount) {
		return Money{}, ErrMoneyOutOfRange
	}
	return NewMoney(d), nil
}
