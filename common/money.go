package common

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in cents.
type Money int64

// Cents builds a Money from a cent count.
func Cents(c int64) Money {
	return Money(c)
}

// ParseMoney parses "49", "49.9", "49.99", "$49" or "$1,299.50".
// At most two fractional digits are accepted.
func ParseMoney(raw string) (Money, error) {
	s := strings.TrimSpace(raw)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("parse money %q: no digits", raw)
	}
	if !allDigits(whole) || !allDigits(frac) {
		return 0, fmt.Errorf("parse money %q: invalid character", raw)
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("parse money %q: more than two decimal places", raw)
	}

	var units int64
	if whole != "" {
		n, err := strconv.ParseInt(whole, 10, 64)
		if err != nil || n > math.MaxInt64/100-1 {
			return 0, fmt.Errorf("parse money %q: amount out of range", raw)
		}
		units = n
	}
	var cents int64
	if frac != "" {
		for len(frac) < 2 {
			frac += "0"
		}
		cents, _ = strconv.ParseInt(frac, 10, 64)
	}

	m := Money(units*100 + cents)
	if negative {
		m = -m
	}
	return m, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return int64(m)
}

// Times multiplies a unit price by a quantity.
func (m Money) Times(quantity int) Money {
	return m * Money(quantity)
}

// Decimal formats the amount with two decimal places and no symbol, e.g. "49.00".
func (m Money) Decimal() string {
	sign := ""
	c := int64(m)
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// String formats the amount for display, e.g. "$49.00".
func (m Money) String() string {
	if m < 0 {
		return "-$" + (-m).Decimal()
	}
	return "$" + m.Decimal()
}

// MarshalJSON writes the amount as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal()), nil
}

// UnmarshalJSON accepts a JSON number or a currency string.
func (m *Money) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		return nil
	}
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode money: %w", err)
		}
		text = s
	}
	parsed, err := ParseMoney(text)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
