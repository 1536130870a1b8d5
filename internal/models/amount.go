package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidAmount is returned when a monetary value cannot be parsed.
var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a monetary value stored as cents. It round-trips through JSON as
// a two-decimal number and maps to a NUMERIC(10,2) column, so "12.50" stays
// 12.50 end to end instead of drifting through floating point.
type Amount int64

// ParseAmount converts a decimal string to an Amount with half-up rounding
// on the third decimal place. Both dot and comma separators are accepted.
// Sign is preserved; range validation is the caller's concern.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" || s == "." {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafe = math.MaxInt64 / 100
	if iv > maxSafe {
		return 0, ErrInvalidAmount
	}

	// Two fractional digits kept; third digit rounds half-up.
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	cents := iv*100 + fracCents
	if negative {
		cents = -cents
	}
	return Amount(cents), nil
}

// String formats the amount as a plain decimal with two fractional digits.
func (a Amount) String() string {
	cents := int64(a)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// MarshalJSON emits the amount as a JSON number with two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value implements driver.Valuer, writing the decimal representation.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner for the numeric representations drivers return.
func (a *Amount) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = 0
		return nil
	case int64:
		*a = Amount(v * 100)
		return nil
	case float64:
		*a = Amount(math.Round(v * 100))
		return nil
	case string:
		parsed, err := ParseAmount(v)
		if err != nil {
			return fmt.Errorf("scanning amount %q: %w", v, err)
		}
		*a = parsed
		return nil
	case []byte:
		return a.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Amount", src)
	}
}

// GormDataType tells GORM the column type for schema migration.
func (Amount) GormDataType() string {
	return "numeric(10,2)"
}
