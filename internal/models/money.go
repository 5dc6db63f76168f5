package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Amount is a monetary value in cents. Keeping cents as an integer makes
// summation exact; floats only appear at the JSON boundary.
type Amount int64

// ErrInvalidAmount is returned when an amount cannot be parsed as a
// two-decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseCents converts a decimal string to cents, half-up rounding the third
// fractional digit. A leading minus is accepted: negative amounts are
// unexpected but deliberately not rejected.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
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
	// A trailing dot with no fraction digits is malformed.
	if len(parts) == 2 && fracPart == "" {
		return 0, ErrInvalidAmount
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
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, ErrInvalidAmount
	}
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
	if neg {
		cents = -cents
	}
	return cents, nil
}

// String formats the amount with exactly two fraction digits.
func (a Amount) String() string {
	cents := int64(a)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Float64 returns the decimal value for callers that need a float.
func (a Amount) Float64() float64 {
	return float64(a) / 100.0
}

// MarshalJSON emits a bare number with two fraction digits, e.g. 12.50.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	cents, err := ParseCents(s)
	if err != nil {
		return err
	}
	*a = Amount(cents)
	return nil
}
