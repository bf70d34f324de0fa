// Package money provides amount normalization for Payrail resources.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNoCurrency is returned when an amount is parsed without a currency code.
	ErrNoCurrency = errors.New("money: currency code required")

	// ErrBadDecimal is returned when a decimal amount string is malformed.
	ErrBadDecimal = errors.New("money: malformed decimal amount")

	// ErrOutOfRange is returned when an amount does not fit in 64-bit minor units.
	ErrOutOfRange = errors.New("money: amount out of range")
)

// Amount is a monetary value in a currency's minor units.
//
// The platform encodes account balances as integer minor units and
// transaction amounts as decimal strings; both normalize to Amount so
// rendering is uniform.
type Amount struct {
	currency string
	minor    int64
}

// FromMinorUnits builds an Amount from integer minor units (cents).
func FromMinorUnits(currency string, minor int64) Amount {
	return Amount{currency: strings.ToUpper(currency), minor: minor}
}

// ParseDecimal builds an Amount from a decimal string like "12.34".
//
// The string may carry a sign and at most two fractional digits.
// Grouping separators are not accepted.
func ParseDecimal(currency, s string) (Amount, error) {
	if currency == "" {
		return Amount{}, ErrNoCurrency
	}

	raw := strings.TrimSpace(s)
	if raw == "" {
		return Amount{}, fmt.Errorf("%w: empty string", ErrBadDecimal)
	}

	neg := false
	switch raw[0] {
	case '-':
		neg = true
		raw = raw[1:]
	case '+':
		raw = raw[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(raw, ".")
	if !isDigits(intPart) {
		return Amount{}, fmt.Errorf("%w: %q", ErrBadDecimal, s)
	}
	if hasFrac && (len(fracPart) > 2 || !isDigits(fracPart)) {
		return Amount{}, fmt.Errorf("%w: %q", ErrBadDecimal, s)
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}

	var cents int64
	if hasFrac {
		cents, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return Amount{}, fmt.Errorf("%w: %q", ErrBadDecimal, s)
		}
		if len(fracPart) == 1 {
			cents *= 10
		}
	}

	if units > (math.MaxInt64-cents)/100 {
		return Amount{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}

	minor := units*100 + cents
	if neg {
		minor = -minor
	}

	return Amount{currency: strings.ToUpper(currency), minor: minor}, nil
}

// Currency returns the ISO 4217 currency code.
func (a Amount) Currency() string {
	return a.currency
}

// MinorUnits returns the amount in integer minor units.
func (a Amount) MinorUnits() int64 {
	return a.minor
}

// DecimalString renders the amount as a plain decimal, always with two
// fractional digits: "12.34", "-3.40".
//
// The quotient and remainder are negated after division so the full
// int64 range renders, including math.MinInt64 minor units.
func (a Amount) DecimalString() string {
	units := a.minor / 100
	cents := a.minor % 100
	sign := ""
	if a.minor < 0 {
		sign = "-"
		units, cents = -units, -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, units, cents)
}

// String renders the amount with its currency code: "USD 12.34".
func (a Amount) String() string {
	if a.currency == "" {
		return a.DecimalString()
	}
	return a.currency + " " + a.DecimalString()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
