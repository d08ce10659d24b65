package helpers

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a positive monetary amount with at most cent precision.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format")
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive")
	}
	if d.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("amount precision is limited to cents")
	}
	return d, nil
}

// ParseShare parses a prize-share fraction in (0, 1].
func ParseShare(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid share format")
	}
	if !d.IsPositive() || d.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("share must be in (0, 1]")
	}
	if d.Exponent() < -4 {
		return decimal.Zero, fmt.Errorf("share precision is limited to 4 decimal places")
	}
	return d, nil
}
