package helpers

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseUnits converts a human decimal string ("12.5") into an integer amount
// scaled by 10^decimals. Negative values, more fractional digits than
// decimals, and malformed input are rejected.
func ParseUnits(value string, decimals int) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("amount is required")
	}
	if strings.HasPrefix(value, "-") {
		return nil, fmt.Errorf("amount must not be negative: %s", value)
	}
	value = strings.TrimPrefix(value, "+")

	whole, frac, hasDot := strings.Cut(value, ".")
	if hasDot && strings.Contains(frac, ".") {
		return nil, fmt.Errorf("invalid amount: %s", value)
	}
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("invalid amount: %s", value)
	}
	if len(frac) > decimals {
		return nil, fmt.Errorf("amount %s has more than %d decimals", value, decimals)
	}
	if whole == "" {
		whole = "0"
	}
	for _, part := range []string{whole, frac} {
		for _, c := range part {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("invalid amount: %s", value)
			}
		}
	}

	digits := whole + frac + strings.Repeat("0", decimals-len(frac))
	result, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount: %s", value)
	}
	return result, nil
}

// FormatUnits renders an integer amount scaled by 10^decimals as a decimal
// string with exactly decimals fractional digits.
func FormatUnits(amount *big.Int, decimals int) string {
	if amount == nil {
		amount = new(big.Int)
	}
	negative := amount.Sign() < 0
	digits := new(big.Int).Abs(amount).String()
	if decimals > 0 {
		if len(digits) <= decimals {
			digits = strings.Repeat("0", decimals-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-decimals] + "." + digits[len(digits)-decimals:]
	}
	if negative {
		return "-" + digits
	}
	return digits
}

// FormatUnitsTrimmed is FormatUnits without trailing fractional zeros.
func FormatUnitsTrimmed(amount *big.Int, decimals int) string {
	s := FormatUnits(amount, decimals)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// IsPositiveAmount reports whether value parses to an amount greater than zero.
func IsPositiveAmount(value string, decimals int) bool {
	amount, err := ParseUnits(value, decimals)
	return err == nil && amount.Sign() > 0
}
