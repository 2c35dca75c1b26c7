package util //nolint:revive // package name util hosts shared money helpers used across services and the CLI

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParsePrice turns a display price string into a non-negative amount.
// Currency symbols, spaces, and thousands separators are stripped before
// parsing, so "$9.00", "9.00" and "$ 1,250.50" are all accepted.
func ParsePrice(s string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return 0, fmt.Errorf("price %q has no numeric content", s)
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("price %q is negative", s)
	}
	return v, nil
}

// FormatPrice renders an amount with two decimal places and no currency
// symbol, e.g. 9 -> "9.00".
func FormatPrice(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
