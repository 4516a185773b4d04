// Package core holds the work-day entity model and the pure computations
// over it: aggregates, filters, batch entry building and receipt assembly.
//
// This file contains functions for parsing daily-rate input from strings
// and converting between cents and euro representations.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// RateCents converts free-text rate input to cents.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// performs half-up rounding on the third decimal place. Unparseable or
// negative input is coerced to 0 rather than rejected: a rate is never
// missing, only zero.
//
// Examples:
//
//	RateCents("100")    -> 10000
//	RateCents("12,34")  -> 1234
//	RateCents("12.346") -> 1235 (rounds up)
//	RateCents("abc")    -> 0
//	RateCents("-5")     -> 0
func RateCents(s string) int64 {
	cents, err := parseDecimalCents(s)
	if err != nil {
		return 0
	}
	return cents
}

func parseDecimalCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		// Only non-negative values allowed
		return 0, fmt.Errorf("signed amount %q", s)
	}
	// Split into integer and fractional part
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("malformed amount %q", s)
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, fmt.Errorf("malformed amount %q", s)
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, fmt.Errorf("malformed amount %q", s)
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q", s)
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, fmt.Errorf("amount %q out of range", s)
	}
	// Take first two fractional digits; then half-up rounding on third
	var fracCents int64
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracCents = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracCents += d2
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	return iv*100 + fracCents, nil
}

// Euros returns the euro value as a float64. Used for display and for the
// persisted snapshot format, which stores rates as plain euro numbers.
// Use cents for calculations to avoid floating-point precision issues.
func Euros(cents int64) float64 {
	return float64(cents) / 100.0
}

// CentsFromEuros converts a euro number (as found in persisted snapshots)
// back to cents with half-up rounding.
func CentsFromEuros(euros float64) int64 {
	if euros < 0 {
		return 0
	}
	return int64(euros*100 + 0.5)
}

// FormatEuros renders cents as the user-facing amount, e.g. "€100.00".
func FormatEuros(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := fmt.Sprintf("€%d.%02d", cents/100, cents%100)
	if neg {
		return "-" + s
	}
	return s
}
