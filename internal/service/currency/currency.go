// Package currency formats amounts as West African CFA francs the way the
// frontend expects them: fr-FR digit grouping and a literal "FCFA" suffix.
package currency

import (
	"math"
	"strconv"
	"strings"
)

// fr-FR groups thousands with a non-breaking space, and the locale formatter
// puts the same non-breaking space before the currency code.
const (
	groupSeparator = "\u00a0"
	currencySuffix = "\u00a0FCFA"
)

// Format renders an amount as "1 250 FCFA". XOF carries no decimal digits;
// fractional amounts are rounded the way the locale formatter would.
func Format(amount float64) string {
	rounded := int64(math.Round(amount))

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	grouped := groupDigits(strconv.FormatInt(rounded, 10))
	if negative {
		return "-" + grouped + currencySuffix
	}
	return grouped + currencySuffix
}

func groupDigits(digits string) string {
	var parts []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		parts = append([]string{digits[start:i]}, parts...)
	}
	return strings.Join(parts, groupSeparator)
}
