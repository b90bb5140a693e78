package cli

import (
	"fmt"
	"strings"
)

// DefaultCurrencySymbol is used when no symbol is configured.
const DefaultCurrencySymbol = "₹"

// FormatMoney renders an amount with the currency symbol and Indian
// digit grouping (12,34,567.89): the last three integer digits group
// together, then pairs.
func FormatMoney(symbol string, amount float64) string {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	grouped := groupIndian(intPart)
	if negative {
		return fmt.Sprintf("-%s%s.%s", symbol, grouped, fracPart)
	}
	return fmt.Sprintf("%s%s.%s", symbol, grouped, fracPart)
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)

	return strings.Join(groups, ",")
}

// FormatPercent renders a percentage with no decimals, matching the
// dashboard's compact display.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}
