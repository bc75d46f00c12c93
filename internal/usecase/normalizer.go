package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	// Matches the first month/year pattern: month first, then year, optional
	// separator. "09/23", "9/2026", "092026" all qualify.
	expiryPatternRegex = regexp.MustCompile(`(\d{1,2})/?(\d{2,4})`)

	// Matches the numeric core of a price, ignoring currency symbols and
	// surrounding text. Thousands separators are stripped beforehand.
	priceAmountRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// Price is a normalized retail price. Valid distinguishes a genuine zero
// amount from an unparsable input, so two garbage values never read as equal.
type Price struct {
	Amount float64
	Valid  bool
}

// NormalizeExpiry canonicalizes an expiry date string to "MM/YYYY".
// Two-digit years are interpreted as 20xx. When no month/year pattern is
// found the input is returned unchanged, so callers degrade to literal
// comparison. Pure and total: malformed input never fails.
func NormalizeExpiry(raw string) string {
	match := expiryPatternRegex.FindStringSubmatch(raw)
	if match == nil {
		return raw
	}

	month := match[1]
	year := match[2]

	if len(month) == 1 {
		month = "0" + month
	}
	if len(year) == 2 {
		year = "20" + year
	}

	return fmt.Sprintf("%s/%s", month, year)
}

// NormalizePrice strips currency symbols and surrounding noise from a raw
// price string and parses the remaining decimal amount. Unparsable input
// yields Price{0, false} rather than an error; the zero amount keeps the
// historical fallback behavior while Valid lets the aggregator tell the two
// cases apart.
func NormalizePrice(raw string) Price {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")

	match := priceAmountRegex.FindString(cleaned)
	if match == "" {
		return Price{}
	}

	amount, err := strconv.ParseFloat(match, 64)
	if err != nil || amount < 0 {
		return Price{}
	}

	return Price{Amount: amount, Valid: true}
}
