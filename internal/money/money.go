// Package money parses and formats USD amounts as integer cents.
//
// Receipt OCR output is noisy, so parsing is deliberately conservative: a
// token either matches a small money grammar exactly or it is rejected.
// No floats anywhere.
package money

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxAbsCents caps accepted magnitudes at $10,000,000.00. Amounts beyond
// the cap are treated as OCR artifacts and rejected.
const MaxAbsCents int64 = 10_000_000_00

var (
	// ErrEmptyToken reports a token with no content.
	ErrEmptyToken = errors.New("money token is empty")

	// ErrThousandsSeparator reports grouped digits like "1,234.56".
	// Grouping is ambiguous with decimal commas and is never guessed at.
	ErrThousandsSeparator = errors.New("ambiguous thousands separator")

	// ErrInvalidToken reports a token outside the accepted money grammar.
	ErrInvalidToken = errors.New("invalid money token")

	// ErrTooLarge reports a magnitude above MaxAbsCents.
	ErrTooLarge = errors.New("amount exceeds safety limit")
)

// Token grammar: optional $, 1-7 digits, optional "." or "," with one or
// two decimal digits, optional trailing "-" (receipts mark voids and
// discounts that way). Leading minus signs are not accepted.
var (
	tokenRE     = regexp.MustCompile(`^\s*\$?\s*(\d{1,7})([.,](\d{1,2}))?\s*(-)?\s*$`)
	thousandsRE = regexp.MustCompile(`\d,\d{3}`)
)

// ParseUSDToCents parses a human or OCR money token into integer cents.
//
// Examples:
//
//	ParseUSDToCents("12")     -> 1200
//	ParseUSDToCents("12.34")  -> 1234
//	ParseUSDToCents("$12.34") -> 1234
//	ParseUSDToCents("12,34")  -> 1234 (decimal comma)
//	ParseUSDToCents("12.3")   -> 1230
//	ParseUSDToCents("5.00-")  -> -500 (trailing dash negative)
//
// Rejects thousands separators ("1,234.56"), more than two decimal digits,
// leading minus signs, and anything else outside the grammar.
func ParseUSDToCents(token string) (int64, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return 0, ErrEmptyToken
	}
	if thousandsRE.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrThousandsSeparator, token)
	}

	m := tokenRE.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	dollars, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}

	var cents int64
	if dec := m[3]; dec != "" {
		n, err := strconv.ParseInt(dec, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidToken, token)
		}
		// A single decimal digit means tenths: "12.3" is $12.30.
		if len(dec) == 1 {
			n *= 10
		}
		cents = n
	}

	total := dollars*100 + cents
	if m[4] == "-" {
		total = -total
	}
	if total > MaxAbsCents || total < -MaxAbsCents {
		return 0, fmt.Errorf("%w: %q", ErrTooLarge, token)
	}
	return total, nil
}

// CentsToString renders cents as a display string like "$12.34". Negative
// amounts carry the sign before the symbol: "-$5.00".
func CentsToString(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
