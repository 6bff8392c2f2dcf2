// Package receipt extracts priced line items from OCR'd receipt text.
//
// Extraction is conservative: a line is kept only when it ends in a money
// token the money package accepts and its description survives a set of
// noise filters. Anything questionable is skipped, never guessed at.
package receipt

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/s2112257hs/split-it/internal/money"
)

// Item is one extracted receipt line: a description and its price.
type Item struct {
	Description string
	PriceCents  int64
}

// Price token expected at the end of a line. Kept permissive here because
// money.ParseUSDToCents does the strict validation.
var priceAtEndRE = regexp.MustCompile(`(\$?\s*\d{1,7}(?:[.,]\d{1,2})?\s*-?)\s*$`)

// Summary and footer lines skipped by default, matched as substrings of the
// lowercased, whitespace-collapsed line.
var summaryKeywords = []string{
	"subtotal",
	"sub total",
	"tax",
	"vat",
	"tip",
	"gratuity",
	"service",
	"total",
	"balance",
	"change",
	"cash",
	"card",
	"visa",
	"mastercard",
	"amex",
	"amount due",
	// metadata / footer
	"date:",
	"time",
	"mid",
	"tid",
	"trns",
	"trans",
	"transaction",
	"customer copy",
	"please retain",
	"receipt",
	"auth",
	"approval",
	"ref",
}

var (
	longDigitRunRE = regexp.MustCompile(`\d{6,}`)
	timeLikeRE     = regexp.MustCompile(`\b\d{1,2}:\d{2}(:\d{2})?\b`)
	letterRE       = regexp.MustCompile(`[A-Za-z]`)
)

type config struct {
	excludeSummaryLines bool
	minPriceCents       int64
}

// Option adjusts extraction behavior.
type Option func(*config)

// WithMinPriceCents skips items whose absolute price is below the given
// number of cents. The default of 1 drops zero-priced lines.
func WithMinPriceCents(cents int64) Option {
	return func(c *config) { c.minPriceCents = cents }
}

// KeepSummaryLines keeps lines such as SUBTOTAL and TOTAL that extraction
// skips by default.
func KeepSummaryLines() Option {
	return func(c *config) { c.excludeSummaryLines = false }
}

// ExtractFromText splits OCR text into lines and extracts items from them.
// Line structure matters: prices are only recognized at the end of a line.
func ExtractFromText(text string, opts ...Option) []Item {
	return ExtractItems(strings.Split(text, "\n"), opts...)
}

// ExtractItems scans receipt lines for a money token at the end of each
// line. The description is everything before the token. Lines that fail a
// filter are skipped rather than reported; an empty result is a valid
// outcome for an unreadable receipt.
func ExtractItems(lines []string, opts ...Option) []Item {
	cfg := config{excludeSummaryLines: true, minPriceCents: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	var items []Item
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if cfg.excludeSummaryLines && looksLikeSummaryLine(line) {
			continue
		}

		loc := priceAtEndRE.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}
		token := strings.TrimSpace(line[loc[2]:loc[3]])
		priceCents, err := money.ParseUSDToCents(token)
		if err != nil {
			continue
		}
		if abs(priceCents) < cfg.minPriceCents {
			continue
		}

		desc := strings.TrimSpace(line[:loc[2]])
		if !keepDescription(desc) {
			continue
		}

		items = append(items, Item{Description: desc, PriceCents: priceCents})
	}
	return items
}

func looksLikeSummaryLine(line string) bool {
	t := strings.Join(strings.Fields(strings.ToLower(line)), " ")
	for _, k := range summaryKeywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

// keepDescription rejects descriptions that are receipt noise rather than
// item names: long digit runs (barcodes, transaction numbers), timestamps,
// letterless blobs, oversized lines, and digit-heavy lines.
func keepDescription(desc string) bool {
	switch {
	case desc == "":
		return false
	case longDigitRunRE.MatchString(desc):
		return false
	case timeLikeRE.MatchString(desc):
		return false
	case !letterRE.MatchString(desc):
		return false
	case utf8.RuneCountInString(desc) > 60:
		return false
	}

	digits, nonSpace := 0, 0
	for _, r := range desc {
		if unicode.IsSpace(r) {
			continue
		}
		nonSpace++
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return float64(digits)/float64(nonSpace) <= 0.60
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
