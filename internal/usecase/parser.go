package usecase

import (
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/taglens/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	// Matches an MRP keyword followed by an optional separator, optional
	// currency symbol, and a 2-6 digit amount with up to 2 decimals
	mrpPattern = regexp.MustCompile(`(?:mrp|m\.r\.p|max retail|price mrp)\s*[:\-]?\s*₹?\s*([0-9]{2,6}(?:\.[0-9]{1,2})?)`)

	// Matches a selling-price keyword with the same separator/amount shape
	sellPattern = regexp.MustCompile(`(?:sell|sale|sp|selling|offer|now|our price)\s*[:\-]?\s*₹?\s*([0-9]{2,6}(?:\.[0-9]{1,2})?)`)

	// Matches any amount in the text, with an optional currency prefix.
	// Used to build the fallback candidate pool.
	amountPattern = regexp.MustCompile(`(?:rs\.?|inr|₹)?\s*([0-9]{2,6}(?:\.[0-9]{1,2})?)`)

	// Matches any ASCII letter (name lines must contain at least one)
	letterPattern = regexp.MustCompile(`[a-zA-Z]`)
)

// priceLineKeywords mark a line as pricing noise rather than a product name
var priceLineKeywords = []string{"mrp", "sell", "price", "rs", "inr", "₹"}

// maxNameLines is how many leading lines are considered as name candidates.
// Tag layouts put the item name at the top.
const maxNameLines = 3

// TagParser extracts product name, MRP, and selling price from raw
// price-tag OCR text.
type TagParser struct {
	enableDebugLogging bool
}

// NewTagParser creates a new price-tag parser
func NewTagParser(enableDebugLogging bool) *TagParser {
	return &TagParser{
		enableDebugLogging: enableDebugLogging,
	}
}

// Parse runs the extraction heuristic over raw OCR text. It never fails:
// any field that cannot be resolved is left nil.
//
// The MRP and sell-price keyword searches are independent; when both
// keyword sets point at the same numeric token, both fields take it.
func (p *TagParser) Parse(text string) domain.ExtractionResult {
	lowered := strings.ToLower(text)
	lines := tokenizeLines(text)

	mrp := numberAfterKeyword(mrpPattern, lowered)
	sell := numberAfterKeyword(sellPattern, lowered)

	// Fallback: infer from the pool of all amounts in the text.
	// Convention: the struck-through MRP is the biggest number on the
	// tag, the promotional price the smallest.
	pool := candidatePool(lowered)
	if mrp == nil && len(pool) > 0 {
		mrp = floatPtr(pool[len(pool)-1])
	}
	if sell == nil && len(pool) > 0 {
		if mrp != nil && len(pool) > 1 {
			sell = floatPtr(pool[0])
		} else {
			sell = floatPtr(pool[len(pool)-1])
		}
	}

	name := guessNameLine(lines)

	if p.enableDebugLogging {
		log.Printf("[PARSER] lines=%d candidates=%d name=%v mrp=%v sell=%v",
			len(lines), len(pool), name != nil, mrp != nil, sell != nil)
	}

	return domain.ExtractionResult{
		RawText:   strings.TrimSpace(text),
		Name:      name,
		MRP:       mrp,
		SellPrice: sell,
	}
}

// tokenizeLines splits text into trimmed non-empty lines, preserving order
func tokenizeLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// numberAfterKeyword returns the amount captured by the first keyword
// match, or nil when no keyword matches or the amount fails to parse
func numberAfterKeyword(pattern *regexp.Regexp, lowered string) *float64 {
	match := pattern.FindStringSubmatch(lowered)
	if match == nil {
		return nil
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return nil
	}
	return &value
}

// candidatePool collects every amount in the text into a deduplicated
// ascending-sorted slice
func candidatePool(lowered string) []float64 {
	matches := amountPattern.FindAllStringSubmatch(lowered, -1)
	seen := make(map[float64]bool)
	var pool []float64
	for _, m := range matches {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if !seen[value] {
			seen[value] = true
			pool = append(pool, value)
		}
	}
	sort.Float64s(pool)
	return pool
}

// guessNameLine picks the first early line that has letters and no
// pricing keywords
func guessNameLine(lines []string) *string {
	limit := maxNameLines
	if len(lines) < limit {
		limit = len(lines)
	}

	for _, line := range lines[:limit] {
		lowered := strings.ToLower(line)
		if containsAny(lowered, priceLineKeywords) {
			continue
		}
		if letterPattern.MatchString(line) {
			name := strings.TrimSpace(line)
			return &name
		}
	}
	return nil
}

// containsAny reports whether s contains any of the given substrings
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func floatPtr(v float64) *float64 {
	return &v
}
