// README: Date-expression normalizer (loose user phrasing -> ISO calendar dates).
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var (
	isoRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// "sep25", "Sep 25", "september 25th": letters, optional space, day,
	// optional ordinal suffix.
	monthDayRe = regexp.MustCompile(`(?i)^([a-z]+)\s*(\d{1,2})(?:st|nd|rd|th)?$`)

	// Connectors: "to"/"through" as standalone words, or a hyphen. The hyphen
	// only splits expressions that are not themselves ISO dates.
	wordConnectorRe = regexp.MustCompile(`(?i)\s+(?:to|through)\s+`)
	hyphenRe        = regexp.MustCompile(`\s*-\s*`)
)

// Layouts tried by the generic parse fallback, most specific first.
var genericLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"01/02/2006",
}

// Normalize converts a loosely-formatted date expression into an ISO calendar
// date where possible. Unparseable input is returned unchanged; this function
// never fails. ISO input is idempotent.
func Normalize(expr string) string {
	return NormalizeWithYear(expr, time.Now().Year())
}

// NormalizeWithYear is Normalize with an explicit year for month-name dates.
// Years are never inferred across a year boundary: "dec 30" in December still
// resolves to the given year.
func NormalizeWithYear(expr string, year int) string {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return expr
	}

	if isoRe.MatchString(trimmed) {
		return trimmed
	}

	if m := monthDayRe.FindStringSubmatch(trimmed); m != nil {
		if month, ok := monthFromName(m[1]); ok {
			day, err := strconv.Atoi(m[2])
			if err == nil && day >= 1 && day <= 31 {
				return fmt.Sprintf("%d-%02d-%02d", year, month, day)
			}
		}
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02")
		}
	}

	// Unparsed: downstream consumers treat a non-ISO string as best-effort.
	return expr
}

// NormalizeRange splits a combined date expression on the first range
// connector ("to", "through", "-") and normalizes each half independently.
// When no connector splits the expression into exactly two non-empty parts,
// the whole expression is a single departure date and returnDate is empty.
func NormalizeRange(expr string) (departureDate, returnDate string) {
	return normalizeRangeWithYear(expr, time.Now().Year())
}

func normalizeRangeWithYear(expr string, year int) (string, string) {
	trimmed := strings.TrimSpace(expr)

	// An expression that already normalizes to a single ISO date never
	// range-splits, even though it may contain hyphens.
	if norm := NormalizeWithYear(trimmed, year); isoRe.MatchString(norm) {
		return norm, ""
	}

	for _, re := range []*regexp.Regexp{wordConnectorRe, hyphenRe} {
		if loc := re.FindStringIndex(trimmed); loc != nil {
			left := strings.TrimSpace(trimmed[:loc[0]])
			right := strings.TrimSpace(trimmed[loc[1]:])
			if left != "" && right != "" {
				return NormalizeWithYear(left, year), NormalizeWithYear(right, year)
			}
		}
	}

	return NormalizeWithYear(trimmed, year), ""
}

func monthFromName(name string) (time.Month, bool) {
	lower := strings.ToLower(name)
	if len(lower) < 3 {
		return 0, false
	}
	for i, full := range monthNames {
		if strings.HasPrefix(full, lower) {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}
