package normalize

import (
	"regexp"
	"strings"
)

// datePart matches a year with an optional month.
const datePart = `(?:19|20)\d{2}(?:[-/.](?:0[1-9]|1[0-2]))?`

var (
	// rangeSeparator detects text that may hold a start/end pair
	rangeSeparator = regexp.MustCompile(`(?i)[-–—]|\b(?:to|until|through)\b`)

	// dateRange matches "2021-03 - 2023", "2019 to 2020-06" and friends
	dateRange = regexp.MustCompile(`(?i)(` + datePart + `)\s*(?:[-–—]|\bto\b|\buntil\b|\bthrough\b)\s*(` + datePart + `)`)

	// yearToken captures the first four-digit number and an optional month
	yearToken = regexp.MustCompile(`\b(\d{4})(?:[-/.](\d{2}))?\b`)

	// canonicalDate is the only shape a resolved date may take
	canonicalDate = regexp.MustCompile(`^(19|20)\d{2}(-(0[1-9]|1[0-2]))?$`)
)

// DateRange resolves the raw start and end values of an experience entry
// into canonical YYYY or YYYY-MM strings. An empty result means unknown.
//
// When either side embeds a full range, that side supplies both bounds and
// the other raw value is ignored. The start side is inspected first. A
// range found in the end field is still returned as (start, end).
func DateRange(rawStart, rawEnd string) (start, end string) {
	if s, e, ok := splitRange(rawStart); ok {
		rawStart, rawEnd = s, e
	} else if s, e, ok := splitRange(rawEnd); ok {
		rawStart, rawEnd = s, e
	}
	return Date(rawStart), Date(rawEnd)
}

// Date extracts a YYYY or YYYY-MM value from the first four-digit token in
// free text. A first year outside 1900-2099 yields "" rather than a later
// year, and an invalid month is dropped.
func Date(raw string) string {
	m := yearToken.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	if m[2] != "" {
		if withMonth := m[1] + "-" + m[2]; canonicalDate.MatchString(withMonth) {
			return withMonth
		}
	}
	if !canonicalDate.MatchString(m[1]) {
		return ""
	}
	return m[1]
}

func splitRange(raw string) (string, string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || !rangeSeparator.MatchString(raw) {
		return "", "", false
	}
	m := dateRange.FindStringSubmatch(raw)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
