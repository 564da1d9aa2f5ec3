package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// MaxBullets is the number of bullets kept per experience entry
	MaxBullets = 5
	// MaxBulletChars is the longest a bullet may be, in characters
	MaxBulletChars = 160
)

// bulletMarker matches one leading list marker and the whitespace around it.
// Dashes and "*" count only when followed by whitespace or nothing, so
// "-30% cost" and "**Led**" keep their first character.
var bulletMarker = regexp.MustCompile(`^\s*(?:[•·]|[-–—*](?:\s|$))\s*`)

// Bullets cleans a raw bullet list. A string is split on newlines first.
func Bullets(v any) []string {
	var raw []any
	if s, ok := v.(string); ok {
		for _, line := range strings.Split(s, "\n") {
			raw = append(raw, line)
		}
	} else {
		raw = asList(v)
	}

	out := make([]string, 0, MaxBullets)
	for _, item := range raw {
		if len(out) >= MaxBullets {
			break
		}
		b := CleanBullet(asString(item))
		if b == "" {
			continue
		}
		out = append(out, b)
	}
	return out
}

// CleanBullet strips a single leading marker, trims the text and
// shortens it to MaxBulletChars.
func CleanBullet(s string) string {
	s = bulletMarker.ReplaceAllString(s, "")
	return Truncate(strings.TrimSpace(s), MaxBulletChars)
}

// Truncate shortens s to at most limit characters, cutting at the last
// whole-word boundary. A single word longer than limit is hard-cut.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if unicode.IsSpace(runes[limit]) {
		return strings.TrimRightFunc(string(runes[:limit]), unicode.IsSpace)
	}
	cut := runes[:limit]
	for i := len(cut) - 1; i > 0; i-- {
		if unicode.IsSpace(cut[i]) {
			return strings.TrimRightFunc(string(cut[:i]), unicode.IsSpace)
		}
	}
	return string(cut)
}
