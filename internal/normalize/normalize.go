// Package normalize coerces model-produced CV JSON into the canonical CV shape.
//
// Every function in this package is total: malformed input degrades to
// empty values and never produces an error.
package normalize

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jonathan/cv-relay/internal/types"
)

const (
	// MaxLinks is the number of contact links kept
	MaxLinks = 10
	// MaxSkills is the number of skills kept
	MaxSkills = 30
	// MaxTech is the number of tech tokens kept per experience entry
	MaxTech = 12
)

// CV converts a decoded JSON value into a canonical CV
func CV(raw any) types.CV {
	obj := asObject(raw)

	cv := types.EmptyCV()
	cv.FullName = asString(obj["fullName"])
	cv.Title = asString(obj["title"])
	cv.Summary = asString(obj["summary"])
	cv.Contacts = Contacts(obj["contacts"])
	cv.Skills = Skills(obj["skills"])
	cv.Experience = Experience(obj["experience"])
	cv.Education = asList(obj["education"])
	cv.Projects = asList(obj["projects"])
	cv.Languages = asList(obj["languages"])
	return cv
}

// JSON decodes data and normalizes it. Undecodable input yields the empty CV.
func JSON(data []byte) types.CV {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return types.EmptyCV()
	}
	return CV(raw)
}

// Contacts normalizes the contact block
func Contacts(raw any) types.Contacts {
	obj := asObject(raw)
	return types.Contacts{
		Email:    asString(obj["email"]),
		Phone:    asString(obj["phone"]),
		Location: asString(obj["location"]),
		Links:    trimmedStrings(obj["links"], MaxLinks),
	}
}

// Skills trims skills, drops blanks and keeps the first MaxSkills
func Skills(raw any) []string {
	return trimmedStrings(raw, MaxSkills)
}

// Experience normalizes and deduplicates experience entries.
// Entries without a role or company are dropped, as are repeats of an
// earlier (role, company, start, end) key.
func Experience(raw any) []types.ExperienceEntry {
	out := make([]types.ExperienceEntry, 0)
	seen := make(map[dedupKey]struct{})

	for _, item := range asList(raw) {
		entry := ExperienceEntry(asObject(item))
		if entry.Role == "" || entry.Company == "" {
			continue
		}
		key := keyOf(entry)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, entry)
	}
	return out
}

// ExperienceEntry normalizes a single raw entry without filtering it
func ExperienceEntry(obj map[string]any) types.ExperienceEntry {
	start, end := DateRange(asString(obj["start"]), asString(obj["end"]))
	return types.ExperienceEntry{
		Role:    strings.TrimSpace(asString(obj["role"])),
		Company: strings.TrimSpace(asString(obj["company"])),
		Start:   start,
		End:     end,
		Bullets: Bullets(obj["bullets"]),
		Tech:    trimmedStrings(obj["tech"], MaxTech),
	}
}

type dedupKey struct {
	role, company, start, end string
}

func keyOf(e types.ExperienceEntry) dedupKey {
	return dedupKey{
		role:    strings.ToLower(e.Role),
		company: strings.ToLower(e.Company),
		start:   e.Start,
		end:     e.End,
	}
}

// Seed builds a CV from a name and title plus the model's seed output,
// which carries only summary and skills. All other fields stay empty.
func Seed(name, title string, raw any) types.CV {
	obj := asObject(raw)

	cv := types.EmptyCV()
	cv.FullName = name
	cv.Title = title
	cv.Summary = asString(obj["summary"])
	cv.Skills = Skills(obj["skills"])
	return cv
}
