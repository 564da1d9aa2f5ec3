// Package types provides type definitions for structured data used throughout the cv-relay system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CV is the canonical CV document returned to every CV-related caller.
// List fields are always non-nil so they encode as [] rather than null.
type CV struct {
	FullName   string            `json:"fullName"`
	Title      string            `json:"title"`
	Summary    string            `json:"summary"`
	Contacts   Contacts          `json:"contacts"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []any             `json:"education"`
	Projects   []any             `json:"projects"`
	Languages  []any             `json:"languages"`
}

// Contacts holds the contact block of a CV
type Contacts struct {
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Location string   `json:"location"`
	Links    []string `json:"links"`
}

// ExperienceEntry represents a single role held at a company.
// Start and End are YYYY or YYYY-MM and are omitted when unknown.
type ExperienceEntry struct {
	Role    string   `json:"role"`
	Company string   `json:"company"`
	Start   string   `json:"start,omitempty"`
	End     string   `json:"end,omitempty"`
	Bullets []string `json:"bullets"`
	Tech    []string `json:"tech"`
}

// EmptyCV returns a CV with every field defaulted
func EmptyCV() CV {
	return CV{
		Contacts:   Contacts{Links: []string{}},
		Skills:     []string{},
		Experience: []ExperienceEntry{},
		Education:  []any{},
		Projects:   []any{},
		Languages:  []any{},
	}
}
