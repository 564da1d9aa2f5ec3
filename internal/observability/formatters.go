// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-relay/internal/schemas"
	"github.com/jonathan/cv-relay/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// clip shortens s to at most n runes, marking the cut with "..."
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCV outputs a human-readable summary of a normalized CV.
func (p *Printer) PrintCV(cv *types.CV) {
	if cv == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", cv.FullName))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", cv.Title))
	if cv.Contacts.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", cv.Contacts.Email))
	}
	if cv.Contacts.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", cv.Contacts.Location))
	}
	sb.WriteString("\n")

	if len(cv.Skills) > 0 {
		shown := cv.Skills[:min(len(cv.Skills), maxItemsToShow*2)]
		sb.WriteString(fmt.Sprintf("Skills (%d): %s", len(cv.Skills), strings.Join(shown, ", ")))
		if len(cv.Skills) > len(shown) {
			sb.WriteString(", ...")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Experience: %d  Education: %d  Projects: %d  Languages: %d",
		len(cv.Experience), len(cv.Education), len(cv.Projects), len(cv.Languages)))

	p.printBox("NORMALIZED CV", sb.String())
}

// PrintExperience outputs the first entries of an experience list with their bullets.
func (p *Printer) PrintExperience(entries []types.ExperienceEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		sb.WriteString(fmt.Sprintf("%s @ %s\n", e.Role, e.Company))
		if e.Start != "" || e.End != "" {
			end := e.End
			if end == "" {
				end = "present"
			}
			sb.WriteString(fmt.Sprintf("  %s → %s\n", e.Start, end))
		}
		for _, bullet := range e.Bullets {
			sb.WriteString(fmt.Sprintf("  • %s\n", bullet))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}

	p.printBox("EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSchemaErrors outputs schema validation failures, or a pass banner.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSchemaErrors(errs []schemas.FieldError) {
	if len(errs) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ SCHEMA CHECK PASSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(errs)))

	for i, e := range errs {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", e.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", e.Message))
		if i < len(errs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
