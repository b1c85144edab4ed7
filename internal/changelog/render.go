package changelog

import (
	"strings"

	"github.com/noterhq/noter/internal/config"
)

// Text renders reStructuredText-style plain text: headings are underlined
// with '=' (title) and '-' (sections), one character per byte of the heading.
type Text struct{}

// Title returns the title and its '=' underline.
func (Text) Title(title string) []string {
	return []string{title, strings.Repeat("=", len(title))}
}

// SectionHeader returns the variant name and its '-' underline.
func (Text) SectionHeader(v config.NoteVariant) []string {
	return []string{v.Name, strings.Repeat("-", len(v.Name))}
}

// NoteLine returns the bullet line for one note.
func (Text) NoteLine(v config.NoteVariant, ticket, description, issue string) []string {
	return []string{noteLine(v, ticket, description, issue)}
}

// Markdown renders ATX headings. Headings are followed by one blank line.
type Markdown struct{}

// Title returns "# title".
func (Markdown) Title(title string) []string {
	return []string{"# " + title}
}

// SectionHeader returns "## name".
func (Markdown) SectionHeader(v config.NoteVariant) []string {
	return []string{"## " + v.Name}
}

// NoteLine returns the bullet line for one note.
func (Markdown) NoteLine(v config.NoteVariant, ticket, description, issue string) []string {
	return []string{noteLine(v, ticket, description, issue)}
}

// HeadingSpacing separates Markdown headings from what follows.
func (Markdown) HeadingSpacing() int {
	return 1
}
