package changelog

import (
	"github.com/noterhq/noter/internal/config"
)

// Formatter maps writer events to literal output lines for one dialect.
// Implementations are stateless.
type Formatter interface {
	// Title renders the document title.
	Title(title string) []string

	// SectionHeader renders the heading of a variant section.
	SectionHeader(v config.NoteVariant) []string

	// NoteLine renders a single release note of variant v.
	NoteLine(v config.NoteVariant, ticket, description, issue string) []string
}

// HeadingSpacer is implemented by formatters that want blank lines after
// the title and section headings.
type HeadingSpacer interface {
	HeadingSpacing() int
}

// Dialect names a built-in formatter.
type Dialect string

const (
	DialectText     Dialect = "text"
	DialectMarkdown Dialect = "markdown"
	DialectTerminal Dialect = "terminal"
)

// NewFormatter returns the built-in formatter for d.
func NewFormatter(d Dialect) (Formatter, bool) {
	switch d {
	case DialectText:
		return Text{}, true
	case DialectMarkdown:
		return Markdown{}, true
	case DialectTerminal:
		return NewTerminal(false), true
	default:
		return nil, false
	}
}

// noteLine builds "- ticket: [description ]issue".
func noteLine(v config.NoteVariant, ticket, description, issue string) string {
	line := "- " + ticket + ": "
	if v.ShowContent {
		line += description + " "
	}
	return line + issue
}
