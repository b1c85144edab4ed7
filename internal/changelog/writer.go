package changelog

import (
	"errors"
	"strings"

	"github.com/noterhq/noter/internal/config"
)

// ErrNoOpenSection is returned by AddNote when no section is open.
// It signals a caller bug; generation must abort.
var ErrNoOpenSection = errors.New("changelog: note added outside of a section")

// Writer accumulates one release notes document.
//
// Call order per document: Begin, then for each variant OpenSection,
// AddNote (any number of times) and CloseSection, then Serialize.
// A Writer is not safe for concurrent use.
type Writer struct {
	formatter Formatter
	lines     []string
	open      *config.NoteVariant
}

// NewWriter creates a Writer rendering through f.
func NewWriter(f Formatter) *Writer {
	return &Writer{formatter: f}
}

// NewTextWriter creates a Writer for reStructuredText-style output.
func NewTextWriter() *Writer {
	return NewWriter(Text{})
}

// NewMarkdownWriter creates a Writer for Markdown output.
func NewMarkdownWriter() *Writer {
	return NewWriter(Markdown{})
}

// Begin writes the document title.
func (w *Writer) Begin(title string) {
	w.lines = append(w.lines, w.formatter.Title(title)...)
	w.headingSpacing()
}

// OpenSection writes the heading for v and makes v the open section.
func (w *Writer) OpenSection(v config.NoteVariant) {
	w.lines = append(w.lines, w.formatter.SectionHeader(v)...)
	w.headingSpacing()
	w.open = &v
}

// AddNote writes one note line for the open section.
func (w *Writer) AddNote(ticket, description, issue string) error {
	if w.open == nil {
		return ErrNoOpenSection
	}
	w.lines = append(w.lines, w.formatter.NoteLine(*w.open, ticket, description, issue)...)
	return nil
}

// CloseSection ends the open section with one blank line.
func (w *Writer) CloseSection() {
	w.Spacing(1)
	w.open = nil
}

// Spacing writes n blank lines. On an empty document it writes n+1, since a
// single leading blank line disappears when the lines are joined.
func (w *Writer) Spacing(n int) {
	if n <= 0 {
		return
	}
	if len(w.lines) == 0 {
		n++
	}
	for i := 0; i < n; i++ {
		w.lines = append(w.lines, "")
	}
}

// Serialize joins the document lines with newlines and empties the writer.
// A second call without new content returns "".
func (w *Writer) Serialize() string {
	lines := w.lines
	w.lines = nil
	return strings.Join(lines, "\n")
}

func (w *Writer) headingSpacing() {
	if s, ok := w.formatter.(HeadingSpacer); ok {
		w.Spacing(s.HeadingSpacing())
	}
}
