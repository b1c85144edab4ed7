package changelog

import (
	"strings"

	"github.com/fatih/color"
	"github.com/noterhq/noter/internal/config"
)

// Terminal renders the Text layout with terminal colors, for drafts printed
// to a console. With colors disabled the output equals Text.
// Underlines are measured on the uncolored heading.
type Terminal struct {
	title   *color.Color
	section *color.Color
	ticket  *color.Color
	issue   *color.Color
}

// NewTerminal creates a Terminal formatter. plain disables colors; otherwise
// fatih/color's terminal and NO_COLOR detection applies.
func NewTerminal(plain bool) *Terminal {
	t := &Terminal{
		title:   color.New(color.FgCyan, color.Bold),
		section: color.New(color.FgGreen, color.Bold),
		ticket:  color.New(color.Bold),
		issue:   color.New(color.Faint),
	}
	if plain {
		t.SetColor(false)
	}
	return t
}

// SetColor forces colors on or off regardless of terminal detection.
func (t *Terminal) SetColor(enabled bool) {
	for _, c := range []*color.Color{t.title, t.section, t.ticket, t.issue} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Title returns the colored title and its '=' underline.
func (t *Terminal) Title(title string) []string {
	underline := strings.Repeat("=", len(title))
	return []string{t.title.Sprint(title), t.title.Sprint(underline)}
}

// SectionHeader returns the colored variant name and its '-' underline.
func (t *Terminal) SectionHeader(v config.NoteVariant) []string {
	underline := strings.Repeat("-", len(v.Name))
	return []string{t.section.Sprint(v.Name), t.section.Sprint(underline)}
}

// NoteLine returns the bullet line with a bold ticket and a dim issue.
func (t *Terminal) NoteLine(v config.NoteVariant, ticket, description, issue string) []string {
	return []string{noteLine(v, t.ticket.Sprint(ticket), description, t.issue.Sprint(issue))}
}
