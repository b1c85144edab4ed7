// Package output provides terminal output helpers for the noter CLI.
// It has no dependencies on other internal packages.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of w, defaulting to 80 if unavailable.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(fder); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

// PrintDraftBanner prints a dim separator naming the file a draft would be written to.
func PrintDraftBanner(out io.Writer, target string) {
	magenta := color.New(color.FgMagenta, color.Faint).SprintFunc()

	label := fmt.Sprintf(" draft for %s ", target)
	lineLen := (TerminalWidth(out) - len(label)) / 2
	if lineLen < 3 {
		lineLen = 3
	}

	line := strings.Repeat("─", lineLen)
	fmt.Fprintf(out, "%s%s%s\n\n", magenta(line), magenta(label), magenta(line))
}

// PrintSuccess prints a green checkmark followed by message.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}

// PrintInfo prints a dim informational line.
func PrintInfo(out io.Writer, message string) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintln(out, dim(message))
}

// Path formats a file path for status lines.
func Path(p string) string {
	return color.New(color.FgCyan).Sprint(p)
}
