package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	// Color functions with auto-detection for terminal support.
	errorLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	errorMsg    = color.New(color.FgRed).SprintFunc()
	fixLabel    = color.New(color.FgGreen, color.Bold).SprintFunc()
	usageLabel  = color.New(color.FgCyan, color.Bold).SprintFunc()
	bullet      = color.New(color.FgGreen).SprintFunc()
	categoryFmt = color.New(color.FgYellow).SprintFunc()
)

// styler applies colors, or nothing in plain mode.
type styler func(a ...interface{}) string

func plainStyle(a ...interface{}) string {
	return fmt.Sprint(a...)
}

// FormatError formats a CLIError for display in the terminal.
// It uses colors when available and falls back to plain text otherwise.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	return formatError(err, true)
}

// FormatErrorPlain formats a CLIError without colors.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return formatError(err, false)
}

func formatError(err *CLIError, useColors bool) string {
	label, msg, fix, usage, dot, category := styler(plainStyle), styler(plainStyle),
		styler(plainStyle), styler(plainStyle), styler(plainStyle), styler(plainStyle)
	if useColors {
		label, msg, fix, usage, dot, category = errorLabel, errorMsg, fixLabel, usageLabel, bullet, categoryFmt
	}

	var sb strings.Builder

	// Error [Configuration Error]: message
	fmt.Fprintf(&sb, "%s [%s]: %s\n", label("Error"), category(err.Category.String()), msg(err.Message))

	if err.Usage != "" {
		fmt.Fprintf(&sb, "\n%s%s\n", usage("Usage: "), err.Usage)
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&sb, "\n%s\n", fix("To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&sb, "  %s %s\n", dot("•"), step)
		}
	}

	return sb.String()
}

// Fprint prints err to w. CLIErrors keep their category and remediation;
// anything else is shown as a runtime error.
func Fprint(w io.Writer, err error, plain bool) {
	if err == nil {
		return
	}
	cliErr := AsCLIError(err)
	if cliErr == nil {
		cliErr = &CLIError{Category: Runtime, Message: err.Error()}
	}
	if plain {
		fmt.Fprint(w, FormatErrorPlain(cliErr))
		return
	}
	fmt.Fprint(w, FormatError(cliErr))
}
