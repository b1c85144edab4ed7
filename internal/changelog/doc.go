// Package changelog renders release notes.
//
// This package implements:
//   - The Formatter interface and its dialects: Text (reStructuredText-style
//     underlined headings), Markdown and Terminal (colored Text for drafts)
//   - Writer, which sequences formatter output into one document:
//     Begin, then OpenSection / AddNote / CloseSection per variant, then Serialize
//
// Nothing here escapes its input; embedded newlines in tickets, descriptions
// or issues are written as-is.
package changelog
