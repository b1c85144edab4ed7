// Package placeholder substitutes {name} placeholders in config templates
// such as title_format and issue_format.
//
// "{{" and "}}" produce literal braces. Any other brace that does not form a
// known placeholder is an error.
package placeholder

import (
	"errors"
	"fmt"
	"strings"
)

// TemplateError reports a template that could not be rendered.
type TemplateError struct {
	Template    string
	Placeholder string
	Reason      string
}

func (e *TemplateError) Error() string {
	if e.Placeholder != "" {
		return fmt.Sprintf("template %q: %s {%s}", e.Template, e.Reason, e.Placeholder)
	}
	return fmt.Sprintf("template %q: %s", e.Template, e.Reason)
}

// IsTemplateError returns true if the error is a TemplateError.
func IsTemplateError(err error) bool {
	var te *TemplateError
	return errors.As(err, &te)
}

// Format renders tmpl, replacing each {name} with vars[name].
func Format(tmpl string, vars map[string]string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(tmpl))

	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				sb.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", &TemplateError{Template: tmpl, Reason: "unterminated placeholder"}
			}
			name := tmpl[i+1 : i+1+end]
			if name == "" {
				return "", &TemplateError{Template: tmpl, Reason: "empty placeholder"}
			}
			if strings.ContainsRune(name, '{') {
				return "", &TemplateError{Template: tmpl, Reason: "unterminated placeholder"}
			}
			value, ok := vars[name]
			if !ok {
				return "", &TemplateError{Template: tmpl, Placeholder: name, Reason: "unknown placeholder"}
			}
			sb.WriteString(value)
			i += end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				sb.WriteByte('}')
				i++
				continue
			}
			return "", &TemplateError{Template: tmpl, Reason: "unmatched '}'"}
		default:
			sb.WriteByte(c)
		}
	}

	return sb.String(), nil
}

// Check validates tmpl against the allowed placeholder names without rendering.
func Check(tmpl string, allowed ...string) error {
	vars := make(map[string]string, len(allowed))
	for _, name := range allowed {
		vars[name] = ""
	}
	_, err := Format(tmpl, vars)
	return err
}
