package placeholder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	vars := map[string]string{
		"version":      "1.2.3",
		"project_date": "2024-05-01",
		"issue":        "PROJ-7",
	}

	tests := map[string]struct {
		tmpl string
		want string
	}{
		"title format": {
			tmpl: "v{version} - {project_date}",
			want: "v1.2.3 - 2024-05-01",
		},
		"rst link": {
			tmpl: "`{issue} <https://www.example.com/{issue}>`_",
			want: "`PROJ-7 <https://www.example.com/PROJ-7>`_",
		},
		"no placeholders": {
			tmpl: "static",
			want: "static",
		},
		"empty": {
			tmpl: "",
			want: "",
		},
		"escaped braces": {
			tmpl: "{{literal}} {issue}",
			want: "{literal} PROJ-7",
		},
		"multibyte text": {
			tmpl: "Versión {version} ✓",
			want: "Versión 1.2.3 ✓",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := Format(tt.tmpl, vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		tmpl            string
		wantPlaceholder string
		wantReason      string
	}{
		"unknown placeholder": {
			tmpl:            "{version} {nope}",
			wantPlaceholder: "nope",
			wantReason:      "unknown placeholder",
		},
		"unterminated": {
			tmpl:       "v{version",
			wantReason: "unterminated placeholder",
		},
		"nested open brace": {
			tmpl:       "{ver{version}",
			wantReason: "unterminated placeholder",
		},
		"empty": {
			tmpl:       "v{}",
			wantReason: "empty placeholder",
		},
		"stray close": {
			tmpl:       "v}",
			wantReason: "unmatched '}'",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Format(tt.tmpl, map[string]string{"version": "1"})
			require.Error(t, err)
			assert.True(t, IsTemplateError(err))

			var te *TemplateError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, tt.tmpl, te.Template)
			assert.Equal(t, tt.wantPlaceholder, te.Placeholder)
			assert.Equal(t, tt.wantReason, te.Reason)
		})
	}
}

func TestTemplateError_Error(t *testing.T) {
	t.Parallel()

	err := &TemplateError{Template: "{x}", Placeholder: "x", Reason: "unknown placeholder"}
	assert.Equal(t, `template "{x}": unknown placeholder {x}`, err.Error())

	err = &TemplateError{Template: "}", Reason: "unmatched '}'"}
	assert.Equal(t, `template "}": unmatched '}'`, err.Error())
}

func TestCheck(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Check("{version} {project_date}", "version", "project_date"))
	assert.True(t, IsTemplateError(Check("{issue}", "version")))
}
