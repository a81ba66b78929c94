// Package prompt holds the fixed instruction templates sent to the AI
// providers and a renderer that substitutes caller-supplied fields.
package prompt

import (
	"fmt"
	"strings"

	"github.com/kalaconnect/craft-backend/pkg/types/errs"
)

// Template is opaque text with `{name}` placeholders. Fields lists every
// placeholder that must be supplied; an unfilled placeholder is a composition
// error, not a provider error.
//
// Substitution is a single pass over the template text. Caller text is
// inserted verbatim and never rescanned, so input that happens to contain a
// declared token (e.g. "{answers}") stays a literal in the rendered prompt.
type Template struct {
	Name   string
	Text   string
	Fields []string
}

// Render substitutes every declared placeholder and fails with ErrMissingField
// when a required value is absent. Empty values are allowed; only missing keys
// are rejected.
func (t Template) Render(fields map[string]string) (string, error) {
	pairs := make([]string, 0, len(t.Fields)*2)

	for _, name := range t.Fields {
		value, ok := fields[name]
		if !ok {
			return "", fmt.Errorf("prompt - Render - %s: field %q: %w", t.Name, name, errs.ErrMissingField)
		}

		pairs = append(pairs, "{"+name+"}", value)
	}

	return strings.NewReplacer(pairs...).Replace(t.Text), nil
}
