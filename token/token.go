/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides design token types and reference scanning.
package token

import (
	"strings"
)

// Token represents a single named style value inside a token set.
//
// Value holds one of three shapes:
//   - string: a scalar value, possibly containing {alias} references
//   - map[string]any: a structured value keyed by sub-property name,
//     such as a shadow ({x, y, blur, spread, color, type}) or a
//     typography definition
//   - []any: a sequence of structured values, such as a multi-layer
//     shadow
type Token struct {
	// Name is the token's dot-delimited identifier (e.g., "color.primary").
	Name string `json:"name"`

	// Value is the raw token value, prior to alias resolution.
	Value any `json:"value"`

	// Type specifies the kind of token (color, boxShadow, typography, ...).
	Type string `json:"type,omitempty"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty"`

	// Options carries type-specific extra options supplied at creation.
	Options map[string]any `json:"options,omitempty"`
}

// WithOptions returns a copy of the token with the given options merged
// in. "description" and "type" keys update the corresponding fields
// rather than landing in Options.
func (t Token) WithOptions(options map[string]any) Token {
	if len(options) == 0 {
		return t
	}
	merged := make(map[string]any, len(t.Options)+len(options))
	for k, v := range t.Options {
		merged[k] = v
	}
	for k, v := range options {
		switch k {
		case "description":
			if s, ok := v.(string); ok {
				t.Description = s
				continue
			}
		case "type":
			if s, ok := v.(string); ok {
				t.Type = s
				continue
			}
		}
		merged[k] = v
	}
	if len(merged) > 0 {
		t.Options = merged
	}
	return t
}

// PathSegments returns the dot-separated segments of the token name.
func (t Token) PathSegments() []string {
	return strings.Split(t.Name, ".")
}

// TopLevelGroup returns the first segment of the token name, or the
// whole name for tokens without hierarchy.
func (t Token) TopLevelGroup() string {
	name, _, _ := strings.Cut(t.Name, ".")
	return name
}

// CSSVariableName returns the CSS custom property name for this token.
// e.g., "color.primary" with prefix "rh" yields "--rh-color-primary".
func (t Token) CSSVariableName(prefix string) string {
	name := strings.ReplaceAll(t.Name, ".", "-")
	if prefix != "" {
		prefix = strings.ReplaceAll(prefix, ".", "-")
		return "--" + prefix + "-" + name
	}
	return "--" + name
}
