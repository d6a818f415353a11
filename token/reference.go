/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"
	"regexp"
)

// referencePattern matches {token.path} alias references. An
// unterminated brace never matches, so malformed references pass
// through scanning and rewriting as literal text.
var referencePattern = regexp.MustCompile(`\{([^{}]+)\}`)

// ContainsReference returns true if the scalar value contains at least
// one alias reference.
func ContainsReference(value string) bool {
	return referencePattern.MatchString(value)
}

// ExtractRefs returns the names referenced by the scalar value, in
// order of appearance.
func ExtractRefs(value string) []string {
	matches := referencePattern.FindAllStringSubmatch(value, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, m[1])
	}
	return refs
}

// IsSingleReference reports whether the scalar value is exactly one
// alias reference and nothing else, and returns the referenced name.
func IsSingleReference(value string) (string, bool) {
	m := referencePattern.FindStringSubmatch(value)
	if m == nil || m[0] != value {
		return "", false
	}
	return m[1], true
}

// ReplaceReference rewrites references to oldName so they reference
// newName instead. Only whole-name matches are rewritten: renaming
// "color.bg" leaves a reference to "color.bg2" untouched. Non-reference
// content is preserved verbatim.
func ReplaceReference(value, oldName, newName string) string {
	return referencePattern.ReplaceAllStringFunc(value, func(match string) string {
		if match == "{"+oldName+"}" {
			return "{" + newName + "}"
		}
		return match
	})
}

// ReplaceReferencesInValue applies ReplaceReference across every value
// shape: scalar strings directly, structured values per property, and
// sequence values per element per property. Values that are not
// strings at the leaf level pass through unchanged.
func ReplaceReferencesInValue(value any, oldName, newName string) any {
	switch v := value.(type) {
	case string:
		return ReplaceReference(v, oldName, newName)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, leaf := range v {
			out[k] = ReplaceReference(stringify(leaf), oldName, newName)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			if m, ok := elem.(map[string]any); ok {
				layer := make(map[string]any, len(m))
				for k, leaf := range m {
					layer[k] = ReplaceReference(stringify(leaf), oldName, newName)
				}
				out[i] = layer
			} else {
				out[i] = ReplaceReference(stringify(elem), oldName, newName)
			}
		}
		return out
	default:
		return value
	}
}

// stringify renders a leaf value for reference rewriting, mirroring
// the document format where structured sub-properties are stored as
// their string form.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
