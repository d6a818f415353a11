/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package component

import (
	"encoding/json"
	"strings"
)

// Part is one addressable piece of a UI component: its own child
// parts, named style variants, and base styles. Parts own their
// children outright; a tree is rebuilt from scratch on every
// extraction run and carries no identity between runs.
type Part struct {
	Parts      map[string]*Part             `json:"parts"`
	Variants   map[string]map[string]string `json:"variants"`
	BaseStyles map[string]string            `json:"baseStyles"`
}

func newPart() *Part {
	return &Part{
		Parts:      map[string]*Part{},
		Variants:   map[string]map[string]string{},
		BaseStyles: map[string]string{},
	}
}

// Extract walks the document tree under root, rebuilds the nested part
// hierarchy from every node annotated with componentState, and returns
// the deduplicated parts keyed by path segment. The synthetic root is
// discarded. prefixes is the injected default-catalog prefix list used
// to shorten token references (see StripPrefix).
func Extract(root Node, prefixes []string) map[string]*Part {
	res := newPart()
	for _, node := range findAnnotated(root) {
		st, ok := stateOf(node)
		if !ok {
			continue
		}
		target := res
		for _, segment := range strings.Split(st.Key, ".") {
			child, ok := target.Parts[segment]
			if !ok {
				child = newPart()
				target.Parts[segment] = child
			}
			target = child
		}
		styles := gatherStyles(node, prefixes)
		if st.Variant != "" {
			variant, ok := target.Variants[st.Variant]
			if !ok {
				variant = map[string]string{}
				target.Variants[st.Variant] = variant
			}
			for k, v := range styles {
				variant[k] = v
			}
		} else {
			for k, v := range styles {
				target.BaseStyles[k] = v
			}
		}
	}
	dedupeVariants(res)
	return res.Parts
}

// findAnnotated returns every node in the tree, root included, that
// carries a componentState annotation.
func findAnnotated(root Node) []Node {
	var found []Node
	var walk func(Node)
	walk = func(n Node) {
		if n.PluginData(StateKey) != "" {
			found = append(found, n)
		}
		for _, child := range n.Children() {
			walk(child)
		}
	}
	walk(root)
	return found
}

// gatherStyles collects the node's own style annotations plus text
// colors found on descendant text nodes. Annotation values are
// JSON-encoded token reference strings.
func gatherStyles(node Node, prefixes []string) map[string]string {
	styles := map[string]string{}
	for _, key := range node.PluginDataKeys() {
		if key == StateKey {
			continue
		}
		value, ok := decodeAnnotation(node.PluginData(key))
		if !ok {
			continue
		}
		styles[key] = StripPrefix(value, prefixes)
	}
	for k, v := range findTextStyles(node) {
		styles[k] = v
	}
	return styles
}

// findTextStyles searches descendants for text-node fill colors. The
// search does not descend into a child that declares its own component
// role: a nested component's internal text color belongs to that
// component, not to the outer part.
func findTextStyles(node Node) map[string]string {
	res := map[string]string{}
	for _, child := range node.Children() {
		if st, ok := stateOf(child); ok && st.Role != "" {
			continue
		}
		if child.IsText() {
			if color, ok := decodeAnnotation(child.PluginData("fill")); ok {
				res["textColor"] = color
			}
		} else {
			for k, v := range findTextStyles(child) {
				res[k] = v
			}
		}
	}
	return res
}

// decodeAnnotation unwraps a JSON-encoded annotation value. Values
// that do not decode to a string are skipped rather than failing the
// whole extraction.
func decodeAnnotation(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return "", false
	}
	return s, true
}

// StripPrefix removes leading default-catalog group prefixes from a
// token reference, e.g. "colors.gray.300" with a "colors" catalog
// group becomes "gray.300". Each prefix in turn is checked against the
// already-stripped value, so a value whose stripped form begins with a
// later prefix loses that one too.
func StripPrefix(value string, prefixes []string) string {
	for _, prefix := range prefixes {
		if strings.HasPrefix(value, prefix+".") {
			value = strings.TrimPrefix(value, prefix+".")
		}
	}
	return value
}

// dedupeVariants removes, depth-first for every part, any variant
// style entry whose value matches the same key in that part's own base
// styles. Variants dedupe only against their immediate part, never an
// ancestor's base styles.
func dedupeVariants(part *Part) {
	for _, variant := range part.Variants {
		for key, value := range variant {
			if base, ok := part.BaseStyles[key]; ok && base == value {
				delete(variant, key)
			}
		}
	}
	for _, child := range part.Parts {
		dedupeVariants(child)
	}
}
