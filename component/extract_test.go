/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package component_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokensets/component"
)

// node builds a DocumentNode with JSON-encoded annotation values.
func node(nodeType string, data map[string]any, children ...*component.DocumentNode) *component.DocumentNode {
	encoded := make(map[string]string, len(data))
	for k, v := range data {
		raw, err := json.Marshal(v)
		if err != nil {
			panic(err)
		}
		encoded[k] = string(raw)
	}
	return &component.DocumentNode{
		NodeType:   nodeType,
		Data:       encoded,
		ChildNodes: children,
	}
}

func state(key, variant string) map[string]any {
	st := map[string]any{"role": "parent", "key": key}
	if variant != "" {
		st["variant"] = variant
	}
	return map[string]any{component.StateKey: st}
}

func merge(a, b map[string]any) map[string]any {
	out := map[string]any{}
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func TestExtract_NestedParts(t *testing.T) {
	root := node("FRAME", nil,
		node("FRAME", merge(state("Dropdown", ""), map[string]any{"fill": "gray.100"})),
		node("FRAME", merge(state("Dropdown.Item", ""), map[string]any{"fill": "white"})),
	)

	parts := component.Extract(root, nil)

	require.Contains(t, parts, "Dropdown")
	dropdown := parts["Dropdown"]
	assert.Equal(t, "gray.100", dropdown.BaseStyles["fill"])

	require.Contains(t, dropdown.Parts, "Item")
	assert.Equal(t, "white", dropdown.Parts["Item"].BaseStyles["fill"])
}

func TestExtract_VariantMerge(t *testing.T) {
	root := node("FRAME", nil,
		node("FRAME", merge(state("Button", ""), map[string]any{"fill": "blue.500"})),
		node("FRAME", merge(state("Button", "hover"), map[string]any{"fill": "blue.700"})),
	)

	parts := component.Extract(root, nil)

	button := parts["Button"]
	assert.Equal(t, "blue.500", button.BaseStyles["fill"])
	require.Contains(t, button.Variants, "hover")
	assert.Equal(t, "blue.700", button.Variants["hover"]["fill"])
}

func TestExtract_DedupesVariantAgainstBase(t *testing.T) {
	root := node("FRAME", nil,
		node("FRAME", merge(state("Button", ""), map[string]any{"color": "a"})),
		node("FRAME", merge(state("Button", "hover"), map[string]any{"color": "a", "size": "b"})),
	)

	parts := component.Extract(root, nil)

	hover := parts["Button"].Variants["hover"]
	assert.Equal(t, map[string]string{"size": "b"}, hover,
		"variant entry matching base is removed")
}

func TestExtract_KeepsDifferingVariantValue(t *testing.T) {
	root := node("FRAME", nil,
		node("FRAME", merge(state("Button", ""), map[string]any{"color": "a"})),
		node("FRAME", merge(state("Button", "hover"), map[string]any{"color": "c"})),
	)

	parts := component.Extract(root, nil)

	assert.Equal(t, map[string]string{"color": "c"}, parts["Button"].Variants["hover"])
}

func TestExtract_DedupeUsesOwnBaseNotAncestors(t *testing.T) {
	root := node("FRAME", nil,
		node("FRAME", merge(state("Card", ""), map[string]any{"color": "a"})),
		node("FRAME", merge(state("Card.Header", "compact"), map[string]any{"color": "a"})),
	)

	parts := component.Extract(root, nil)

	header := parts["Card"].Parts["Header"]
	assert.Equal(t, map[string]string{"color": "a"}, header.Variants["compact"],
		"variants dedupe against their immediate part only")
}

func TestExtract_TextColorFromDescendants(t *testing.T) {
	root := node("FRAME", nil,
		node("FRAME", state("Button", ""),
			node("FRAME", nil,
				node("TEXT", map[string]any{"fill": "gray.900"}),
			),
		),
	)

	parts := component.Extract(root, nil)

	assert.Equal(t, "gray.900", parts["Button"].BaseStyles["textColor"])
}

func TestExtract_StopsAtNestedComponentRole(t *testing.T) {
	root := node("FRAME", nil,
		node("FRAME", state("Dropdown", ""),
			node("FRAME", state("Badge", ""),
				node("TEXT", map[string]any{"fill": "red.500"}),
			),
		),
	)

	parts := component.Extract(root, nil)

	assert.NotContains(t, parts["Dropdown"].BaseStyles, "textColor",
		"a nested component's internal text color belongs to that component")
	assert.Equal(t, "red.500", parts["Badge"].BaseStyles["textColor"])
}

func TestExtract_StripsCatalogPrefix(t *testing.T) {
	root := node("FRAME", nil,
		node("FRAME", merge(state("Button", ""), map[string]any{"fill": "colors.gray.100"})),
	)

	parts := component.Extract(root, []string{"colors", "sizing"})

	assert.Equal(t, "gray.100", parts["Button"].BaseStyles["fill"])
}

func TestStripPrefix(t *testing.T) {
	prefixes := []string{"colors", "sizing"}
	tests := []struct {
		value    string
		expected string
	}{
		{"colors.gray.100", "gray.100"},
		{"sizing.md", "md"},
		{"colors.sizing.md", "md"},
		{"sizing.colors.md", "colors.md"},
		{"colorscheme.dark", "colorscheme.dark"},
		{"gray.100", "gray.100"},
		{"colors", "colors"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := component.StripPrefix(tt.value, prefixes); got != tt.expected {
				t.Errorf("StripPrefix(%q) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestExtract_RootDiscarded(t *testing.T) {
	root := node("FRAME", merge(state("Page", ""), map[string]any{"fill": "white"}))

	parts := component.Extract(root, nil)

	require.Len(t, parts, 1)
	assert.Contains(t, parts, "Page", "annotated root contributes a part, the synthetic root does not appear")
}
