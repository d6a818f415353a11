/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"reflect"
	"testing"

	"bennypowers.dev/tokensets/token"
)

func TestContainsReference(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"{color.primary}", true},
		{"1px solid {color.border}", true},
		{"#FF6B35", false},
		{"{unterminated", false},
		{"unopened}", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := token.ContainsReference(tt.value); got != tt.expected {
				t.Errorf("ContainsReference(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestExtractRefs(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{
			name:     "single reference",
			value:    "{color.primary}",
			expected: []string{"color.primary"},
		},
		{
			name:     "multiple references",
			value:    "{spacing.sm} {spacing.md}",
			expected: []string{"spacing.sm", "spacing.md"},
		},
		{
			name:     "no references",
			value:    "16px",
			expected: []string{},
		},
		{
			name:     "malformed is literal text",
			value:    "{color.primary",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := token.ExtractRefs(tt.value); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractRefs(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestIsSingleReference(t *testing.T) {
	if name, ok := token.IsSingleReference("{color.primary}"); !ok || name != "color.primary" {
		t.Errorf("expected single reference color.primary, got %q, %v", name, ok)
	}
	if _, ok := token.IsSingleReference("1px {color.primary}"); ok {
		t.Error("embedded reference should not count as single")
	}
	if _, ok := token.IsSingleReference("plain"); ok {
		t.Error("plain value should not count as single reference")
	}
}

func TestReplaceReference(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		oldName  string
		newName  string
		expected string
	}{
		{
			name:     "whole reference rewritten",
			value:    "{color.bg}",
			oldName:  "color.bg",
			newName:  "color.surface",
			expected: "{color.surface}",
		},
		{
			name:     "similar prefix untouched",
			value:    "{color.bg2}",
			oldName:  "color.bg",
			newName:  "color.surface",
			expected: "{color.bg2}",
		},
		{
			name:     "longer name untouched",
			value:    "{color.background}",
			oldName:  "color.bg",
			newName:  "color.surface",
			expected: "{color.background}",
		},
		{
			name:     "embedded reference rewritten in place",
			value:    "1px solid {color.bg}",
			oldName:  "color.bg",
			newName:  "color.surface",
			expected: "1px solid {color.surface}",
		},
		{
			name:     "only matching reference rewritten",
			value:    "{color.bg} {color.fg}",
			oldName:  "color.bg",
			newName:  "color.surface",
			expected: "{color.surface} {color.fg}",
		},
		{
			name:     "malformed reference passes through",
			value:    "{color.bg",
			oldName:  "color.bg",
			newName:  "color.surface",
			expected: "{color.bg",
		},
		{
			name:     "non-reference content untouched",
			value:    "color.bg",
			oldName:  "color.bg",
			newName:  "color.surface",
			expected: "color.bg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := token.ReplaceReference(tt.value, tt.oldName, tt.newName)
			if got != tt.expected {
				t.Errorf("ReplaceReference(%q, %q, %q) = %q, want %q",
					tt.value, tt.oldName, tt.newName, got, tt.expected)
			}
		})
	}
}

func TestReplaceReferencesInValue(t *testing.T) {
	t.Run("structured value", func(t *testing.T) {
		value := map[string]any{
			"color": "{colors.gray.900}",
			"blur":  "4",
		}
		got := token.ReplaceReferencesInValue(value, "colors.gray.900", "colors.ink")
		expected := map[string]any{
			"color": "{colors.ink}",
			"blur":  "4",
		}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("got %v, want %v", got, expected)
		}
	})

	t.Run("sequence value", func(t *testing.T) {
		value := []any{
			map[string]any{"color": "{colors.gray.900}"},
			map[string]any{"color": "{colors.gray.500}"},
		}
		got := token.ReplaceReferencesInValue(value, "colors.gray.900", "colors.ink")
		expected := []any{
			map[string]any{"color": "{colors.ink}"},
			map[string]any{"color": "{colors.gray.500}"},
		}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("got %v, want %v", got, expected)
		}
	})

	t.Run("non-string leaf passes through", func(t *testing.T) {
		got := token.ReplaceReferencesInValue(42, "a", "b")
		if got != 42 {
			t.Errorf("got %v, want 42", got)
		}
	})
}
