/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser reads and writes token documents.
//
// A token document is either a mapping from set name to token
// sequence, or a bare token array: the legacy single-set form, parsed
// as the implicit set "global". Set order in the mapping is
// significant and preserved. JSON documents may carry comments (JSONC)
// and YAML documents are supported alongside.
package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokensets/fs"
	"bennypowers.dev/tokensets/store"
	"bennypowers.dev/tokensets/token"
)

// LegacySetName is the implicit set name for bare-array documents.
const LegacySetName = "global"

// Parse decodes a token document into ordered sets.
func Parse(data []byte) ([]store.Set, error) {
	if isLikelyJSON(data) {
		return parseJSON(jsonc.ToJSON(data))
	}
	return parseYAML(data)
}

// Load reads and parses the document at path into a fresh store.
func Load(filesystem fs.FileSystem, path string) (*store.Store, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sets, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store.New(sets...), nil
}

// Save serializes the store's sets and writes them to path.
func Save(filesystem fs.FileSystem, path string, s *store.Store) error {
	data, err := Serialize(s)
	if err != nil {
		return err
	}
	return filesystem.WriteFile(path, data, 0644)
}

// Serialize renders the store's sets as an ordered JSON mapping.
func Serialize(s *store.Store) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	sets := s.Sets()
	for i, set := range sets {
		name, err := json.Marshal(set.Name)
		if err != nil {
			return nil, err
		}
		tokens := set.Tokens
		if tokens == nil {
			tokens = []token.Token{}
		}
		body, err := json.MarshalIndent(tokens, "  ", "  ")
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(name)
		buf.WriteString(": ")
		buf.Write(body)
		if i < len(sets)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// isLikelyJSON checks whether data appears to be JSON rather than
// YAML: the first significant byte is '{' or '['.
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r', 0xEF, 0xBB, 0xBF:
			continue
		case '{', '[':
			return true
		default:
			return false
		}
	}
	return false
}

// parseJSON decodes the mapping form with a token stream so set order
// survives, falling back to the legacy array form.
func parseJSON(data []byte) ([]store.Set, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var tokens []token.Token
		if err := json.Unmarshal(data, &tokens); err != nil {
			return nil, fmt.Errorf("failed to parse token document: %w", err)
		}
		return []store.Set{{Name: LegacySetName, Tokens: tokens}}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	open, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse token document: %w", err)
	}
	if open != json.Delim('{') {
		return nil, fmt.Errorf("token document root must be an object or array")
	}

	var sets []store.Set
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse token document: %w", err)
		}
		name, ok := key.(string)
		if !ok {
			return nil, fmt.Errorf("token document has non-string set name %v", key)
		}
		var tokens []token.Token
		if err := dec.Decode(&tokens); err != nil {
			return nil, fmt.Errorf("failed to parse token set %q: %w", name, err)
		}
		sets = append(sets, store.Set{Name: name, Tokens: tokens})
	}
	return sets, nil
}

// parseYAML decodes YAML documents through yaml.Node, which preserves
// mapping key order.
func parseYAML(data []byte) ([]store.Set, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML token document: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]

	if root.Kind == yaml.SequenceNode {
		var tokens []token.Token
		if err := root.Decode(&tokens); err != nil {
			return nil, fmt.Errorf("failed to parse token document: %w", err)
		}
		return []store.Set{{Name: LegacySetName, Tokens: tokens}}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("token document root must be a mapping or sequence")
	}

	var sets []store.Set
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		var tokens []token.Token
		if err := root.Content[i+1].Decode(&tokens); err != nil {
			return nil, fmt.Errorf("failed to parse token set %q: %w", name, err)
		}
		sets = append(sets, store.Set{Name: name, Tokens: tokens})
	}
	return sets, nil
}
