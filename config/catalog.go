/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	_ "embed"
	"encoding/json"

	"bennypowers.dev/tokensets/token"
)

//go:embed default.json
var defaultCatalogJSON []byte

// Catalog is the built-in default token catalog. It seeds new sessions
// and supplies the group prefixes stripped from extracted component
// references. It is read-only configuration: consumers receive it
// explicitly rather than reaching for a package singleton.
type Catalog struct {
	sets map[string][]token.Token
}

// DefaultCatalog parses the embedded default token document.
func DefaultCatalog() (*Catalog, error) {
	var sets map[string][]token.Token
	if err := json.Unmarshal(defaultCatalogJSON, &sets); err != nil {
		return nil, err
	}
	return &Catalog{sets: sets}, nil
}

// Tokens returns the catalog's tokens for the named set.
func (c *Catalog) Tokens(set string) []token.Token {
	return append([]token.Token(nil), c.sets[set]...)
}

// Prefixes returns the top-level group names of the catalog's global
// set, in no particular order.
func (c *Catalog) Prefixes() []string {
	seen := map[string]bool{}
	var prefixes []string
	for _, t := range c.sets["global"] {
		group := t.TopLevelGroup()
		if !seen[group] {
			seen[group] = true
			prefixes = append(prefixes, group)
		}
	}
	return prefixes
}
