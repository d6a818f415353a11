/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package store provides the ordered collection of token sets and its
// mutation operations.
//
// A Store is an immutable snapshot: every mutation copies the parts of
// the structure it touches and returns a new *Store, so a snapshot held
// by an in-flight reader is never spliced underneath it.
package store

import (
	"fmt"

	"bennypowers.dev/tokensets/token"
)

// Set is a named, ordered sequence of tokens.
type Set struct {
	Name   string
	Tokens []token.Token
}

// Store holds the ordered mapping of set name to token sequence, the
// active set pointer, the used-set membership, and the transient
// imported-tokens staging area.
type Store struct {
	order    []string
	sets     map[string][]token.Token
	active   string
	used     []string
	imported ImportedTokens
}

// New creates a store from the given sets, in order. The first set
// becomes the active set and the only used set. With no sets, the
// store starts with a single empty set named "global".
func New(sets ...Set) *Store {
	if len(sets) == 0 {
		sets = []Set{{Name: "global"}}
	}
	s := &Store{
		order: make([]string, 0, len(sets)),
		sets:  make(map[string][]token.Token, len(sets)),
	}
	for _, set := range sets {
		if _, exists := s.sets[set.Name]; exists {
			continue
		}
		s.order = append(s.order, set.Name)
		s.sets[set.Name] = set.Tokens
	}
	s.active = s.order[0]
	s.used = []string{s.order[0]}
	return s
}

// clone returns a shallow copy: the order slice and set map are
// copied, the token slices themselves are shared until a mutation
// replaces them.
func (s *Store) clone() *Store {
	out := &Store{
		order:    append([]string(nil), s.order...),
		sets:     make(map[string][]token.Token, len(s.sets)),
		active:   s.active,
		used:     append([]string(nil), s.used...),
		imported: s.imported,
	}
	for name, tokens := range s.sets {
		out.sets[name] = tokens
	}
	return out
}

// SetNames returns the set names in order.
func (s *Store) SetNames() []string {
	return append([]string(nil), s.order...)
}

// Sets returns all sets in order. Token slices are copies.
func (s *Store) Sets() []Set {
	out := make([]Set, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, Set{
			Name:   name,
			Tokens: append([]token.Token(nil), s.sets[name]...),
		})
	}
	return out
}

// Tokens returns the tokens of the named set, or
// token.ErrUnknownTokenSet if no such set exists.
func (s *Store) Tokens(name string) ([]token.Token, error) {
	tokens, ok := s.sets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", token.ErrUnknownTokenSet, name)
	}
	return append([]token.Token(nil), tokens...), nil
}

// Contains reports whether a set with the given name exists.
func (s *Store) Contains(name string) bool {
	_, ok := s.sets[name]
	return ok
}

// ActiveSet returns the name of the currently active set.
func (s *Store) ActiveSet() string {
	return s.active
}

// UsedSets returns the names of the currently used (toggled-on) sets.
// Membership is set semantics. Layering precedence follows the store's
// set order, not this slice's order.
func (s *Store) UsedSets() []string {
	return append([]string(nil), s.used...)
}

// IsUsed reports whether the named set is toggled on.
func (s *Store) IsUsed(name string) bool {
	for _, u := range s.used {
		if u == name {
			return true
		}
	}
	return false
}

// SetActiveTokenSet returns a store with the active set changed.
func (s *Store) SetActiveTokenSet(name string) *Store {
	out := s.clone()
	out.active = name
	return out
}

// ToggleUsedTokenSet returns a store with the named set's used
// membership flipped.
func (s *Store) ToggleUsedTokenSet(name string) *Store {
	out := s.clone()
	if s.IsUsed(name) {
		used := make([]string, 0, len(out.used))
		for _, u := range out.used {
			if u != name {
				used = append(used, u)
			}
		}
		out.used = used
	} else {
		out.used = append(out.used, name)
	}
	return out
}
