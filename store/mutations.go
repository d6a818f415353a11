/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokensets/token"
)

// lookup returns the named set's tokens without copying, or
// token.ErrUnknownTokenSet. The store layer does not pre-validate
// parent names beyond this missing-key check.
func (s *Store) lookup(parent string) ([]token.Token, error) {
	tokens, ok := s.sets[parent]
	if !ok {
		return nil, fmt.Errorf("%w: %q", token.ErrUnknownTokenSet, parent)
	}
	return tokens, nil
}

// indexOf returns the position of the named token, or -1.
func indexOf(tokens []token.Token, name string) int {
	for i, t := range tokens {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// CreateToken appends a token to the parent set. If a token with the
// same name already exists the store is returned unchanged: the caller
// is responsible for pre-checking uniqueness when it needs to report a
// duplicate to the user.
func (s *Store) CreateToken(parent, name string, value any, options map[string]any) (*Store, error) {
	tokens, err := s.lookup(parent)
	if err != nil {
		return s, err
	}
	if indexOf(tokens, name) >= 0 {
		return s, nil
	}
	out := s.clone()
	updated := make([]token.Token, len(tokens), len(tokens)+1)
	copy(updated, tokens)
	updated = append(updated, token.Token{Name: name, Value: value}.WithOptions(options))
	out.sets[parent] = updated
	return out, nil
}

// EditToken replaces a token's value and options in place, preserving
// its position in the set's order. When oldName is non-empty the entry
// is located by oldName (the rename case) and renames are propagated to
// every alias in every set before the new snapshot is returned. When no
// matching entry exists the store is returned unchanged.
func (s *Store) EditToken(parent, name, oldName string, value any, options map[string]any) (*Store, error) {
	tokens, err := s.lookup(parent)
	if err != nil {
		return s, err
	}
	find := name
	if oldName != "" {
		find = oldName
	}
	i := indexOf(tokens, find)
	if i < 0 {
		return s, nil
	}
	out := s.clone()
	updated := append([]token.Token(nil), tokens...)
	edited := updated[i]
	edited.Name = name
	edited.Value = value
	updated[i] = edited.WithOptions(options)
	out.sets[parent] = updated
	if oldName != "" && oldName != name {
		out = out.UpdateAliases(oldName, name)
	}
	return out, nil
}

// DuplicateToken inserts a copy of the named token immediately after
// the original, named name + "-copy". The copy's name is not itself
// checked for collisions; duplicating twice produces two entries with
// the same "-copy" name.
func (s *Store) DuplicateToken(parent, name string) (*Store, error) {
	tokens, err := s.lookup(parent)
	if err != nil {
		return s, err
	}
	i := indexOf(tokens, name)
	if i < 0 {
		return s, nil
	}
	out := s.clone()
	dup := tokens[i]
	dup.Name = name + "-copy"
	updated := make([]token.Token, 0, len(tokens)+1)
	updated = append(updated, tokens[:i+1]...)
	updated = append(updated, dup)
	updated = append(updated, tokens[i+1:]...)
	out.sets[parent] = updated
	return out, nil
}

// DeleteToken removes the token whose name exactly matches path.
func (s *Store) DeleteToken(parent, path string) (*Store, error) {
	return s.deleteMatching(parent, func(name string) bool {
		return name == path
	})
}

// DeleteTokenGroup removes every token whose name starts with the
// given prefix. The match is a literal string prefix on the
// dot-delimited name, not segment-aware: deleting "button." removes
// "button.bg" but leaves "buttonGroup.bg" alone, while deleting
// "button" would remove both.
func (s *Store) DeleteTokenGroup(parent, prefix string) (*Store, error) {
	return s.deleteMatching(parent, func(name string) bool {
		return strings.HasPrefix(name, prefix)
	})
}

func (s *Store) deleteMatching(parent string, match func(string) bool) (*Store, error) {
	tokens, err := s.lookup(parent)
	if err != nil {
		return s, err
	}
	out := s.clone()
	updated := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if !match(t.Name) {
			updated = append(updated, t)
		}
	}
	out.sets[parent] = updated
	return out, nil
}
