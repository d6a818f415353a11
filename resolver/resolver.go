/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver computes concrete token values by following alias
// chains across the active token sets.
package resolver

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokensets/store"
	"bennypowers.dev/tokensets/token"
)

// FlattenUsed builds the layered name-to-token view of the store's
// used sets. Sets are layered in the store's set order, later sets
// overriding earlier ones for same-named tokens. The used-set
// collection only decides membership, never precedence.
func FlattenUsed(s *store.Store) map[string]token.Token {
	flat := make(map[string]token.Token)
	for _, name := range s.SetNames() {
		if !s.IsUsed(name) {
			continue
		}
		tokens, err := s.Tokens(name)
		if err != nil {
			continue
		}
		for _, t := range tokens {
			flat[t.Name] = t
		}
	}
	return flat
}

// Resolve computes the concrete value for an arbitrary token value
// against the flattened token view. Scalar strings are resolved
// reference by reference; structured and sequence values are resolved
// per leaf property. A reference to an unknown name yields
// token.ErrUnresolvedReference; a chain that revisits a name yields
// token.ErrCircularReference. Resolution failures carry the failing
// name and never hang or substitute an empty value.
func Resolve(value any, flat map[string]token.Token) (any, error) {
	return resolveValue(value, flat, nil)
}

// ResolveName resolves the named token from the flattened view.
func ResolveName(name string, flat map[string]token.Token) (any, error) {
	t, ok := flat[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", token.ErrUnresolvedReference, name)
	}
	return resolveValue(t.Value, flat, []string{name})
}

func resolveValue(value any, flat map[string]token.Token, chain []string) (any, error) {
	switch v := value.(type) {
	case string:
		return resolveString(v, flat, chain)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, leaf := range v {
			resolved, err := resolveValue(leaf, flat, chain)
			if err != nil {
				return nil, err
			}
			out[k] = resolved
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			resolved, err := resolveValue(elem, flat, chain)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	default:
		return value, nil
	}
}

// resolveString resolves a scalar value. A value that is exactly one
// reference adopts the referenced token's full resolved value, which
// may be structured; a value with embedded references interpolates the
// string form of each resolved reference in place.
func resolveString(value string, flat map[string]token.Token, chain []string) (any, error) {
	if name, ok := token.IsSingleReference(value); ok {
		resolved, err := follow(name, flat, chain)
		if err != nil {
			return nil, err
		}
		return resolved, nil
	}
	if !token.ContainsReference(value) {
		return value, nil
	}
	var firstErr error
	out := value
	for _, name := range token.ExtractRefs(value) {
		resolved, err := follow(name, flat, chain)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out = strings.Replace(out, "{"+name+"}", fmt.Sprintf("%v", resolved), 1)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// follow resolves one referenced name, guarding against cycles with
// the chain of names already visited on this resolution path.
func follow(name string, flat map[string]token.Token, chain []string) (any, error) {
	for _, visited := range chain {
		if visited == name {
			return nil, fmt.Errorf("%w: %s", token.ErrCircularReference,
				strings.Join(append(chain, name), " -> "))
		}
	}
	t, ok := flat[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", token.ErrUnresolvedReference, name)
	}
	return resolveValue(t.Value, flat, append(chain, name))
}
