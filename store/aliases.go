/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store

import (
	"bennypowers.dev/tokensets/token"
)

// UpdateAliases rewrites every reference to oldName across every token
// in every set so it references newName instead. The rewrite is
// textual and constrained to whole-reference matches; unrelated
// references and non-reference content are untouched. Rewriting never
// fails: a value that does not parse as a reference is plain text and
// passes through, so one odd token cannot abort the sweep.
func (s *Store) UpdateAliases(oldName, newName string) *Store {
	out := s.clone()
	for _, name := range out.order {
		tokens := out.sets[name]
		updated := make([]token.Token, len(tokens))
		for i, t := range tokens {
			t.Value = token.ReplaceReferencesInValue(t.Value, oldName, newName)
			updated[i] = t
		}
		out.sets[name] = updated
	}
	return out
}
