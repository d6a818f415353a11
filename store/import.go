/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store

import (
	"reflect"

	"bennypowers.dev/tokensets/token"
)

// ImportedToken is a token staged for import whose name already exists
// in the active set, together with the value or description it would
// replace.
type ImportedToken struct {
	token.Token

	// OldValue is the active set's current value, when it differs.
	OldValue any

	// OldDescription is the active set's current description, when only
	// the description differs.
	OldDescription string
}

// ImportedTokens is the transient comparison result between an
// externally supplied style set and the active token set. It is not
// part of durable state and is cleared by ResetImportedTokens.
type ImportedTokens struct {
	New     []token.Token
	Updated []ImportedToken
}

// Imported returns the current staging area.
func (s *Store) Imported() ImportedTokens {
	return s.imported
}

// SetTokensFromStyles compares externally received styles against the
// active set and stages the result: unknown names become New entries,
// names whose value or description changed become Updated entries, and
// unchanged tokens are dropped.
func (s *Store) SetTokensFromStyles(styles map[string][]token.Token) *Store {
	active := s.sets[s.active]
	var staged ImportedTokens
	for _, received := range styles {
		for _, t := range received {
			i := indexOf(active, t.Name)
			if i < 0 {
				staged.New = append(staged.New, t)
				continue
			}
			old := active[i]
			if !reflect.DeepEqual(old.Value, t.Value) {
				staged.Updated = append(staged.Updated, ImportedToken{Token: t, OldValue: old.Value})
				continue
			}
			if t.Description != old.Description {
				staged.Updated = append(staged.Updated, ImportedToken{Token: t, OldDescription: old.Description})
			}
		}
	}
	out := s.clone()
	out.imported = staged
	return out
}

// ResetImportedTokens clears the staging area.
func (s *Store) ResetImportedTokens() *Store {
	out := s.clone()
	out.imported = ImportedTokens{}
	return out
}
