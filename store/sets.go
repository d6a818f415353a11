/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store

import "bennypowers.dev/tokensets/token"

// AddTokenSet appends an empty set with the given name. If a set with
// that name already exists the store is returned unchanged; callers
// pre-check with Contains when they need to report the duplicate.
func (s *Store) AddTokenSet(name string) *Store {
	if s.Contains(name) {
		return s
	}
	out := s.clone()
	out.order = append(out.order, name)
	out.sets[name] = nil
	return out
}

// DeleteTokenSet removes the named set. When the active set is
// deleted, the first remaining set becomes active. Used-set membership
// is left alone: a stale entry is harmless because layering iterates
// the set order.
func (s *Store) DeleteTokenSet(name string) *Store {
	if !s.Contains(name) {
		return s
	}
	out := s.clone()
	order := make([]string, 0, len(out.order)-1)
	for _, n := range out.order {
		if n != name {
			order = append(order, n)
		}
	}
	out.order = order
	delete(out.sets, name)
	if out.active == name && len(out.order) > 0 {
		out.active = out.order[0]
	}
	return out
}

// RenameTokenSet renames a set in place, preserving its position and
// contents. Renaming onto an existing set name collapses the two: the
// renamed set's contents win and the prior set's order slot is
// removed, so the order never holds the same name twice. The
// active-set pointer and used-set membership follow the rename.
func (s *Store) RenameTokenSet(oldName, newName string) *Store {
	if !s.Contains(oldName) || oldName == newName {
		return s
	}
	out := s.clone()
	order := make([]string, 0, len(out.order))
	for _, n := range out.order {
		if n == newName {
			continue
		}
		if n == oldName {
			n = newName
		}
		order = append(order, n)
	}
	out.order = order
	out.sets[newName] = out.sets[oldName]
	delete(out.sets, oldName)
	if out.active == oldName {
		out.active = newName
	}
	used := make([]string, 0, len(out.used))
	for _, n := range out.used {
		if n == oldName {
			n = newName
		}
		dup := false
		for _, u := range used {
			if u == n {
				dup = true
				break
			}
		}
		if !dup {
			used = append(used, n)
		}
	}
	out.used = used
	return out
}

// SetTokenSetOrder reorders the sets to match the given names. Names
// that do not exist are skipped; existing sets not listed are dropped.
func (s *Store) SetTokenSetOrder(names []string) *Store {
	out := s.clone()
	order := make([]string, 0, len(names))
	sets := make(map[string][]token.Token, len(names))
	for _, name := range names {
		tokens, ok := s.sets[name]
		if !ok {
			continue
		}
		order = append(order, name)
		sets[name] = tokens
	}
	out.order = order
	out.sets = sets
	return out
}
