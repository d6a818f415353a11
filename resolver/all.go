/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"bennypowers.dev/tokensets/store"
)

// Result is one token's resolution outcome. Exactly one of Value and
// Err is meaningful: a broken alias in one token never prevents the
// rest of the store from resolving.
type Result struct {
	Set   string
	Name  string
	Type  string
	Raw   any
	Value any
	Err   error
}

// ResolveAll resolves every token in every set against the used-set
// view, in set order then token order.
func ResolveAll(s *store.Store) []Result {
	flat := FlattenUsed(s)
	var results []Result
	for _, set := range s.Sets() {
		for _, t := range set.Tokens {
			value, err := Resolve(t.Value, flat)
			results = append(results, Result{
				Set:   set.Name,
				Name:  t.Name,
				Type:  t.Type,
				Raw:   t.Value,
				Value: value,
				Err:   err,
			})
		}
	}
	return results
}
