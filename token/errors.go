/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "errors"

// Sentinel errors for token set and resolution operations.
var (
	// ErrUnknownTokenSet indicates an operation referenced a token set
	// name that does not exist in the store.
	ErrUnknownTokenSet = errors.New("unknown token set")

	// ErrUnresolvedReference indicates an alias referenced a token name
	// not present in any active set.
	ErrUnresolvedReference = errors.New("unresolved token reference")

	// ErrCircularReference indicates an alias chain revisited a name.
	ErrCircularReference = errors.New("circular reference detected")
)
