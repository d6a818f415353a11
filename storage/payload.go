/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package storage builds persistence payloads and hands them to
// storage providers. Persistence is fire-and-forget relative to the
// in-memory store: a provider failure is reported to the user surface
// and never rolls back an applied mutation.
package storage

import (
	"bytes"
	"encoding/json"
	"time"

	"bennypowers.dev/tokensets/config"
	"bennypowers.dev/tokensets/internal/version"
	"bennypowers.dev/tokensets/store"
	"bennypowers.dev/tokensets/token"
)

// ValueEntry is a token reduced to its name and raw value.
type ValueEntry struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Payload is the flat document handed to storage providers.
type Payload struct {
	Version      string
	UpdatedAt    time.Time
	Tokens       []store.Set
	TokenValues  map[string][]ValueEntry
	UsedTokenSet []string
	Settings     config.Settings
}

// BuildPayload assembles the payload for the store's current snapshot.
func BuildPayload(s *store.Store, settings config.Settings, updatedAt time.Time) *Payload {
	sets := s.Sets()
	values := make(map[string][]ValueEntry, len(sets))
	for _, set := range sets {
		values[set.Name] = reduceToValues(set.Tokens)
	}
	return &Payload{
		Version:      version.Get(),
		UpdatedAt:    updatedAt,
		Tokens:       sets,
		TokenValues:  values,
		UsedTokenSet: s.UsedSets(),
		Settings:     settings,
	}
}

// reduceToValues strips tokens down to name/value pairs.
func reduceToValues(tokens []token.Token) []ValueEntry {
	values := make([]ValueEntry, len(tokens))
	for i, t := range tokens {
		values[i] = ValueEntry{Name: t.Name, Value: t.Value}
	}
	return values
}

// MarshalJSON renders the payload with the token sets as an ordered
// mapping. encoding/json sorts map keys, which would discard set
// order, so the tokens member is assembled by hand.
func (p *Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"version":`)
	if err := writeJSON(&buf, p.Version); err != nil {
		return nil, err
	}
	buf.WriteString(`,"updatedAt":`)
	if err := writeJSON(&buf, p.UpdatedAt); err != nil {
		return nil, err
	}
	buf.WriteString(`,"tokens":`)
	if err := writeOrderedSets(&buf, p.Tokens); err != nil {
		return nil, err
	}
	buf.WriteString(`,"tokenValues":`)
	if err := writeOrderedValues(&buf, p.Tokens, p.TokenValues); err != nil {
		return nil, err
	}
	buf.WriteString(`,"usedTokenSet":`)
	if err := writeJSON(&buf, p.UsedTokenSet); err != nil {
		return nil, err
	}
	buf.WriteString(`,"settings":`)
	if err := writeJSON(&buf, p.Settings); err != nil {
		return nil, err
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

func writeOrderedSets(buf *bytes.Buffer, sets []store.Set) error {
	buf.WriteString("{")
	for i, set := range sets {
		if i > 0 {
			buf.WriteString(",")
		}
		if err := writeJSON(buf, set.Name); err != nil {
			return err
		}
		buf.WriteString(":")
		tokens := set.Tokens
		if tokens == nil {
			tokens = []token.Token{}
		}
		if err := writeJSON(buf, tokens); err != nil {
			return err
		}
	}
	buf.WriteString("}")
	return nil
}

func writeOrderedValues(buf *bytes.Buffer, sets []store.Set, values map[string][]ValueEntry) error {
	buf.WriteString("{")
	for i, set := range sets {
		if i > 0 {
			buf.WriteString(",")
		}
		if err := writeJSON(buf, set.Name); err != nil {
			return err
		}
		buf.WriteString(":")
		entries := values[set.Name]
		if entries == nil {
			entries = []ValueEntry{}
		}
		if err := writeJSON(buf, entries); err != nil {
			return err
		}
	}
	buf.WriteString("}")
	return nil
}
