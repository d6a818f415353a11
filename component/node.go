/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package component reconstructs component part hierarchies from
// per-node style annotations in a host document.
package component

import "encoding/json"

// StateKey is the reserved annotation key identifying a node as a
// component part. Every other annotation key is a style property name
// whose value is a JSON-encoded token reference string.
const StateKey = "componentState"

// Node is the host-document contract: a tree node exposing key/value
// annotation storage and its children. The extractor only reads.
type Node interface {
	// PluginData returns the raw annotation stored under key, or "".
	PluginData(key string) string

	// PluginDataKeys returns all annotation keys present on the node.
	PluginDataKeys() []string

	// Children returns the node's child nodes.
	Children() []Node

	// IsText reports whether this is a text node.
	IsText() bool
}

// State is the decoded componentState annotation.
type State struct {
	// Role marks the node's part in a component ("parent" for a
	// component root).
	Role string `json:"role"`

	// Key is the dot-delimited part path, e.g. "Dropdown.Item".
	Key string `json:"key"`

	// Variant, when set, attributes the node's styles to a named
	// variant instead of the part's base styles.
	Variant string `json:"variant,omitempty"`
}

// stateOf decodes a node's componentState annotation. The second
// return is false when the node carries none or it does not parse.
func stateOf(n Node) (State, bool) {
	raw := n.PluginData(StateKey)
	if raw == "" {
		return State{}, false
	}
	var st State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return State{}, false
	}
	return st, true
}

// DocumentNode is a JSON-serializable node tree, used when the host
// document is exchanged as a file rather than traversed in place.
type DocumentNode struct {
	NodeType   string            `json:"type,omitempty"`
	Data       map[string]string `json:"pluginData,omitempty"`
	ChildNodes []*DocumentNode   `json:"children,omitempty"`
}

// PluginData implements Node.
func (n *DocumentNode) PluginData(key string) string {
	return n.Data[key]
}

// PluginDataKeys implements Node.
func (n *DocumentNode) PluginDataKeys() []string {
	keys := make([]string, 0, len(n.Data))
	for k := range n.Data {
		keys = append(keys, k)
	}
	return keys
}

// Children implements Node.
func (n *DocumentNode) Children() []Node {
	children := make([]Node, len(n.ChildNodes))
	for i, c := range n.ChildNodes {
		children[i] = c
	}
	return children
}

// IsText implements Node.
func (n *DocumentNode) IsText() bool {
	return n.NodeType == "TEXT"
}
