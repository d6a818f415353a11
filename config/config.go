/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for tokensets.
package config

// Config represents the tokensets configuration.
type Config struct {
	// Document is the token document path. Globs are allowed; the
	// first match wins.
	Document string `yaml:"document" json:"document"`

	// Prefix is the CSS variable prefix used by display output.
	Prefix string `yaml:"prefix" json:"prefix"`

	// UpdateOnChange persists the document after every token mutation.
	UpdateOnChange bool `yaml:"updateOnChange" json:"updateOnChange"`

	// UpdateRemote forwards persisted documents to the remote storage
	// provider, when one is configured.
	UpdateRemote bool `yaml:"updateRemote" json:"updateRemote"`

	// SyncFile is where the flat sync payload is written after each
	// persisted mutation. Empty disables payload dispatch.
	SyncFile string `yaml:"syncFile" json:"syncFile"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		UpdateOnChange: true,
		UpdateRemote:   true,
	}
}

// Settings is the settings block carried in persistence payloads.
type Settings struct {
	Prefix         string `json:"prefix,omitempty"`
	UpdateOnChange bool   `json:"updateOnChange"`
	UpdateRemote   bool   `json:"updateRemote"`
}

// Settings returns the payload settings derived from the config.
func (c *Config) Settings() Settings {
	return Settings{
		Prefix:         c.Prefix,
		UpdateOnChange: c.UpdateOnChange,
		UpdateRemote:   c.UpdateRemote,
	}
}
