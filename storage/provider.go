/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package storage

import (
	"encoding/json"
	"path/filepath"
	"time"

	"bennypowers.dev/tokensets/config"
	"bennypowers.dev/tokensets/fs"
	"bennypowers.dev/tokensets/internal/logger"
	"bennypowers.dev/tokensets/store"
)

// Provider persists a payload somewhere durable.
type Provider interface {
	// Name identifies the provider in warnings.
	Name() string

	// Save persists the payload.
	Save(p *Payload) error
}

// LocalProvider writes payloads as JSON files.
type LocalProvider struct {
	filesystem fs.FileSystem
	path       string
}

// NewLocalProvider creates a provider writing to path.
func NewLocalProvider(filesystem fs.FileSystem, path string) *LocalProvider {
	return &LocalProvider{filesystem: filesystem, path: path}
}

// Name implements Provider.
func (l *LocalProvider) Name() string {
	return "local"
}

// Save implements Provider.
func (l *LocalProvider) Save(p *Payload) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(l.path); dir != "." {
		if err := l.filesystem.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return l.filesystem.WriteFile(l.path, append(data, '\n'), 0644)
}

// Update builds the payload for the store's current snapshot and hands
// it to every provider. Failures are logged per provider and do not
// roll back the store or stop the remaining providers.
func Update(s *store.Store, settings config.Settings, providers ...Provider) {
	payload := BuildPayload(s, settings, time.Now())
	for _, provider := range providers {
		if err := provider.Save(payload); err != nil {
			logger.Warn("failed to persist tokens to %s storage: %v", provider.Name(), err)
		}
	}
}
