/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package session wires configuration, document discovery, and store
// loading for the CLI commands. A session's store starts from the
// persisted document when one is found, or from the built-in default
// catalog otherwise.
package session

import (
	"errors"
	"fmt"
	"os"

	"bennypowers.dev/tokensets/config"
	"bennypowers.dev/tokensets/fs"
	"bennypowers.dev/tokensets/parser"
	"bennypowers.dev/tokensets/storage"
	"bennypowers.dev/tokensets/store"
)

// Session holds the live state for one CLI invocation.
type Session struct {
	FS           fs.FileSystem
	Config       *config.Config
	Catalog      *config.Catalog
	DocumentPath string
	Store        *store.Store
}

// Open loads config from rootDir and the token document. documentArg
// takes precedence over the configured document path. With neither, a
// fresh store is seeded from the default catalog.
func Open(filesystem fs.FileSystem, rootDir, documentArg string) (*Session, error) {
	cfg := config.LoadOrDefault(filesystem, rootDir)
	catalog, err := config.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load default catalog: %w", err)
	}

	s := &Session{
		FS:      filesystem,
		Config:  cfg,
		Catalog: catalog,
	}

	path := documentArg
	if path == "" {
		matches, err := cfg.ExpandDocument(filesystem, rootDir)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			path = matches[0]
		}
	}

	if path == "" {
		s.Store = store.New(store.Set{
			Name:   parser.LegacySetName,
			Tokens: catalog.Tokens(parser.LegacySetName),
		})
		return s, nil
	}

	tokens, err := parser.Load(filesystem, path)
	if err != nil {
		return nil, err
	}
	s.DocumentPath = path
	s.Store = tokens
	return s, nil
}

// OpenCwd opens a session rooted at the current working directory.
func OpenCwd(documentArg string) (*Session, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return Open(fs.NewOSFileSystem(), cwd, documentArg)
}

// Persist writes the store back to the document and dispatches the
// sync payload to the configured storage providers. The in-memory
// mutation is already applied; provider failures are reported by the
// storage layer and never propagate here.
func (s *Session) Persist() error {
	if s.DocumentPath == "" {
		return errors.New("no token document to write: pass a document path or configure one")
	}
	if err := parser.Save(s.FS, s.DocumentPath, s.Store); err != nil {
		return err
	}
	if s.Config.SyncFile != "" {
		storage.Update(s.Store, s.Config.Settings(),
			storage.NewLocalProvider(s.FS, s.Config.SyncFile))
	}
	return nil
}
