/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config_test

import (
	"slices"
	"testing"

	"bennypowers.dev/tokensets/config"
	"bennypowers.dev/tokensets/internal/mapfs"
)

func TestLoad_YAML(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile(".config/tokensets.yaml", `
document: tokens.json
prefix: rh
updateOnChange: false
syncFile: sync/tokens-sync.json
`, 0644)

	cfg, err := config.Load(filesystem, ".")
	if err != nil {
		t.Fatal(err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}
	if cfg.Document != "tokens.json" {
		t.Errorf("Document = %q", cfg.Document)
	}
	if cfg.Prefix != "rh" {
		t.Errorf("Prefix = %q", cfg.Prefix)
	}
	if cfg.UpdateOnChange {
		t.Error("UpdateOnChange should be overridden to false")
	}
	if !cfg.UpdateRemote {
		t.Error("UpdateRemote should keep its default")
	}
	if cfg.SyncFile != "sync/tokens-sync.json" {
		t.Errorf("SyncFile = %q", cfg.SyncFile)
	}
}

func TestLoad_JSON(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile(".config/tokensets.json", `{"document": "design/tokens.yaml", "prefix": "ds"}`, 0644)

	cfg, err := config.Load(filesystem, ".")
	if err != nil {
		t.Fatal(err)
	}
	if cfg == nil || cfg.Document != "design/tokens.yaml" || cfg.Prefix != "ds" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_YAMLTakesPriorityOverJSON(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile(".config/tokensets.yaml", "prefix: from-yaml\n", 0644)
	filesystem.AddFile(".config/tokensets.json", `{"prefix": "from-json"}`, 0644)

	cfg, err := config.Load(filesystem, ".")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prefix != "from-yaml" {
		t.Errorf("Prefix = %q, want from-yaml", cfg.Prefix)
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := config.Load(mapfs.New(), ".")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != nil {
		t.Errorf("cfg = %+v, want nil for missing config", cfg)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg := config.LoadOrDefault(mapfs.New(), ".")
	if !cfg.UpdateOnChange || !cfg.UpdateRemote {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestExpandDocument_Literal(t *testing.T) {
	cfg := &config.Config{Document: "tokens.json"}
	paths, err := cfg.ExpandDocument(mapfs.New(), ".")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 || paths[0] != "tokens.json" {
		t.Errorf("paths = %v", paths)
	}
}

func TestExpandDocument_Glob(t *testing.T) {
	filesystem := mapfs.New()
	filesystem.AddFile("design/base.tokens.json", "{}", 0644)
	filesystem.AddFile("design/dark.tokens.json", "{}", 0644)
	filesystem.AddFile("design/readme.md", "", 0644)

	cfg := &config.Config{Document: "design/*.tokens.json"}
	paths, err := cfg.ExpandDocument(mapfs.New(), ".")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 0 {
		t.Errorf("empty filesystem should match nothing, got %v", paths)
	}

	paths, err = cfg.ExpandDocument(filesystem, ".")
	if err != nil {
		t.Fatal(err)
	}
	slices.Sort(paths)
	want := []string{"design/base.tokens.json", "design/dark.tokens.json"}
	if !slices.Equal(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestExpandDocument_Empty(t *testing.T) {
	paths, err := (&config.Config{}).ExpandDocument(mapfs.New(), ".")
	if err != nil {
		t.Fatal(err)
	}
	if paths != nil {
		t.Errorf("paths = %v, want nil", paths)
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog, err := config.DefaultCatalog()
	if err != nil {
		t.Fatal(err)
	}

	tokens := catalog.Tokens("global")
	if len(tokens) == 0 {
		t.Fatal("default catalog global set is empty")
	}

	prefixes := catalog.Prefixes()
	for _, want := range []string{"colors", "sizing", "spacing"} {
		if !slices.Contains(prefixes, want) {
			t.Errorf("prefixes %v missing %q", prefixes, want)
		}
	}

	// returned slices are copies
	tokens[0].Name = "mutated"
	if catalog.Tokens("global")[0].Name == "mutated" {
		t.Error("Tokens must return a copy")
	}
}

func TestSettings(t *testing.T) {
	cfg := &config.Config{Prefix: "rh", UpdateOnChange: true}
	st := cfg.Settings()
	if st.Prefix != "rh" || !st.UpdateOnChange || st.UpdateRemote {
		t.Errorf("settings = %+v", st)
	}
}
