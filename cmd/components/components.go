/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package components provides the components command for tokensets.
package components

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokensets/component"
	"bennypowers.dev/tokensets/config"
	"bennypowers.dev/tokensets/fs"
)

// Cmd is the components cobra command.
var Cmd = &cobra.Command{
	Use:   "components <nodes.json>",
	Short: "Extract component part styles from an annotated node document",
	Long: `Extract the nested component part hierarchy from a node document.
Each annotated node contributes its style annotations to a part's base
styles, or to a named variant; variant entries that repeat the part's
own base style are removed.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()
	data, err := filesystem.ReadFile(args[0])
	if err != nil {
		return err
	}

	var root component.DocumentNode
	if err := json.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("failed to parse node document %s: %w", args[0], err)
	}

	catalog, err := config.DefaultCatalog()
	if err != nil {
		return err
	}

	parts := component.Extract(&root, catalog.Prefixes())

	out, err := json.MarshalIndent(parts, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
