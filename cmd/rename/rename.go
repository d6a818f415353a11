/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package rename provides the rename command for tokensets.
package rename

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokensets/session"
	"bennypowers.dev/tokensets/store"
	"bennypowers.dev/tokensets/token"
)

// Cmd is the rename cobra command.
var Cmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a token and rewrite its aliases",
	Long: `Rename a token within a set. Every value in every set that referenced
the old name is rewritten to reference the new name before the document
is written back, so no set is left holding a dangling reference.`,
	Args: cobra.ExactArgs(2),
	RunE: run,
}

func init() {
	Cmd.Flags().String("set", "", "Set containing the token (default: first set)")
}

func run(cmd *cobra.Command, args []string) error {
	oldName, newName := args[0], args[1]
	setFlag, _ := cmd.Flags().GetString("set")

	sess, err := session.OpenCwd(viper.GetString("document"))
	if err != nil {
		return err
	}

	parent := setFlag
	if parent == "" {
		parent = sess.Store.ActiveSet()
	}

	tokens, err := sess.Store.Tokens(parent)
	if err != nil {
		return err
	}
	var subject *token.Token
	for i := range tokens {
		if tokens[i].Name == oldName {
			subject = &tokens[i]
			break
		}
	}
	if subject == nil {
		return fmt.Errorf("no token named %q in set %q", oldName, parent)
	}

	references := countReferences(sess.Store, oldName)

	updated, err := sess.Store.EditToken(parent, newName, oldName, subject.Value, nil)
	if err != nil {
		return err
	}
	sess.Store = updated

	if err := sess.Persist(); err != nil {
		return err
	}

	fmt.Printf("renamed %s to %s (%d references rewritten)\n", oldName, newName, references)
	return nil
}

// countReferences counts values across all sets that reference name.
func countReferences(s *store.Store, name string) int {
	count := 0
	for _, set := range s.Sets() {
		for _, t := range set.Tokens {
			count += referencesIn(t.Value, name)
		}
	}
	return count
}

func referencesIn(value any, name string) int {
	count := 0
	switch v := value.(type) {
	case string:
		for _, ref := range token.ExtractRefs(v) {
			if ref == name {
				count++
			}
		}
	case map[string]any:
		for _, leaf := range v {
			count += referencesIn(leaf, name)
		}
	case []any:
		for _, elem := range v {
			count += referencesIn(elem, name)
		}
	}
	return count
}
