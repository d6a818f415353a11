/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package sets provides the sets command group for tokensets.
package sets

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokensets/session"
	"bennypowers.dev/tokensets/store"
)

// Cmd is the sets cobra command group.
var Cmd = &cobra.Command{
	Use:   "sets",
	Short: "Manage token sets",
	Long:  `Add, delete, rename, reorder and toggle token sets in the document.`,
}

func init() {
	Cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List token sets in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(sess *session.Session) error {
				for _, name := range sess.Store.SetNames() {
					marker := " "
					if sess.Store.IsUsed(name) {
						marker = "*"
					}
					active := ""
					if name == sess.Store.ActiveSet() {
						active = " (active)"
					}
					fmt.Printf("%s %s%s\n", marker, name, active)
				}
				return nil
			}, false)
		},
	})

	Cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add an empty token set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(func(s *store.Store) (*store.Store, error) {
				if s.Contains(args[0]) {
					return s, fmt.Errorf("token set %q already exists", args[0])
				}
				return s.AddTokenSet(args[0]), nil
			})
		},
	})

	Cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a token set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(func(s *store.Store) (*store.Store, error) {
				return s.DeleteTokenSet(args[0]), nil
			})
		},
	})

	Cmd.AddCommand(&cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a token set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(func(s *store.Store) (*store.Store, error) {
				return s.RenameTokenSet(args[0], args[1]), nil
			})
		},
	})

	Cmd.AddCommand(&cobra.Command{
		Use:   "reorder <name>...",
		Short: "Reorder token sets; sets not listed are dropped",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(func(s *store.Store) (*store.Store, error) {
				return s.SetTokenSetOrder(args), nil
			})
		},
	})

	Cmd.AddCommand(&cobra.Command{
		Use:   "activate <name>",
		Short: "Make a set the active set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(func(s *store.Store) (*store.Store, error) {
				if !s.Contains(args[0]) {
					return s, fmt.Errorf("no token set named %q", args[0])
				}
				return s.SetActiveTokenSet(args[0]), nil
			})
		},
	})

	Cmd.AddCommand(&cobra.Command{
		Use:   "toggle <name>",
		Short: "Toggle a set's membership in the used sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(func(s *store.Store) (*store.Store, error) {
				return s.ToggleUsedTokenSet(args[0]), nil
			})
		},
	})
}

// withSession opens the configured document and runs fn; with persist
// set, the document is written back afterward.
func withSession(fn func(*session.Session) error, persist bool) error {
	sess, err := session.OpenCwd(viper.GetString("document"))
	if err != nil {
		return err
	}
	if err := fn(sess); err != nil {
		return err
	}
	if persist {
		return sess.Persist()
	}
	return nil
}

// mutate applies a store transformation and persists the result.
func mutate(fn func(*store.Store) (*store.Store, error)) error {
	return withSession(func(sess *session.Session) error {
		updated, err := fn(sess.Store)
		if err != nil {
			return err
		}
		sess.Store = updated
		return nil
	}, true)
}
