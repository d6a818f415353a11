/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokensets.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokensets/cmd/components"
	"bennypowers.dev/tokensets/cmd/list"
	"bennypowers.dev/tokensets/cmd/rename"
	"bennypowers.dev/tokensets/cmd/resolve"
	"bennypowers.dev/tokensets/cmd/sets"
	"bennypowers.dev/tokensets/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "tokensets",
	Short: "Manage design token sets and their aliases",
	Long: `tokensets manages a document of named design token sets: creating,
editing, renaming and reordering tokens and sets, resolving alias
references across active sets, and extracting component part styles
from annotated node documents.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("document", "d", "", "Token document file (default: from .config/tokensets.yaml)")
	rootCmd.PersistentFlags().String("prefix", "", "CSS variable prefix for display output")
	cobra.CheckErr(viper.BindPFlag("document", rootCmd.PersistentFlags().Lookup("document")))
	cobra.CheckErr(viper.BindPFlag("prefix", rootCmd.PersistentFlags().Lookup("prefix")))

	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(rename.Cmd)
	rootCmd.AddCommand(sets.Cmd)
	rootCmd.AddCommand(components.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
