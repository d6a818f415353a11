/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokensets.
package list

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokensets/cmd/render"
	"bennypowers.dev/tokensets/resolver"
	"bennypowers.dev/tokensets/session"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [document]",
	Short: "List tokens from a token document",
	Long:  `List all tokens across token sets with optional filtering and formatting.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().String("set", "", "Only list the named set")
	Cmd.Flags().Bool("resolved", false, "Show resolved values")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, css, markdown")
}

func run(cmd *cobra.Command, args []string) error {
	typeFilter, _ := cmd.Flags().GetString("type")
	setFilter, _ := cmd.Flags().GetString("set")
	resolved, _ := cmd.Flags().GetBool("resolved")
	format, _ := cmd.Flags().GetString("format")

	documentArg := ""
	if len(args) > 0 {
		documentArg = args[0]
	} else {
		documentArg = viper.GetString("document")
	}

	sess, err := session.OpenCwd(documentArg)
	if err != nil {
		return err
	}

	results := resolver.ResolveAll(sess.Store)
	filtered := results[:0:0]
	for _, res := range results {
		if typeFilter != "" && res.Type != typeFilter {
			continue
		}
		if setFilter != "" && res.Set != setFilter {
			continue
		}
		filtered = append(filtered, res)
	}

	rows := render.Rows(filtered, resolved)

	prefix := viper.GetString("prefix")
	if prefix == "" {
		prefix = sess.Config.Prefix
	}

	switch format {
	case "table":
		render.Table(rows)
		return nil
	case "json":
		return render.JSON(rows)
	case "css":
		render.CSS(rows, prefix)
		return nil
	case "markdown", "md":
		render.Markdown(rows)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
