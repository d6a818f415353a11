/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for tokensets.
package resolve

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokensets/cmd/render"
	"bennypowers.dev/tokensets/resolver"
	"bennypowers.dev/tokensets/session"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve [name]",
	Short: "Resolve alias references to concrete values",
	Long: `Resolve one token, or every token, against the active token sets.
Unresolved and circular references are reported per token; one broken
alias never hides the rest of the document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Exit non-zero when any token fails to resolve")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")

	sess, err := session.OpenCwd(viper.GetString("document"))
	if err != nil {
		return err
	}

	if len(args) == 1 {
		flat := resolver.FlattenUsed(sess.Store)
		value, err := resolver.ResolveName(args[0], flat)
		if err != nil {
			return err
		}
		fmt.Println(render.DisplayValue(value))
		return nil
	}

	failures := 0
	for _, res := range resolver.ResolveAll(sess.Store) {
		if res.Err != nil {
			failures++
			fmt.Printf("%s/%s: %v\n", res.Set, res.Name, res.Err)
			continue
		}
		fmt.Printf("%s/%s: %s\n", res.Set, res.Name, render.DisplayValue(res.Value))
	}
	if strict && failures > 0 {
		return fmt.Errorf("%d tokens failed to resolve", failures)
	}
	return nil
}
