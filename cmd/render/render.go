/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokensets/resolver"
	"bennypowers.dev/tokensets/token"
)

// Row holds computed display values for a single token.
type Row struct {
	Set     string `json:"set"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Value   string `json:"value"`
	Error   string `json:"error,omitempty"`
	IsColor bool   `json:"-"`
}

// Rows transforms resolution results into display rows. With resolved
// set, the computed value is shown; otherwise the raw value with its
// references intact. A per-token resolution failure lands in the row's
// Error column instead of suppressing the row.
func Rows(results []resolver.Result, resolved bool) []Row {
	rows := make([]Row, 0, len(results))
	for _, res := range results {
		row := Row{
			Set:  res.Set,
			Name: res.Name,
			Type: res.Type,
		}
		if row.Type == "" {
			row.Type = "-"
		}
		if resolved && res.Err == nil {
			row.Value = DisplayValue(res.Value)
		} else {
			row.Value = DisplayValue(res.Raw)
		}
		if resolved && res.Err != nil {
			row.Error = res.Err.Error()
		}
		if res.Type == "color" {
			if _, err := csscolorparser.Parse(row.Value); err == nil {
				row.IsColor = true
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// DisplayValue renders any token value shape for display. Structured
// and sequence values are shown as compact JSON.
func DisplayValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}

// ColorSwatch returns a 24-bit ANSI block showing the color, with the
// hex value printed over it in black or white, whichever contrasts
// better with the background.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	fg := "0;0;0"
	if l, _, _ := (colorful.Color{R: c.R, G: c.G, B: c.B}).Luv(); l < 0.45 {
		fg = "255;255;255"
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm\x1b[38;2;%sm %s \x1b[0m", r, g, b, fg, c.HexString())
}

// Table renders rows as a table to stdout, grouped by set.
func Table(rows []Row) {
	if len(rows) == 0 {
		return
	}
	nameW, typeW := 4, 4
	for _, r := range rows {
		if len(r.Name) > nameW {
			nameW = len(r.Name)
		}
		if len(r.Type) > typeW {
			typeW = len(r.Type)
		}
	}
	currentSet := ""
	for _, r := range rows {
		if r.Set != currentSet {
			if currentSet != "" {
				fmt.Println()
			}
			currentSet = r.Set
			fmt.Printf("%s:\n", r.Set)
		}
		value := r.Value
		if r.Error != "" {
			value = "! " + r.Error
		} else if r.IsColor {
			value = ColorSwatch(r.Value) + " " + r.Value
		}
		fmt.Printf("  %-*s  %-*s  %s\n", nameW, r.Name, typeW, r.Type, value)
	}
}

// JSON renders rows as a JSON array to stdout.
func JSON(rows []Row) error {
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// CSS renders rows as CSS custom properties. Rows with unresolved
// structured values that would not be valid CSS are skipped.
func CSS(rows []Row, prefix string) {
	fmt.Println(":root {")
	for _, r := range rows {
		if r.Error != "" || strings.HasPrefix(r.Value, "{\"") {
			continue
		}
		name := token.Token{Name: r.Name}.CSSVariableName(prefix)
		value := convertReferences(r.Value, prefix)
		fmt.Printf("  %s: %s;\n", name, value)
	}
	fmt.Println("}")
}

// convertReferences converts {ref.path} references to var() lookups.
func convertReferences(s, prefix string) string {
	if !token.ContainsReference(s) {
		return s
	}
	for _, ref := range token.ExtractRefs(s) {
		name := token.Token{Name: ref}.CSSVariableName(prefix)
		s = strings.Replace(s, "{"+ref+"}", "var("+name+")", 1)
	}
	return s
}

// titler renders set names as markdown headings.
var titler = cases.Title(language.English)

// Markdown renders rows as markdown tables, one section per set.
func Markdown(rows []Row) {
	bySet := make(map[string][]Row)
	var setOrder []string
	for _, r := range rows {
		if _, seen := bySet[r.Set]; !seen {
			setOrder = append(setOrder, r.Set)
		}
		bySet[r.Set] = append(bySet[r.Set], r)
	}
	for i, set := range setOrder {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("## %s\n\n", titler.String(set))
		group := bySet[set]
		nameW, valW := 4, 5
		for _, r := range group {
			if len(r.Name) > nameW {
				nameW = len(r.Name)
			}
			if len(r.Value) > valW {
				valW = len(r.Value)
			}
		}
		fmt.Printf("| %-*s | %-*s |\n", nameW, "Name", valW, "Value")
		fmt.Printf("|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW))
		for _, r := range group {
			fmt.Printf("| %-*s | %-*s |\n", nameW, r.Name, valW, r.Value)
		}
	}
}
