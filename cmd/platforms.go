/*
Copyright © 2025 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/blacktop/postfmt/internal/postfmt"
	"github.com/blacktop/postfmt/internal/postfmt/engine"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type platformRow struct {
	postfmt.Info `yaml:",inline"`
	Limit        string `json:"limit" yaml:"limit"`
}

func newPlatformsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "platforms",
		Aliases: []string{"ls"},
		Short:   "List supported platforms and their limits",
		Args:    cobra.NoArgs,
		RunE:    runPlatforms,
	}
}

func runPlatforms(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rows := make([]platformRow, 0, len(postfmt.Platforms()))
	for _, info := range engine.Infos() {
		rows = append(rows, platformRow{Info: info, Limit: describeLimit(info.Platform)})
	}

	switch cfg.Output {
	case "json":
		return encodeJSON(cmd.OutOrStdout(), rows)
	case "yaml":
		return encodeYAML(cmd.OutOrStdout(), rows)
	}

	t := newTable(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Platform", "Name", "Limit", "Layout", "About"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.Platform, row.DisplayName, row.Limit, row.Mockup, row.Tip})
	}
	t.Render()
	return nil
}

// describeLimit reports the limit a platform advertises for empty input.
func describeLimit(p postfmt.Platform) string {
	limit, ok := engine.FormatFor("", p).Limit()
	switch {
	case !ok:
		return "none"
	case p == postfmt.Twitter:
		return fmt.Sprintf("%d per post", limit)
	default:
		return fmt.Sprintf("%d", limit)
	}
}
