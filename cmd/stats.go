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
	"io"
	"strconv"

	"github.com/blacktop/postfmt/internal/analytics"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

const recentActivityRows = 7

var resetStats bool

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show local usage statistics",
		Long: "stats summarises how often formatted text was copied for each platform. " +
			"Statistics never leave this machine.",
		Args: cobra.NoArgs,
		RunE: runStats,
		Example: `  postfmt stats
  postfmt stats --output json
  postfmt stats --reset`,
	}
	cmd.Flags().BoolVar(&resetStats, "reset", false, "Clear all statistics")
	return cmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cfg.Stats.Enabled {
		fmt.Fprintln(cmd.OutOrStdout(), "usage statistics are disabled")
		return nil
	}

	kv, err := openStore(ctx, cfg.Stats.Path)
	if err != nil {
		return err
	}
	defer kv.Close()

	tracker := analytics.NewTracker(kv)

	if resetStats {
		if err := tracker.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "statistics cleared")
		return nil
	}

	summary, err := tracker.Summary(ctx)
	if err != nil {
		return err
	}

	switch cfg.Output {
	case "json":
		return encodeJSON(cmd.OutOrStdout(), summary)
	case "yaml":
		return encodeYAML(cmd.OutOrStdout(), summary)
	}
	renderSummary(cmd.OutOrStdout(), summary)
	return nil
}

func renderSummary(w io.Writer, s analytics.Summary) {
	if s.TotalFormattedCount == 0 {
		fmt.Fprintln(w, "No content copied yet. Format something with --copy to start tracking.")
		return
	}

	overview := newTable(w)
	overview.SetTitle("Overview")
	overview.AppendRows([]table.Row{
		{"Total copies", s.TotalFormattedCount},
		{"Total characters", s.TotalCharacters},
		{"Most active day", s.MostActiveDay},
	})
	overview.Render()
	fmt.Fprintln(w)

	usage := newTable(w)
	usage.SetTitle("Platforms")
	usage.AppendHeader(table.Row{"Platform", "Copies", "Share", "Avg chars"})
	for _, u := range s.PlatformUsage {
		usage.AppendRow(table.Row{u.Platform, u.Copies, strconv.Itoa(u.Percentage) + "%", u.AvgCharacters})
	}
	usage.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	usage.Render()

	if len(s.DailyActivity) == 0 {
		return
	}
	fmt.Fprintln(w)

	recent := newTable(w)
	recent.SetTitle("Recent activity")
	recent.AppendHeader(table.Row{"Date", "Day", "Copies"})
	for i, day := range s.DailyActivity {
		if i == recentActivityRows {
			break
		}
		recent.AppendRow(table.Row{day.Date, day.DayOfWeek, day.Copies})
	}
	recent.Render()
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}
