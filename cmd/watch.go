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
	"time"

	"github.com/blacktop/postfmt/internal/logutil"
	"github.com/blacktop/postfmt/internal/watch"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
)

var debounce time.Duration

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-format a file every time it is saved",
		Long: "watch prints the formatted contents of FILE and prints them again after every save, " +
			"so a draft can be edited in any editor with a live preview in the terminal.",
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
		Example: `  postfmt watch draft.txt --platform twitter
  postfmt watch notes.md -p linkedin -p instagram --plain`,
	}
	addPlatformFlag(cmd)
	cmd.Flags().BoolVar(&plainOutput, "plain", false, "Print only the formatted text")
	cmd.Flags().BoolVar(&normalizeFlag, "normalize", false, "Apply Unicode NFC normalization to the input first")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before re-formatting after a change")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	platforms, err := normalizePlatforms(cfg.Platforms)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	revision := 0
	logutil.Infof("watching %s (ctrl-c to stop)", args[0])
	logutil.Debugf("debounce %s, platforms %v", debounce, platforms)

	return watch.Watch(cmd.Context(), args[0], debounce, func(content string) {
		revision++
		if cfg.Normalize {
			content = norm.NFC.String(content)
		}
		if revision > 1 {
			headerColor.Fprintf(out, "\n━━ revision %d · %s ━━\n", revision, time.Now().Format(time.Kitchen))
		}
		if err := render(out, formatAll(content, platforms), cfg.Output, plainOutput); err != nil {
			logutil.Errorf("render: %v", err)
		}
		fmt.Fprintln(out)
	})
}
