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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/blacktop/postfmt/internal/analytics"
	"github.com/blacktop/postfmt/internal/announce"
	"github.com/blacktop/postfmt/internal/clipboard"
	"github.com/blacktop/postfmt/internal/config"
	"github.com/blacktop/postfmt/internal/logutil"
	"github.com/blacktop/postfmt/internal/postfmt"
	"github.com/blacktop/postfmt/internal/postfmt/engine"
	"github.com/blacktop/postfmt/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"
)

var (
	messageFlag   string
	platformsFlag []string
	outputFlag    string
	plainOutput   bool
	copyFlag      bool
	writeDir      string
	normalizeFlag bool
	pasteFlag     bool

	configPath string
	verbose    bool
	noStats    bool
)

// Ports used by the commands. Tests swap them for in-memory versions.
var (
	newClipboard = clipboard.System
	newAnnouncer = announce.NewLog
	openStore    = func(ctx context.Context, path string) (store.KV, error) {
		return store.OpenSQLite(ctx, path)
	}
)

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return newRootCommand().ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "postfmt [text]",
		Short: "Reformat text for social and messaging platforms",
		Long: "postfmt re-renders free-form text for LinkedIn, Twitter/X, Email, WhatsApp and Instagram. " +
			"Provide the text as an argument, with --message, with --paste, or on stdin.",
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              runRoot,
		Example: `  postfmt --platform twitter "A long announcement that needs a thread..."
  postfmt -p linkedin -p instagram --copy < draft.txt
  postfmt --paste -p twitter --copy
  cat draft.txt | postfmt --platform all --output json`,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default "+config.Path()+")")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&noStats, "no-stats", false, "Do not read or record usage statistics")
	cmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "text", "Output format (text, json, yaml)")

	cmd.Flags().StringVarP(&messageFlag, "message", "m", "", "Text to format")
	cmd.Flags().BoolVar(&pasteFlag, "paste", false, "Read the text to format from the clipboard")
	addPlatformFlag(cmd)
	cmd.Flags().BoolVar(&plainOutput, "plain", false, "Print only the formatted text")
	cmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the first platform's text to the clipboard")
	cmd.Flags().StringVar(&writeDir, "write", "", "Also save <platform>-formatted.txt files into this directory")
	cmd.Flags().BoolVar(&normalizeFlag, "normalize", false, "Apply Unicode NFC normalization to the input first")
	cmd.Flags().SortFlags = false

	cmd.AddCommand(
		newStatsCommand(),
		newPlatformsCommand(),
		newWatchCommand(),
		newConfigCommand(),
		newCompletionCommand(),
	)

	return cmd
}

func addPlatformFlag(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&platformsFlag, "platform", "p", nil, "Platforms to format for (linkedin, twitter, email, whatsapp, instagram, or all)")
	_ = cmd.RegisterFlagCompletionFunc("platform", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := []string{"all"}
		for _, p := range postfmt.Platforms() {
			names = append(names, string(p))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

func setup(cmd *cobra.Command, _ []string) error {
	logutil.SetOutput(cmd.ErrOrStderr())
	logutil.SetVerbose(verbose)
	if logutil.Verbose() {
		logutil.Debug("verbose logging enabled", "command", cmd.CommandPath())
	}
	return nil
}

// loadConfig merges the config file, environment and the flags cmd defines.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := config.New()
	for key, name := range map[string]string{
		"platforms": "platform",
		"output":    "output",
		"copy":      "copy",
		"normalize": "normalize",
	} {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return config.Config{}, fmt.Errorf("bind --%s: %w", name, err)
			}
		}
	}

	cfg, err := config.Load(v, configPath)
	if err != nil {
		return config.Config{}, err
	}
	if noStats {
		cfg.Stats.Enabled = false
	}
	logutil.Debug("config loaded", "file", v.ConfigFileUsed(), "platforms", cfg.Platforms, "output", cfg.Output)
	return cfg, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	message, err := resolveMessage(cmd, args)
	if err != nil {
		return err
	}
	if cfg.Normalize {
		message = norm.NFC.String(message)
	}

	platforms, err := normalizePlatforms(cfg.Platforms)
	if err != nil {
		return err
	}

	results := formatAll(message, platforms)

	if err := render(cmd.OutOrStdout(), results, cfg.Output, plainOutput); err != nil {
		return err
	}

	if writeDir != "" {
		if err := writeResults(writeDir, results); err != nil {
			return err
		}
	}

	if cfg.Copy {
		copyResult(ctx, cfg, results[0], newClipboard(), newAnnouncer())
	}

	return nil
}

func resolveMessage(cmd *cobra.Command, args []string) (string, error) {
	var message string

	if messageFlag != "" {
		message = messageFlag
	}

	if len(args) > 0 {
		if message != "" {
			return "", postfmt.InputError{Reason: "provide the text either as an argument or with --message, not both"}
		}
		message = strings.Join(args, " ")
	}

	if pasteFlag {
		if message != "" {
			return "", postfmt.InputError{Reason: "--paste cannot be combined with an argument or --message"}
		}
		text, err := newClipboard().ReadText()
		if err != nil {
			return "", postfmt.InputError{Source: "clipboard", Reason: err.Error()}
		}
		if strings.TrimSpace(text) == "" {
			return "", postfmt.InputError{Source: "clipboard", Reason: "text is required"}
		}
		return text, nil
	}

	if strings.TrimSpace(message) != "" {
		return message, nil
	}

	stdin := cmd.InOrStdin()
	if file, ok := stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return "", postfmt.InputError{Reason: "text is required"}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	message = strings.TrimRight(string(data), "\r\n")

	if strings.TrimSpace(message) == "" {
		return "", postfmt.InputError{Source: "stdin", Reason: "text is required"}
	}

	return message, nil
}

// normalizePlatforms resolves names (including "all") into platforms in
// canonical order without duplicates.
func normalizePlatforms(values []string) ([]postfmt.Platform, error) {
	if len(values) == 0 {
		return []postfmt.Platform{postfmt.LinkedIn}, nil
	}

	seen := map[postfmt.Platform]struct{}{}
	var errs []error
	for _, raw := range values {
		raw = strings.TrimSpace(strings.ToLower(raw))
		if raw == "" {
			continue
		}
		if raw == "all" {
			return postfmt.Platforms(), nil
		}
		p, err := postfmt.ParsePlatform(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		seen[p] = struct{}{}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if len(seen) == 0 {
		return nil, errors.New("no platforms selected")
	}

	result := make([]postfmt.Platform, 0, len(seen))
	for _, p := range postfmt.Platforms() {
		if _, ok := seen[p]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

type result struct {
	Platform postfmt.Platform
	Info     postfmt.Info
	Content  postfmt.FormattedContent
}

func formatAll(message string, platforms []postfmt.Platform) []result {
	results := make([]result, 0, len(platforms))
	for _, p := range platforms {
		r := result{Platform: p, Content: engine.FormatFor(message, p)}
		if formatter, ok := engine.Lookup(p); ok {
			r.Info = formatter.Info()
		}
		logutil.Debug("formatted", "platform", p, "chars", r.Content.CharCount, "posts", len(r.Content.Posts()))
		results = append(results, r)
	}
	return results
}

func writeResults(dir string, results []result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	var errs []error
	for _, r := range results {
		path := filepath.Join(dir, fmt.Sprintf("%s-formatted.txt", r.Platform))
		if err := os.WriteFile(path, []byte(r.Content.Text), 0o644); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Platform, err))
			continue
		}
		logutil.Debug("saved", "platform", r.Platform, "path", path)
	}
	return errors.Join(errs...)
}

// copyResult copies r to the clipboard and counts the copy. Failures are
// announced, never returned.
func copyResult(ctx context.Context, cfg config.Config, r result, cb clipboard.Clipboard, announcer announce.Announcer) {
	if err := cb.WriteText(r.Content.Text); err != nil {
		announcer.Announce(fmt.Sprintf("Could not copy %s content: %v", r.Platform, err), announce.Assertive, 0)
		return
	}
	announcer.Announce(fmt.Sprintf("Content copied for %s", r.Platform), announce.Polite, 0)

	if !cfg.Stats.Enabled {
		return
	}
	kv, err := openStore(ctx, cfg.Stats.Path)
	if err != nil {
		announcer.Announce(fmt.Sprintf("Usage statistics unavailable: %v", err), announce.Assertive, 0)
		return
	}
	defer kv.Close()

	if err := analytics.NewTracker(kv).RecordCopy(ctx, r.Platform, r.Content.CharCount); err != nil {
		announcer.Announce(fmt.Sprintf("Could not record usage: %v", err), announce.Assertive, 0)
	}
}
