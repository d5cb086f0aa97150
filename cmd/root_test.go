package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blacktop/postfmt/internal/analytics"
	"github.com/blacktop/postfmt/internal/announce"
	"github.com/blacktop/postfmt/internal/clipboard"
	"github.com/blacktop/postfmt/internal/logutil"
	"github.com/blacktop/postfmt/internal/postfmt"
	"github.com/blacktop/postfmt/internal/store"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

type ports struct {
	clipboard  *clipboard.Memory
	store      *store.Memory
	announcer  *announce.Recorder
	storeOpens int
}

// isolate points config lookups at an empty directory and swaps every port
// for an in-memory version.
func isolate(t *testing.T) *ports {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	p := &ports{
		clipboard: &clipboard.Memory{},
		store:     store.NewMemory(),
		announcer: &announce.Recorder{},
	}

	oldClipboard, oldAnnouncer, oldStore := newClipboard, newAnnouncer, openStore
	newClipboard = func() clipboard.Clipboard { return p.clipboard }
	newAnnouncer = func() announce.Announcer { return p.announcer }
	openStore = func(context.Context, string) (store.KV, error) {
		p.storeOpens++
		return p.store, nil
	}
	t.Cleanup(func() {
		newClipboard, newAnnouncer, openStore = oldClipboard, oldAnnouncer, oldStore
	})
	return p
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return runContext(t, context.Background(), stdin, args...)
}

func runContext(t *testing.T, ctx context.Context, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), err
}

type decoded struct {
	Platform  string   `json:"platform"`
	Text      string   `json:"text"`
	CharCount int      `json:"charCount"`
	MaxChars  *int     `json:"maxChars"`
	Hashtags  []string `json:"hashtags"`
	Segments  []string `json:"segments"`
}

func TestRootEmail(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "-p", "email", "--plain", "Line one\nLine two\n\nLine three")
	require.NoError(t, err)
	assert.Equal(t, "Dear [Name],\n\nLine one\n\nLine two\n\nLine three\n\nBest regards,\n[Your Name]\n", out)
}

func TestRootTextOutput(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "Hello world. This is great! Another point here. And one more.")
	require.NoError(t, err)

	assert.Contains(t, out, "── LinkedIn · 62/3000 chars ──")
	assert.Contains(t, out, "Hello world. This is great.\n\nAnother point here. And one more.")
	assert.Contains(t, out, "suggested: #leadership #innovation #growth")
}

func TestRootTwitterJSON(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "--platform", "x", "-o", "json", "-m", strings.TrimSpace(strings.Repeat("word ", 100)))
	require.NoError(t, err)

	var doc decoded
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "twitter", doc.Platform)
	require.Len(t, doc.Segments, 2)
	assert.True(t, strings.HasPrefix(doc.Segments[0], "1/2\n\n"))
	assert.Equal(t, strings.Join(doc.Segments, postfmt.ThreadSeparator), doc.Text)
	require.NotNil(t, doc.MaxChars)
	assert.Equal(t, 560, *doc.MaxChars)
	assert.Equal(t, postfmt.RuneLen(doc.Text), doc.CharCount)
}

func TestRootAllPlatformsJSON(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "-p", "all", "-o", "json", "Just one line.")
	require.NoError(t, err)

	var docs []decoded
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 5)
	for i, p := range postfmt.Platforms() {
		assert.Equal(t, string(p), docs[i].Platform)
	}
	assert.Len(t, docs[4].Hashtags, 6)
}

func TestRootPlatformOrderAndDedup(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "-p", "instagram,email", "-p", "EMAIL", "-o", "json", "hello")
	require.NoError(t, err)

	var docs []decoded
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "email", docs[0].Platform)
	assert.Equal(t, "instagram", docs[1].Platform)
}

func TestRootYAML(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "-p", "whatsapp", "-o", "yaml", "*urgent* please _respond_ soon")
	require.NoError(t, err)
	assert.Contains(t, out, "platform: whatsapp")
	assert.Contains(t, out, "text: urgent please respond soon")
	assert.Contains(t, out, "charCount: 26")
}

func TestRootStdin(t *testing.T) {
	isolate(t)

	out, err := run(t, "*bold* and _italic_\n", "-p", "whatsapp", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "bold and italic\n", out)
}

func TestRootInputErrors(t *testing.T) {
	isolate(t)

	_, err := run(t, "")
	var inputErr postfmt.InputError
	require.True(t, errors.As(err, &inputErr), err)

	_, err = run(t, "", "-m", "flag", "argument")
	assert.ErrorContains(t, err, "not both")

	_, err = run(t, "   \n\n")
	assert.ErrorContains(t, err, "text is required")
}

func TestRootPaste(t *testing.T) {
	p := isolate(t)
	p.clipboard.Text = "Line one\nLine two"

	out, err := run(t, "", "--paste", "-p", "email", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "Dear [Name],\n\nLine one\n\nLine two\n\nBest regards,\n[Your Name]\n", out)

	_, err = run(t, "", "--paste", "other text")
	assert.ErrorContains(t, err, "cannot be combined")

	p.clipboard.Err = errors.New("no display")
	_, err = run(t, "", "--paste")
	var inputErr postfmt.InputError
	require.True(t, errors.As(err, &inputErr), err)
	assert.Equal(t, "clipboard", inputErr.Source)
}

func TestRootVerbose(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { logutil.SetVerbose(false) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs([]string{"-V", "-p", "email", "--plain", "hi"})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, stderr.String(), "verbose logging enabled")
	assert.Contains(t, stderr.String(), "formatted")

	_, err := run(t, "", "-p", "email", "hi")
	require.NoError(t, err)
	assert.False(t, logutil.Verbose())
}

func TestRootUnknownPlatform(t *testing.T) {
	isolate(t)

	_, err := run(t, "", "-p", "linkdin", "-p", "myspace", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean linkedin?")
	assert.Contains(t, err.Error(), `unsupported platform "myspace"`)
}

func TestRootInvalidOutput(t *testing.T) {
	isolate(t)

	_, err := run(t, "", "-o", "xml", "hello")
	assert.ErrorContains(t, err, "invalid output")
}

func TestRootCopyRecordsUsage(t *testing.T) {
	p := isolate(t)

	_, err := run(t, "", "-p", "twitter", "-p", "email", "--copy", "Ship it today")
	require.NoError(t, err)

	assert.Equal(t, "Ship it today", p.clipboard.Text)
	assert.Equal(t, []announce.Announcement{{Message: "Content copied for twitter", Priority: announce.Polite}}, p.announcer.All())

	summary, err := analytics.NewTracker(p.store).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalFormattedCount)
	assert.Equal(t, 13, summary.TotalCharacters)
	assert.Equal(t, postfmt.Twitter, summary.PlatformUsage[0].Platform)
}

func TestRootCopyFailureIsNotFatal(t *testing.T) {
	p := isolate(t)
	p.clipboard.Err = errors.New("no display")

	out, err := run(t, "", "-p", "email", "--copy", "--plain", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "hello")

	all := p.announcer.All()
	require.Len(t, all, 1)
	assert.Equal(t, announce.Assertive, all[0].Priority)
	assert.Contains(t, all[0].Message, "no display")
	assert.Zero(t, p.storeOpens)
}

func TestRootCopyWithoutStats(t *testing.T) {
	p := isolate(t)

	_, err := run(t, "", "--copy", "--no-stats", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello.", p.clipboard.Text)
	assert.Zero(t, p.storeOpens)
}

func TestRootWrite(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), "out")

	_, err := run(t, "", "-p", "linkedin,whatsapp", "--write", dir, "First. Second.")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "linkedin-formatted.txt"))
	require.NoError(t, err)
	assert.Equal(t, "First. Second.", string(data))
	assert.FileExists(t, filepath.Join(dir, "whatsapp-formatted.txt"))
}

func TestRootNormalize(t *testing.T) {
	isolate(t)
	decomposed := "cafe\u0301"

	out, err := run(t, "", "-p", "whatsapp", "-o", "json", decomposed)
	require.NoError(t, err)
	var doc decoded
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 5, doc.CharCount)

	out, err = run(t, "", "-p", "whatsapp", "-o", "json", "--normalize", decomposed)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "caf\u00e9", doc.Text)
	assert.Equal(t, 4, doc.CharCount)
}

func TestRootConfigFileAndEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("platforms = [\"email\"]\noutput = \"json\"\n"), 0o644))

	out, err := run(t, "", "--config", path, "hi")
	require.NoError(t, err)
	var doc decoded
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "email", doc.Platform)

	// flags win over the file
	out, err = run(t, "", "--config", path, "-o", "text", "--plain", "hi")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Dear [Name],"))

	t.Setenv("POSTFMT_OUTPUT", "yaml")
	out, err = run(t, "", "--config", path, "hi")
	require.NoError(t, err)
	assert.Contains(t, out, "platform: email")
}
