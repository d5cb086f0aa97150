package instagram

import (
	"strings"

	"github.com/blacktop/postfmt/internal/postfmt"
)

const (
	// leadInChars is roughly where Instagram folds a caption behind "more".
	leadInChars       = 125
	suggestedHashtags = 30
)

var hashtags = []string{"#inspiration", "#motivation", "#lifestyle", "#creative", "#instagood", "#photooftheday"}

// Formatter implements postfmt.Formatter for Instagram captions.
type Formatter struct{}

// New returns the Instagram strategy.
func New() postfmt.Formatter { return Formatter{} }

// Info returns the render hints for Instagram.
func (Formatter) Info() postfmt.Info {
	return postfmt.Info{
		Platform:    postfmt.Instagram,
		DisplayName: "Instagram",
		Tip:         "Visual storytelling platform",
		Mockup:      "mobile",
	}
}

// Format implements postfmt.Formatter.
func (Formatter) Format(text string) postfmt.FormattedContent { return Format(text) }

// Format keeps the caption's lead-in verbatim and tidies the rest into
// spaced paragraphs.
func Format(text string) postfmt.FormattedContent {
	if strings.TrimSpace(text) == "" {
		return postfmt.Empty(nil)
	}

	caption := postfmt.Head(text, leadInChars)
	if rest := postfmt.Tail(text, leadInChars); rest != "" {
		caption += "\n\n" + strings.Join(postfmt.Lines(rest), "\n\n")
	}

	out := postfmt.New(caption)
	out.Hashtags = append([]string(nil), hashtags[:min(suggestedHashtags, len(hashtags))]...)
	return out
}
