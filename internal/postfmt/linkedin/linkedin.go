package linkedin

import (
	"strings"

	"github.com/blacktop/postfmt/internal/postfmt"
)

const (
	maxChars           = 3000
	sentencesPerBlock  = 2
	suggestedHashtags  = 3
	paragraphSeparator = "\n\n"
)

var hashtags = []string{"#leadership", "#innovation", "#growth", "#business", "#networking", "#success"}

// Formatter implements postfmt.Formatter for LinkedIn posts.
type Formatter struct{}

// New returns the LinkedIn strategy.
func New() postfmt.Formatter { return Formatter{} }

// Info returns the render hints for LinkedIn.
func (Formatter) Info() postfmt.Info {
	return postfmt.Info{
		Platform:    postfmt.LinkedIn,
		DisplayName: "LinkedIn",
		Tip:         "Professional networking platform",
		Mockup:      "browser",
	}
}

// Format implements postfmt.Formatter.
func (Formatter) Format(text string) postfmt.FormattedContent { return Format(text) }

// Format regroups text into two-sentence paragraphs capped at 3000 characters.
func Format(text string) postfmt.FormattedContent {
	if strings.TrimSpace(text) == "" {
		return postfmt.Empty(postfmt.IntPtr(maxChars))
	}

	sentences := postfmt.Sentences(text)
	paragraphs := make([]string, 0, (len(sentences)+sentencesPerBlock-1)/sentencesPerBlock)
	for start := 0; start < len(sentences); start += sentencesPerBlock {
		end := min(start+sentencesPerBlock, len(sentences))
		paragraphs = append(paragraphs, strings.Join(sentences[start:end], ". ")+".")
	}

	out := postfmt.New(postfmt.Truncate(strings.Join(paragraphs, paragraphSeparator), maxChars))
	out.MaxChars = postfmt.IntPtr(maxChars)
	out.Hashtags = append([]string(nil), hashtags[:suggestedHashtags]...)
	return out
}
