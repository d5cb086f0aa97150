package whatsapp

import (
	"strings"

	"github.com/blacktop/postfmt/internal/postfmt"
)

const lineWidth = 65

// markup holds the emphasis characters WhatsApp would otherwise interpret.
var markup = strings.NewReplacer("*", "", "_", "", "~", "", "`", "")

// Formatter implements postfmt.Formatter for WhatsApp messages.
type Formatter struct{}

// New returns the WhatsApp strategy.
func New() postfmt.Formatter { return Formatter{} }

// Info returns the render hints for WhatsApp.
func (Formatter) Info() postfmt.Info {
	return postfmt.Info{
		Platform:    postfmt.WhatsApp,
		DisplayName: "WhatsApp",
		Tip:         "Mobile messaging",
		Mockup:      "mobile",
	}
}

// Format implements postfmt.Formatter.
func (Formatter) Format(text string) postfmt.FormattedContent { return Format(text) }

// Format strips emphasis markup and wraps text into short, spaced lines.
// Words wider than a line are kept whole on a line of their own.
func Format(text string) postfmt.FormattedContent {
	if strings.TrimSpace(text) == "" {
		return postfmt.Empty(nil)
	}

	words := postfmt.Words(markup.Replace(text))
	lines := postfmt.Pack(words, lineWidth, func(word string) string { return word })
	return postfmt.New(strings.Join(lines, "\n\n"))
}
