package email

import (
	"strings"

	"github.com/blacktop/postfmt/internal/postfmt"
)

const (
	salutation = "Dear [Name],"
	signoff    = "Best regards,\n[Your Name]"
)

// Formatter implements postfmt.Formatter for email bodies.
type Formatter struct{}

// New returns the email strategy.
func New() postfmt.Formatter { return Formatter{} }

// Info returns the render hints for email.
func (Formatter) Info() postfmt.Info {
	return postfmt.Info{
		Platform:    postfmt.Email,
		DisplayName: "Email",
		Tip:         "Professional communication",
		Mockup:      "email",
	}
}

// Format implements postfmt.Formatter.
func (Formatter) Format(text string) postfmt.FormattedContent { return Format(text) }

// Format wraps the non-blank lines of text, one paragraph each, in a
// salutation and signoff.
func Format(text string) postfmt.FormattedContent {
	if strings.TrimSpace(text) == "" {
		return postfmt.Empty(nil)
	}

	body := strings.Join(postfmt.Lines(text), "\n\n")
	return postfmt.New(salutation + "\n\n" + body + "\n\n" + signoff)
}
