// Package engine dispatches text to the formatting strategy of each platform.
package engine

import (
	"github.com/blacktop/postfmt/internal/postfmt"
	"github.com/blacktop/postfmt/internal/postfmt/email"
	"github.com/blacktop/postfmt/internal/postfmt/instagram"
	"github.com/blacktop/postfmt/internal/postfmt/linkedin"
	"github.com/blacktop/postfmt/internal/postfmt/twitter"
	"github.com/blacktop/postfmt/internal/postfmt/whatsapp"
)

// registry is written once here and only read afterwards.
var registry = map[postfmt.Platform]postfmt.Formatter{
	postfmt.LinkedIn:  linkedin.New(),
	postfmt.Twitter:   twitter.New(),
	postfmt.Email:     email.New(),
	postfmt.WhatsApp:  whatsapp.New(),
	postfmt.Instagram: instagram.New(),
}

// FormatFor formats text for platform. It never fails: a platform without a
// registered strategy gets the text back unchanged.
func FormatFor(text string, platform postfmt.Platform) postfmt.FormattedContent {
	formatter, ok := registry[platform]
	if !ok {
		return postfmt.New(text)
	}
	return formatter.Format(text)
}

// Lookup returns the strategy registered for platform.
func Lookup(platform postfmt.Platform) (postfmt.Formatter, bool) {
	formatter, ok := registry[platform]
	return formatter, ok
}

// Infos returns the render hints of every platform in canonical order.
func Infos() []postfmt.Info {
	infos := make([]postfmt.Info, 0, len(registry))
	for _, p := range postfmt.Platforms() {
		if formatter, ok := registry[p]; ok {
			infos = append(infos, formatter.Info())
		}
	}
	return infos
}
