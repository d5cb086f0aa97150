package twitter

import (
	"fmt"
	"strings"

	"github.com/blacktop/postfmt/internal/postfmt"
)

const (
	tweetChars   = 280
	// segmentChars leaves headroom for the "n/N" thread prefix.
	segmentChars = 270
)

// Formatter implements postfmt.Formatter for X (Twitter) threads.
type Formatter struct{}

// New returns the Twitter/X strategy.
func New() postfmt.Formatter { return Formatter{} }

// Info returns the render hints for X.
func (Formatter) Info() postfmt.Info {
	return postfmt.Info{
		Platform:    postfmt.Twitter,
		DisplayName: "Twitter/X",
		Tip:         "Microblogging platform",
		Mockup:      "browser",
	}
}

// Format implements postfmt.Formatter.
func (Formatter) Format(text string) postfmt.FormattedContent { return Format(text) }

// Format packs text into a numbered thread of tweets.
func Format(text string) postfmt.FormattedContent {
	if strings.TrimSpace(text) == "" {
		return postfmt.Empty(postfmt.IntPtr(tweetChars))
	}

	tweets := postfmt.Pack(postfmt.Words(text), segmentChars, truncateWord)
	if len(tweets) > 1 {
		for i, tweet := range tweets {
			tweets[i] = fmt.Sprintf("%d/%d\n\n%s", i+1, len(tweets), tweet)
		}
	}

	out := postfmt.New(strings.Join(tweets, postfmt.ThreadSeparator))
	out.MaxChars = postfmt.IntPtr(len(tweets) * tweetChars)
	out.Segments = tweets
	return out
}

func truncateWord(word string) string {
	return postfmt.Head(word, segmentChars) + "..."
}
