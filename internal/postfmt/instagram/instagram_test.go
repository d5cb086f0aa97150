package instagram

import (
	"strings"
	"testing"

	"github.com/blacktop/postfmt/internal/postfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wantHashtags = []string{"#inspiration", "#motivation", "#lifestyle", "#creative", "#instagood", "#photooftheday"}

func TestFormatShortCaption(t *testing.T) {
	got := Format("Sunset at the pier")

	assert.Equal(t, "Sunset at the pier", got.Text)
	assert.Equal(t, 18, got.CharCount)
	assert.Nil(t, got.MaxChars)
	assert.Equal(t, wantHashtags, got.Hashtags)
}

func TestFormatLeadIn(t *testing.T) {
	got := Format(strings.Repeat("x", 200))

	assert.Equal(t, strings.Repeat("x", 125)+"\n\n"+strings.Repeat("x", 75), got.Text)
	assert.Equal(t, 202, got.CharCount)
	assert.Equal(t, wantHashtags, got.Hashtags)
}

func TestFormatLeadInVerbatim(t *testing.T) {
	lead := "  Lead with   odd spacing\n\nand *markup* that stays exactly as typed. " + strings.Repeat("é", 70)
	require.Greater(t, postfmt.RuneLen(lead), 125)
	input := lead + "\n\n  second paragraph  \n\n\nthird paragraph"

	got := Format(input)

	assert.True(t, strings.HasPrefix(got.Text, postfmt.Head(input, 125)))
	assert.True(t, strings.HasSuffix(got.Text, "second paragraph\n\nthird paragraph"))
}

func TestFormatBlankRemainder(t *testing.T) {
	input := strings.Repeat("y", 125) + "\n   \n"

	got := Format(input)

	assert.Equal(t, strings.Repeat("y", 125)+"\n\n", got.Text)
	assert.Equal(t, 127, got.CharCount)
}

func TestFormatExactLeadIn(t *testing.T) {
	input := strings.Repeat("z", 125)

	got := Format(input)

	assert.Equal(t, input, got.Text)
}

func TestFormatEmpty(t *testing.T) {
	got := Format("   ")
	assert.Equal(t, "", got.Text)
	assert.Equal(t, 0, got.CharCount)
	assert.Nil(t, got.Hashtags)
}
