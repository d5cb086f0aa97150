package email

import (
	"testing"

	"github.com/blacktop/postfmt/internal/postfmt"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "blank lines dropped",
			input: "Line one\nLine two\n\nLine three",
			want:  "Dear [Name],\n\nLine one\n\nLine two\n\nLine three\n\nBest regards,\n[Your Name]",
		},
		{
			name:  "lines trimmed",
			input: "   Hi there   \r\n\t\tThanks\t",
			want:  "Dear [Name],\n\nHi there\n\nThanks\n\nBest regards,\n[Your Name]",
		},
		{
			name:  "single line",
			input: "Quick note.",
			want:  "Dear [Name],\n\nQuick note.\n\nBest regards,\n[Your Name]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.input)
			assert.Equal(t, tt.want, got.Text)
			assert.Equal(t, postfmt.RuneLen(tt.want), got.CharCount)
			assert.Nil(t, got.MaxChars)
			assert.Nil(t, got.Hashtags)
			assert.Nil(t, got.Segments)
		})
	}
}

func TestFormatEmpty(t *testing.T) {
	got := Format("\n\n   \n")
	assert.Equal(t, postfmt.FormattedContent{}, got)
}
