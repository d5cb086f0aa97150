package logutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(nil)
	})

	Debugf("hidden %d", 1)
	assert.NotContains(t, buf.String(), "hidden")

	SetVerbose(true)
	assert.True(t, Verbose())
	Debug("shown", "platform", "twitter")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "platform=twitter")
}
