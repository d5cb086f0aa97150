package announce

import (
	"bytes"
	"testing"
	"time"

	"github.com/blacktop/postfmt/internal/logutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Announce("Content copied for linkedin", Polite, 0)
	r.Announce("Copy failed", Assertive, 2*time.Second)

	assert.Equal(t, []Announcement{
		{Message: "Content copied for linkedin", Priority: Polite},
		{Message: "Copy failed", Priority: Assertive, ClearAfter: 2 * time.Second},
	}, r.All())
}

func TestLogAnnouncer(t *testing.T) {
	var buf bytes.Buffer
	logutil.SetOutput(&buf)
	t.Cleanup(func() { logutil.SetOutput(nil) })

	NewLog().Announce("Copy failed", Assertive, time.Second)

	assert.Contains(t, buf.String(), "Copy failed")
	assert.Contains(t, buf.String(), "clear_after")
}

func TestPriorityString(t *testing.T) {
	assert.Equal(t, "polite", Polite.String())
	assert.Equal(t, "assertive", Assertive.String())
}
