// Package announce carries short status messages to the user, the command
// line counterpart of an assistive-technology live region.
package announce

import (
	"sync"
	"time"

	"github.com/blacktop/postfmt/internal/logutil"
)

// Priority ranks how urgently a message should interrupt the user.
type Priority int

const (
	Polite Priority = iota
	Assertive
)

func (p Priority) String() string {
	if p == Assertive {
		return "assertive"
	}
	return "polite"
}

// Announcer delivers messages. clearAfter of zero keeps the message until the
// next one.
type Announcer interface {
	Announce(message string, priority Priority, clearAfter time.Duration)
}

type logAnnouncer struct{}

// NewLog returns an Announcer writing through the process logger.
func NewLog() Announcer { return logAnnouncer{} }

func (logAnnouncer) Announce(message string, priority Priority, clearAfter time.Duration) {
	keyvals := []any{}
	if clearAfter > 0 {
		keyvals = append(keyvals, "clear_after", clearAfter)
	}
	if priority == Assertive {
		logutil.Warn(message, keyvals...)
		return
	}
	logutil.Info(message, keyvals...)
}

// Announcement is one recorded message.
type Announcement struct {
	Message    string
	Priority   Priority
	ClearAfter time.Duration
}

// Recorder keeps announcements in memory.
type Recorder struct {
	mu    sync.Mutex
	items []Announcement
}

// Announce implements Announcer.
func (r *Recorder) Announce(message string, priority Priority, clearAfter time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, Announcement{Message: message, Priority: priority, ClearAfter: clearAfter})
}

// All returns a copy of everything announced so far.
func (r *Recorder) All() []Announcement {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Announcement(nil), r.items...)
}
