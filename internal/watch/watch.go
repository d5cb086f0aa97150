// Package watch re-runs a callback with a file's contents whenever the file
// changes.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/blacktop/postfmt/internal/logutil"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a burst of writes must settle before the file
// is read again.
const DefaultDebounce = 150 * time.Millisecond

// Watch calls fn with the contents of path once, then again after every
// change, until ctx is done. Bursts of events collapse into a single call
// with the newest contents. fn never runs concurrently with itself.
func Watch(ctx context.Context, path string, debounce time.Duration, fn func(content string)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsWatcher.Close()

	// editors often replace the file, so watch its directory
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	fn(string(content))

	// armed only while a burst is settling
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logutil.Debug("file changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(debounce)

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			logutil.Warn("watch error", "err", err)

		case <-timer.C:
			content, err := os.ReadFile(abs)
			if err != nil {
				// the file may be mid-replacement; the next event retries
				logutil.Debug("reread failed", "path", abs, "err", err)
				continue
			}
			fn(string(content))
		}
	}
}
