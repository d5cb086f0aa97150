package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchRerunsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.txt")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seen := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 20*time.Millisecond, func(content string) { seen <- content })
	}()

	select {
	case got := <-seen:
		assert.Equal(t, "first", got)
	case <-time.After(5 * time.Second):
		t.Fatal("initial contents never delivered")
	}

	require.NoError(t, os.WriteFile(path, []byte("second"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-seen:
			if got == "second" {
				cancel()
				require.NoError(t, <-done)
				return
			}
		case <-deadline:
			t.Fatal("change never delivered")
		}
	}
}

func TestWatchMissingFile(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), DefaultDebounce, func(string) {})
	assert.Error(t, err)
}

func TestWatchStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	require.NoError(t, Watch(ctx, path, DefaultDebounce, func(string) { calls++ }))
	assert.Equal(t, 1, calls)
}
