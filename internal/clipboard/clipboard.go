// Package clipboard is the clipboard port used by the command line caller.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when the host has no usable clipboard.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

type system struct{}

// System returns the host clipboard.
func System() Clipboard { return system{} }

func (system) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}

func (system) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Memory is a Clipboard held in process memory.
type Memory struct {
	Text string
	// Err, when set, is returned by every operation.
	Err error
}

// ReadText implements Clipboard.
func (m *Memory) ReadText() (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

// WriteText implements Clipboard.
func (m *Memory) WriteText(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}
