package postfmt

import (
	"fmt"
	"strings"
)

// UnsupportedPlatformError is returned when a platform name is not recognised.
type UnsupportedPlatformError struct {
	Name        string
	Suggestions []string
}

func (e UnsupportedPlatformError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unsupported platform %q", e.Name)
	}
	return fmt.Sprintf("unsupported platform %q (did you mean %s?)", e.Name, strings.Join(e.Suggestions, " or "))
}

// InputError captures problems with the text handed to the formatter.
type InputError struct {
	Source string
	Reason string
}

func (e InputError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input from %s: %s", e.Source, e.Reason)
}
