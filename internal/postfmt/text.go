package postfmt

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

// RuneLen reports the length of s in runes. Every invalid UTF-8 byte counts
// as one rune.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Head returns the first n runes of s.
func Head(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Tail returns everything after the first n runes of s.
func Tail(s string, n int) string {
	return s[len(Head(s, n)):]
}

// Truncate shortens s to limit runes, replacing the end with "..." when it
// does not fit.
func Truncate(s string, limit int) string {
	if RuneLen(s) <= limit {
		return s
	}
	return Head(s, limit-3) + "..."
}

// Sentences splits text on runs of sentence-terminal punctuation and returns
// the trimmed, non-empty fragments.
func Sentences(text string) []string {
	return nonBlank(sentenceTerminators.Split(text, -1))
}

// Words splits text on whitespace runs.
func Words(text string) []string {
	return strings.Fields(text)
}

// Lines splits text on newlines and returns the trimmed, non-empty lines.
func Lines(text string) []string {
	return nonBlank(strings.Split(text, "\n"))
}

func nonBlank(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Pack greedily joins words with single spaces into chunks of at most limit
// runes, preserving order. A word that cannot fit on its own is emitted as a
// chunk of its own after passing through overflow.
func Pack(words []string, limit int, overflow func(word string) string) []string {
	var (
		chunks  []string
		current strings.Builder
		size    int
	)

	flush := func() {
		if size > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			size = 0
		}
	}

	for _, word := range words {
		n := RuneLen(word)
		if size > 0 && size+1+n <= limit {
			current.WriteByte(' ')
			current.WriteString(word)
			size += 1 + n
			continue
		}
		flush()
		if n > limit {
			chunks = append(chunks, overflow(word))
			continue
		}
		current.WriteString(word)
		size = n
	}
	flush()

	return chunks
}
