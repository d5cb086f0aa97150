/*
Copyright © 2025 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/blacktop/postfmt/internal/postfmt"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

var (
	headerColor  = color.New(color.Bold, color.FgCyan)
	overColor    = color.New(color.FgRed)
	hashtagColor = color.New(color.FgMagenta)
)

// document is the structured (json/yaml) shape of one platform's output.
type document struct {
	Platform                 postfmt.Platform `json:"platform" yaml:"platform"`
	postfmt.FormattedContent `yaml:",inline"`
}

func render(w io.Writer, results []result, format string, plain bool) error {
	switch format {
	case "json":
		return encodeJSON(w, documents(results))
	case "yaml":
		return encodeYAML(w, documents(results))
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if plain {
			fmt.Fprintln(w, r.Content.Text)
			continue
		}
		renderText(w, r)
	}
	return nil
}

func renderText(w io.Writer, r result) {
	name := r.Info.DisplayName
	if name == "" {
		name = string(r.Platform)
	}

	parts := []string{name}
	if posts := len(r.Content.Segments); posts > 1 {
		parts = append(parts, fmt.Sprintf("%d posts", posts))
	}
	count := fmt.Sprintf("%d chars", r.Content.CharCount)
	if limit, ok := r.Content.Limit(); ok {
		count = fmt.Sprintf("%d/%d chars", r.Content.CharCount, limit)
		if r.Content.CharCount > limit {
			count = overColor.Sprint(count)
		}
	}
	parts = append(parts, count)

	headerColor.Fprintf(w, "── %s ──\n", strings.Join(parts, " · "))
	fmt.Fprintln(w, r.Content.Text)
	if len(r.Content.Hashtags) > 0 {
		fmt.Fprintf(w, "\nsuggested: %s\n", hashtagColor.Sprint(strings.Join(r.Content.Hashtags, " ")))
	}
}

// documents returns a single document for one result and a list otherwise.
func documents(results []result) any {
	docs := make([]document, 0, len(results))
	for _, r := range results {
		docs = append(docs, document{Platform: r.Platform, FormattedContent: r.Content})
	}
	if len(docs) == 1 {
		return docs[0]
	}
	return docs
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
