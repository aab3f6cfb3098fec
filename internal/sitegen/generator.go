// Package sitegen renders a single self-contained HTML landing page from a
// short text prompt, a Tailwind color keyword and a section count. Generation
// is a pure function: no I/O, no logging, byte-identical output for identical
// inputs.
package sitegen

import (
	"errors"
	"strconv"
	"strings"
)

// ErrEmptyPrompt is the only caller-facing failure: the prompt is empty after
// trimming whitespace.
var ErrEmptyPrompt = errors.New("prompt cannot be empty")

const (
	// DefaultColor is the accent color used when the caller supplies none.
	DefaultColor = "indigo"

	// DefaultSections is the section count used when the caller supplies none.
	DefaultSections = 3

	// MinSections and MaxSections bound the accepted section count. The bound
	// is enforced at the request binding layer; Generate trusts it.
	MinSections = 1
	MaxSections = 6

	// titleLimit is the maximum title length in runes.
	titleLimit = 80
)

// Generate renders the document for the given inputs. The color keyword is
// interpolated verbatim into the accent utility classes and is deliberately
// not validated against any palette.
func Generate(prompt, color string, sections int) (Result, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Result{}, ErrEmptyPrompt
	}

	var blocks strings.Builder
	for i := 1; i <= sections; i++ {
		block := strings.NewReplacer(
			"{index}", strconv.Itoa(i),
			"{prompt}", prompt,
		).Replace(sectionTemplate)
		blocks.WriteString(block)
	}

	html := strings.NewReplacer(
		"{color}", color,
		"{title}", deriveTitle(prompt),
		"{sections}", blocks.String(),
	).Replace(documentTemplate)

	return Result{
		HTML: html,
		Meta: Meta{
			Prompt:   prompt,
			Color:    color,
			Sections: sections,
		},
	}, nil
}

// deriveTitle cuts the prompt to at most titleLimit runes and strips trailing
// periods. Truncation is marked with an ellipsis.
func deriveTitle(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= titleLimit {
		return strings.TrimRight(prompt, ".")
	}

	return strings.TrimRight(string(runes[:titleLimit]), ".") + "..."
}
