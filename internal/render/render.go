// Package render prepares article text for the terminal.
package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

// Wrap soft-wraps text at width, hard-breaking words longer than a line.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wrap.String(wordwrap.String(text, width), width)
}

// Body wraps an article's Markdown source at width and highlights it with the
// named chroma style. Highlighting failures fall back to the wrapped text.
func Body(text string, width int, style string) string {
	wrapped := Wrap(text, width)
	lexer := lexers.Get("markdown")
	if lexer == nil {
		return wrapped
	}
	lexer = chroma.Coalesce(lexer)
	if style == "" {
		style = DefaultStyle
	}
	st := styles.Get(style)
	formatter := formatters.Get("terminal256")
	it, err := lexer.Tokenise(nil, wrapped)
	if err != nil {
		return wrapped
	}
	var b strings.Builder
	if err := formatter.Format(&b, st, it); err != nil {
		return wrapped
	}
	return b.String()
}

// Autosize returns the number of rows text needs at width, clamped to
// [min, max]. It stands in for a multi-line input that grows with its
// content: the text is laid out the way the input would wrap it and the
// resulting row count is read back. max <= 0 means unbounded.
func Autosize(text string, width, min, max int) int {
	rows := strings.Count(Wrap(text, width), "\n") + 1
	if rows < min {
		rows = min
	}
	if max > 0 && rows > max {
		rows = max
	}
	return rows
}
