package options

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Wrap80 wraps help text for an 80 column terminal.
func Wrap80(text string) string {
	return Wrap(text, 80)
}

// Wrap reflows text to width, collapsing runs of whitespace.
func Wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	return wordwrap.String(strings.Join(words, " "), width)
}
