package display

import (
	"strings"

	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 80

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return WrapWidth(text, DefaultWidth)
}

func WrapWidth(text string, width int) string {
	return wordwrap.String(text, width)
}

// Column pads or truncates s to exactly width cells.
func Column(s string, width int) string {
	s = truncate.StringWithTail(s, uint(width), "~")
	return padding.String(s, uint(width))
}

// Bar draws value out of total as a fixed-width gauge.
func Bar(value, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	filled := min(max(value, 0)*width/total, width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
