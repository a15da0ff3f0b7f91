package buffer

import (
	"github.com/dshills/ares/internal/renderer/highlight"
	"github.com/dshills/ares/internal/renderer/layout"
)

// Option is a functional option for configuring a Document.
type Option func(*Document)

// WithSyntax sets the initial syntax definition.
func WithSyntax(s *highlight.Syntax) Option {
	return func(d *Document) {
		d.syntax = s
	}
}

// WithTabStop sets the tab stop used to build render buffers.
func WithTabStop(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.tabs = layout.NewTabExpander(n)
		}
	}
}

// WithLines sets the initial content. The dirty counter starts at zero.
func WithLines(lines []string) Option {
	return func(d *Document) {
		d.initial = lines
	}
}
