// Package renderer paints the document onto a terminal backend.
//
// Each frame is a full repaint: the visible window of rows (render bytes
// colored by their highlight tags through the active theme), tilde lines
// past the end of the document, a reverse-video status bar and a message
// bar. The renderer reads only the render and highlight slices the
// document hands out; it never looks at raw text.
//
// Layout:
//
//	rows 0..h-3   text area
//	row  h-2      status bar
//	row  h-1      message bar
//
// Usage:
//
//	be, _ := backend.NewTerminal()
//	r := renderer.New(be, renderer.WithTheme(highlight.DefaultTheme()))
//	r.Render(renderer.Frame{Doc: doc, CursorRow: cy, CursorCol: rx})
package renderer
