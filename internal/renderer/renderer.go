package renderer

import (
	"fmt"
	"sync"

	"github.com/dshills/ares/internal/engine/buffer"
	"github.com/dshills/ares/internal/renderer/backend"
	"github.com/dshills/ares/internal/renderer/core"
	"github.com/dshills/ares/internal/renderer/highlight"
	"github.com/dshills/ares/internal/renderer/statusline"
	"github.com/dshills/ares/internal/renderer/viewport"
)

// Version is shown in the welcome message of an empty document.
var Version = "0.0.1"

// barRows is the number of screen rows below the text area.
const barRows = 2

// Document provides the rows to paint.
type Document interface {
	NumRows() int
	Rows(start, n int) []buffer.RowView
}

// Frame is everything needed to paint one screen.
type Frame struct {
	Doc Document

	// CursorRow is the document row of the cursor and CursorCol its
	// rendered column.
	CursorRow int
	CursorCol int

	Status  statusline.Info
	Message string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTheme sets the color theme.
func WithTheme(t *highlight.Theme) Option {
	return func(r *Renderer) {
		if t != nil {
			r.theme = t
		}
	}
}

// WithScrollMargins keeps the cursor away from the viewport edges.
func WithScrollMargins(vertical, horizontal int) Option {
	return func(r *Renderer) {
		r.viewport.SetMargins(vertical, horizontal)
	}
}

// Renderer is the main rendering facade.
type Renderer struct {
	mu sync.Mutex

	backend  backend.Backend
	theme    *highlight.Theme
	viewport *viewport.Viewport
}

// New creates a renderer drawing to b.
func New(b backend.Backend, opts ...Option) *Renderer {
	w, h := b.Size()
	r := &Renderer{
		backend:  b,
		theme:    highlight.DefaultTheme(),
		viewport: viewport.NewViewport(w, h-barRows),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Viewport returns the renderer's viewport.
func (r *Renderer) Viewport() *viewport.Viewport {
	return r.viewport
}

// TextRows returns the number of rows available for text.
func (r *Renderer) TextRows() int {
	return r.viewport.Height()
}

// Theme returns the active theme.
func (r *Renderer) Theme() *highlight.Theme {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.theme
}

// SetTheme replaces the active theme.
func (r *Renderer) SetTheme(t *highlight.Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t != nil {
		r.theme = t
	}
}

// Resize adapts the viewport to a new screen size.
func (r *Renderer) Resize(width, height int) {
	r.viewport.Resize(width, height-barRows)
}

// Render scrolls the viewport to the cursor and paints a full frame.
func (r *Renderer) Render(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width, height := r.backend.Size()
	r.viewport.ScrollToReveal(f.CursorRow, f.CursorCol)

	r.backend.HideCursor()
	r.backend.Clear()

	textRows := max(height-barRows, 0)
	r.drawRows(f.Doc, width, textRows)
	r.drawStatusBar(f.Status, width, textRows)
	r.drawMessageBar(f.Message, width, textRows+1)

	x, y := r.viewport.DocumentToScreen(f.CursorRow, f.CursorCol)
	r.backend.ShowCursor(x, y)
	r.backend.Show()
}

func (r *Renderer) drawRows(doc Document, width, textRows int) {
	top, left := r.viewport.TopRow(), r.viewport.LeftCol()
	numRows := 0
	var rows []buffer.RowView
	if doc != nil {
		numRows = doc.NumRows()
		rows = doc.Rows(top, textRows)
	}

	for y := 0; y < textRows; y++ {
		if y < len(rows) {
			r.drawRow(rows[y], left, width, y)
			continue
		}
		if numRows == 0 && y == textRows/3 {
			r.drawWelcome(width, y)
			continue
		}
		r.backend.SetCell(0, y, core.NewStyledCell('~', core.DefaultStyle()))
	}
}

func (r *Renderer) drawRow(row buffer.RowView, left, width, y int) {
	for x := 0; x < width; x++ {
		i := left + x
		if i >= len(row.Render) {
			return
		}
		c := row.Render[i]
		style := r.theme.StyleFor(row.Highlight[i])
		if c < ' ' || c == 0x7f {
			// Control bytes show as a reversed letter.
			sym := '?'
			if c < ' ' {
				sym = rune('@' + c)
			}
			r.backend.SetCell(x, y, core.NewStyledCell(sym, style.Reverse()))
			continue
		}
		r.backend.SetCell(x, y, core.NewStyledCell(rune(c), style))
	}
}

func (r *Renderer) drawWelcome(width, y int) {
	welcome := fmt.Sprintf("Ares -- version %s", Version)
	if len(welcome) > width {
		welcome = welcome[:width]
	}
	x := 0
	padding := (width - len(welcome)) / 2
	if padding > 0 {
		r.backend.SetCell(0, y, core.NewStyledCell('~', core.DefaultStyle()))
	}
	x += padding
	backend.SetString(r.backend, x, y, welcome, core.DefaultStyle())
}

func (r *Renderer) drawStatusBar(info statusline.Info, width, y int) {
	backend.SetString(r.backend, 0, y, statusline.Compose(info, width), core.DefaultStyle().Reverse())
}

func (r *Renderer) drawMessageBar(msg string, width, y int) {
	if len(msg) > width {
		msg = msg[:width]
	}
	backend.SetString(r.backend, 0, y, msg, core.DefaultStyle())
}
