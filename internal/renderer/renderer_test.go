package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/ares/internal/engine/buffer"
	"github.com/dshills/ares/internal/renderer/backend"
	"github.com/dshills/ares/internal/renderer/core"
	"github.com/dshills/ares/internal/renderer/highlight"
	"github.com/dshills/ares/internal/renderer/statusline"
)

func newTestRenderer(w, h int) (*Renderer, *backend.NullBackend) {
	be := backend.NewNullBackend(w, h)
	return New(be), be
}

func TestRenderEmptyDocument(t *testing.T) {
	r, be := newTestRenderer(40, 8)
	doc := buffer.NewDocument()

	r.Render(Frame{Doc: doc, Status: statusline.Info{Row: 1}})

	// 6 text rows, welcome on row 2.
	for y := 0; y < 6; y++ {
		row := be.RowText(y)
		if !strings.HasPrefix(row, "~") {
			t.Errorf("row %d = %q, want tilde", y, row)
		}
	}
	if row := be.RowText(2); !strings.Contains(row, "Ares -- version "+Version) {
		t.Errorf("welcome row = %q", row)
	}
	if !strings.HasPrefix(be.RowText(6), "[No Name] - 0 lines") {
		t.Errorf("status row = %q", be.RowText(6))
	}
	if be.Shows() != 1 {
		t.Errorf("Shows() = %d, want 1", be.Shows())
	}
}

func TestRenderRowsAndCursor(t *testing.T) {
	r, be := newTestRenderer(20, 5)
	doc := buffer.NewDocument(
		buffer.WithLines([]string{"int x;", "\treturn"}),
		buffer.WithSyntax(highlight.CSyntax()),
	)

	r.Render(Frame{
		Doc:       doc,
		CursorRow: 1,
		CursorCol: 8,
		Status:    statusline.Info{Filename: "a.c", NumRows: 2, Syntax: "c", Row: 2},
		Message:   "hello",
	})

	if got := be.RowText(0); got != "int x;" {
		t.Errorf("row 0 = %q", got)
	}
	if got := be.RowText(1); got != "        return" {
		t.Errorf("row 1 = %q", got)
	}
	if got := be.RowText(2); got != "~" {
		t.Errorf("row 2 = %q", got)
	}
	if got := be.RowText(4); got != "hello" {
		t.Errorf("message row = %q", got)
	}

	kw := highlight.DefaultTheme().StyleFor(highlight.TagKeyword2)
	if cell := be.GetCell(0, 0); cell.Style != kw {
		t.Errorf("keyword cell style = %+v, want %+v", cell.Style, kw)
	}
	if cell := be.GetCell(0, 3); !cell.Style.Attributes.Has(core.AttrReverse) {
		t.Error("status bar should be reverse video")
	}

	x, y, visible := be.CursorPosition()
	if x != 8 || y != 1 || !visible {
		t.Errorf("cursor = (%d, %d, %v), want (8, 1, true)", x, y, visible)
	}
}

func TestRenderScrolls(t *testing.T) {
	r, be := newTestRenderer(10, 5)
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = strings.Repeat(string(rune('a'+i)), 15)
	}
	doc := buffer.NewDocument(buffer.WithLines(lines))

	r.Render(Frame{Doc: doc, CursorRow: 10, CursorCol: 12})

	if r.Viewport().TopRow() != 8 || r.Viewport().LeftCol() != 3 {
		t.Errorf("viewport = (%d, %d), want (8, 3)", r.Viewport().TopRow(), r.Viewport().LeftCol())
	}
	if got := be.RowText(0); got != strings.Repeat("i", 10) {
		t.Errorf("row 0 = %q", got)
	}
	if x, y, _ := be.CursorPosition(); x != 9 || y != 2 {
		t.Errorf("cursor = (%d, %d), want (9, 2)", x, y)
	}
}

func TestRenderControlBytes(t *testing.T) {
	r, be := newTestRenderer(10, 4)
	doc := buffer.NewDocument(buffer.WithLines([]string{"a\x01b"}))

	r.Render(Frame{Doc: doc})

	cell := be.GetCell(1, 0)
	if cell.Rune != 'A' || !cell.Style.Attributes.Has(core.AttrReverse) {
		t.Errorf("control cell = %+v", cell)
	}
}

func TestResize(t *testing.T) {
	r, _ := newTestRenderer(10, 10)
	r.Resize(30, 12)
	if r.TextRows() != 10 || r.Viewport().Width() != 30 {
		t.Errorf("viewport = %dx%d", r.Viewport().Width(), r.TextRows())
	}
}
