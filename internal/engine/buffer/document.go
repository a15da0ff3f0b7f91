package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/dimchansky/utfbom"

	"github.com/dshills/ares/internal/renderer/highlight"
	"github.com/dshills/ares/internal/renderer/layout"
)

// Document is the row store: an ordered sequence of rows, a dirty counter
// and the active syntax definition.
type Document struct {
	mu sync.RWMutex

	rows   []row
	dirty  int
	syntax *highlight.Syntax
	tabs   *layout.TabExpander

	initial []string
}

// NewDocument creates an empty document.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		tabs: layout.DefaultTabExpander(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.initial != nil {
		d.loadLines(d.initial)
		d.initial = nil
	}
	return d
}

// NumRows returns the number of rows.
func (d *Document) NumRows() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.rows)
}

// Dirty returns the dirty counter. Nonzero means unsaved changes.
func (d *Document) Dirty() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.dirty
}

// IsDirty returns true if the document has unsaved changes.
func (d *Document) IsDirty() bool {
	return d.Dirty() != 0
}

// MarkClean resets the dirty counter after a successful save.
func (d *Document) MarkClean() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dirty = 0
}

// Syntax returns the active syntax definition, or nil.
func (d *Document) Syntax() *highlight.Syntax {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.syntax
}

// SetSyntax selects a syntax definition and re-highlights every row.
func (d *Document) SetSyntax(s *highlight.Syntax) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.syntax = s
	d.rehighlightAll()
}

// TabStop returns the tab stop used for render buffers.
func (d *Document) TabStop() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.tabs.TabStop()
}

// SetTabStop changes the tab stop and rebuilds every render buffer.
func (d *Document) SetTabStop(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tabs.SetTabStop(n)
	for i := range d.rows {
		d.rows[i].render = d.tabs.Expand(d.rows[i].raw)
	}
	d.rehighlightAll()
}

// Row returns a copy of row i.
func (d *Document) Row(i int) (RowView, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if i < 0 || i >= len(d.rows) {
		return RowView{}, false
	}
	return d.rows[i].view(i), true
}

// Rows returns copies of up to n rows starting at start.
func (d *Document) Rows(start, n int) []RowView {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if start < 0 {
		start = 0
	}
	end := min(start+n, len(d.rows))
	if start >= end {
		return nil
	}
	out := make([]RowView, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, d.rows[i].view(i))
	}
	return out
}

// RowLen returns the raw length of row i, or 0 if i is out of range.
func (d *Document) RowLen(i int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if i < 0 || i >= len(d.rows) {
		return 0
	}
	return len(d.rows[i].raw)
}

// Lines returns the raw text of every row.
func (d *Document) Lines() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, len(d.rows))
	for i := range d.rows {
		out[i] = string(d.rows[i].raw)
	}
	return out
}

// RawToRender converts a raw column of row i to its rendered column.
func (d *Document) RawToRender(i, rawCol int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if i < 0 || i >= len(d.rows) {
		return 0
	}
	return d.tabs.RawToRender(d.rows[i].raw, rawCol)
}

// RenderToRaw converts a rendered column of row i back to a raw column.
func (d *Document) RenderToRaw(i, renderCol int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if i < 0 || i >= len(d.rows) {
		return 0
	}
	return d.tabs.RenderToRaw(d.rows[i].raw, renderCol)
}

// InsertRow inserts a row containing text at position at. Positions outside
// 0..NumRows are ignored.
func (d *Document) InsertRow(at int, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.insertRow(at, []byte(text))
}

// DeleteRow removes row at. Positions outside the document are ignored.
func (d *Document) DeleteRow(at int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deleteRow(at)
}

// LoadLines replaces the document with one row per line. Trailing newline
// and carriage return characters are stripped and the dirty counter is
// reset.
func (d *Document) LoadLines(lines []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loadLines(lines)
}

// ReadFrom replaces the document with the lines read from r. A leading UTF-8
// byte order mark is skipped.
func (d *Document) ReadFrom(r io.Reader) (int64, error) {
	br := bufio.NewReader(utfbom.SkipOnly(r))
	var (
		lines []string
		n     int64
	)
	for {
		line, err := br.ReadString('\n')
		n += int64(len(line))
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return n, err
		}
	}
	d.LoadLines(lines)
	return n, nil
}

// Bytes serializes the document: every row followed by a newline. An empty
// document serializes to zero bytes.
func (d *Document) Bytes() []byte {
	d.mu.RLock()
	defer d.mu.RUnlock()

	size := 0
	for i := range d.rows {
		size += len(d.rows[i].raw) + 1
	}
	var buf bytes.Buffer
	buf.Grow(size)
	for i := range d.rows {
		buf.Write(d.rows[i].raw)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// String returns the serialized document as a string.
func (d *Document) String() string {
	return string(d.Bytes())
}

// OverlayHighlight sets tag over the rendered span [start, end) of row i and
// returns a copy of the row's previous highlight for RestoreHighlight.
// It returns nil if i is out of range.
func (d *Document) OverlayHighlight(i, start, end int, tag highlight.Tag) []highlight.Tag {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	hl := d.rows[i].hl
	saved := make([]highlight.Tag, len(hl))
	copy(saved, hl)

	start = max(start, 0)
	end = min(end, len(hl))
	for j := start; j < end; j++ {
		hl[j] = tag
	}
	return saved
}

// RestoreHighlight copies saved back over row i's highlight. It does nothing
// and returns false when the row no longer has the saved shape.
func (d *Document) RestoreHighlight(i int, saved []highlight.Tag) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < 0 || i >= len(d.rows) || len(saved) != len(d.rows[i].hl) {
		return false
	}
	copy(d.rows[i].hl, saved)
	return true
}

func (d *Document) loadLines(lines []string) {
	d.rows = make([]row, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		raw := []byte(line)
		d.rows = append(d.rows, row{
			raw:    raw,
			render: d.tabs.Expand(raw),
		})
	}
	d.rehighlightAll()
	d.dirty = 0
}

func (d *Document) insertRow(at int, raw []byte) {
	if at < 0 || at > len(d.rows) {
		return
	}

	r := row{raw: slices.Clone(raw)}
	if r.raw == nil {
		r.raw = []byte{}
	}
	// Seed with the state the displaced row was highlighted against so that
	// propagation fires exactly when that state changes.
	if at > 0 {
		r.commentOpen = d.rows[at-1].commentOpen
	}
	d.rows = slices.Insert(d.rows, at, r)
	d.updateRow(at)
	d.dirty++
}

func (d *Document) deleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	d.rows = slices.Delete(d.rows, at, at+1)
	if at < len(d.rows) {
		d.rehighlight(at)
	}
	d.dirty++
}

// updateRow rebuilds the render buffer of row i and re-highlights it.
func (d *Document) updateRow(i int) {
	d.rows[i].render = d.tabs.Expand(d.rows[i].raw)
	d.rehighlight(i)
}

// rehighlight recomputes row from and walks forward while the trailing
// comment state keeps changing.
func (d *Document) rehighlight(from int) {
	queue := []int{from}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		if i < 0 || i >= len(d.rows) {
			continue
		}

		seed := i > 0 && d.rows[i-1].commentOpen
		r := &d.rows[i]
		hl, open := highlight.Highlight(r.render, d.syntax, seed)
		r.hl = hl
		changed := open != r.commentOpen
		r.commentOpen = open

		if changed && i+1 < len(d.rows) {
			queue = append(queue, i+1)
		}
	}
}

func (d *Document) rehighlightAll() {
	open := false
	for i := range d.rows {
		r := &d.rows[i]
		r.hl, r.commentOpen = highlight.Highlight(r.render, d.syntax, open)
		open = r.commentOpen
	}
}
