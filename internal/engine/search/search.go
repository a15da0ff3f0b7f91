// Package search implements incremental search over a buffer.Document.
//
// A Searcher remembers the last matching row and the highlight it painted
// over, so every call to Next starts by restoring the previous row before
// looking for the next hit.
package search

import (
	"bytes"

	"github.com/dshills/ares/internal/engine/buffer"
	"github.com/dshills/ares/internal/renderer/highlight"
)

// Direction is the scan direction of a search step.
type Direction int

const (
	// Forward scans towards the end of the document.
	Forward Direction = iota
	// Backward scans towards the start of the document.
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Document is the subset of buffer.Document the searcher needs.
type Document interface {
	NumRows() int
	Row(i int) (buffer.RowView, bool)
	RenderToRaw(row, renderCol int) int
	OverlayHighlight(row, start, end int, tag highlight.Tag) []highlight.Tag
	RestoreHighlight(row int, saved []highlight.Tag) bool
}

// Match is a search hit.
type Match struct {
	Row       int
	Col       int // raw column
	RenderCol int
	Len       int
}

// Searcher holds the state of one incremental search session.
type Searcher struct {
	query     []byte
	lastRow   int
	direction Direction

	savedRow int
	saved    []highlight.Tag
}

// NewSearcher returns a Searcher with no query.
func NewSearcher() *Searcher {
	return &Searcher{lastRow: -1, savedRow: -1}
}

// Start begins a new query. The last match is forgotten and the direction
// resets to forward.
func (s *Searcher) Start(query string) {
	s.query = []byte(query)
	s.lastRow = -1
	s.direction = Forward
}

// Query returns the current query.
func (s *Searcher) Query() string {
	return string(s.query)
}

// LastRow returns the row of the last match, or -1.
func (s *Searcher) LastRow() int {
	return s.lastRow
}

// Direction returns the direction of the last step.
func (s *Searcher) Direction() Direction {
	return s.direction
}

// Next restores the previous match highlight and scans for the query in dir,
// wrapping around the document and visiting each row at most once. Without
// a previous match the scan is always forward. On a hit the matched span is
// tagged highlight.TagMatch. A miss leaves the state unchanged.
func (s *Searcher) Next(doc Document, dir Direction) (Match, bool) {
	s.Restore(doc)

	if s.lastRow == -1 {
		dir = Forward
	}
	s.direction = dir

	n := doc.NumRows()
	if len(s.query) == 0 || n == 0 {
		return Match{}, false
	}

	step := 1
	if dir == Backward {
		step = -1
	}

	current := s.lastRow
	for i := 0; i < n; i++ {
		current += step
		if current == -1 {
			current = n - 1
		} else if current >= n {
			current = 0
		}

		row, ok := doc.Row(current)
		if !ok {
			continue
		}
		idx := bytes.Index(row.Render, s.query)
		if idx < 0 {
			continue
		}

		s.lastRow = current
		s.saved = doc.OverlayHighlight(current, idx, idx+len(s.query), highlight.TagMatch)
		s.savedRow = current
		return Match{
			Row:       current,
			Col:       doc.RenderToRaw(current, idx),
			RenderCol: idx,
			Len:       len(s.query),
		}, true
	}
	return Match{}, false
}

// Restore copies the saved highlight back over the last matched row.
func (s *Searcher) Restore(doc Document) {
	if s.saved == nil {
		return
	}
	doc.RestoreHighlight(s.savedRow, s.saved)
	s.saved = nil
	s.savedRow = -1
}

// Reset restores any overlay and clears the query.
func (s *Searcher) Reset(doc Document) {
	s.Restore(doc)
	s.Start("")
}
