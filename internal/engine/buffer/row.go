package buffer

import (
	"slices"

	"github.com/dshills/ares/internal/renderer/highlight"
)

// Position is a cursor position in raw coordinates.
type Position struct {
	Row int
	Col int
}

// row is one line of the document. It is only reachable through the
// Document that owns it.
type row struct {
	raw         []byte
	render      []byte
	hl          []highlight.Tag
	commentOpen bool
}

// RowView is a read-only copy of a row handed to callers.
type RowView struct {
	Index       int
	Raw         []byte
	Render      []byte
	Highlight   []highlight.Tag
	CommentOpen bool
}

// String returns the raw text of the row.
func (v RowView) String() string {
	return string(v.Raw)
}

func (r *row) view(index int) RowView {
	return RowView{
		Index:       index,
		Raw:         slices.Clone(r.raw),
		Render:      slices.Clone(r.render),
		Highlight:   slices.Clone(r.hl),
		CommentOpen: r.commentOpen,
	}
}
