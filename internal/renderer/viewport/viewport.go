// Package viewport provides viewport management for the renderer.
package viewport

import "sync"

// Viewport is the visible window onto the document: the first row and
// first rendered column shown, and the size of the text area.
type Viewport struct {
	mu sync.RWMutex

	topRow  int
	leftCol int

	width  int
	height int

	// Keep the cursor this many rows/cols away from the edges.
	marginV int
	marginH int
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:  max(width, 1),
		height: max(height, 1),
	}
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.width
}

// Height returns the number of text rows.
func (v *Viewport) Height() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height
}

// TopRow returns the first visible document row.
func (v *Viewport) TopRow() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topRow
}

// LeftCol returns the first visible rendered column.
func (v *Viewport) LeftCol() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.leftCol
}

// Resize changes the text area size.
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// SetMargins sets the scroll margins. Margins larger than half the viewport
// are clamped.
func (v *Viewport) SetMargins(vertical, horizontal int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.marginV = max(vertical, 0)
	v.marginH = max(horizontal, 0)
}

// ScrollToReveal adjusts the offsets so that document row and rendered
// column col are visible. It returns true if the viewport moved.
func (v *Viewport) ScrollToReveal(row, col int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	mv := min(v.marginV, (v.height-1)/2)
	mh := min(v.marginH, (v.width-1)/2)
	top, left := v.topRow, v.leftCol

	if row < top+mv {
		top = max(row-mv, 0)
	}
	if row >= top+v.height-mv {
		top = row - v.height + mv + 1
	}
	if col < left+mh {
		left = max(col-mh, 0)
	}
	if col >= left+v.width-mh {
		left = col - v.width + mh + 1
	}

	moved := top != v.topRow || left != v.leftCol
	v.topRow, v.leftCol = top, left
	return moved
}

// ScrollTo sets the offsets directly. Negative values are clamped to zero.
func (v *Viewport) ScrollTo(row, col int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.topRow = max(row, 0)
	v.leftCol = max(col, 0)
}

// DocumentToScreen converts a document row and rendered column to screen
// coordinates relative to the text area.
func (v *Viewport) DocumentToScreen(row, col int) (x, y int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return col - v.leftCol, row - v.topRow
}
