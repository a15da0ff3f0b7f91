package backend

import (
	"strings"

	"github.com/dshills/ares/internal/renderer/core"
)

// ScreenBuffer is an in-memory grid of cells.
type ScreenBuffer struct {
	width, height int
	cells         [][]core.Cell
}

// NewScreenBuffer creates a buffer of the given size filled with empty cells.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	sb := &ScreenBuffer{}
	sb.Resize(width, height)
	return sb
}

// Resize reallocates the buffer. Contents are discarded.
func (sb *ScreenBuffer) Resize(width, height int) {
	sb.width = max(width, 0)
	sb.height = max(height, 0)
	sb.cells = make([][]core.Cell, sb.height)
	for y := range sb.cells {
		sb.cells[y] = make([]core.Cell, sb.width)
	}
	sb.Clear()
}

// Size returns the buffer dimensions.
func (sb *ScreenBuffer) Size() (width, height int) {
	return sb.width, sb.height
}

// SetCell sets the cell at (x, y). Out of bounds writes are ignored.
func (sb *ScreenBuffer) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < sb.width && y >= 0 && y < sb.height {
		sb.cells[y][x] = cell
	}
}

// GetCell returns the cell at (x, y), or an empty cell when out of bounds.
func (sb *ScreenBuffer) GetCell(x, y int) core.Cell {
	if x >= 0 && x < sb.width && y >= 0 && y < sb.height {
		return sb.cells[y][x]
	}
	return core.EmptyCell()
}

// Clear resets every cell to empty.
func (sb *ScreenBuffer) Clear() {
	empty := core.EmptyCell()
	for y := range sb.cells {
		for x := range sb.cells[y] {
			sb.cells[y][x] = empty
		}
	}
}

// RowText returns row y as a string with trailing blanks removed.
func (sb *ScreenBuffer) RowText(y int) string {
	if y < 0 || y >= sb.height {
		return ""
	}
	var b strings.Builder
	for _, c := range sb.cells[y] {
		b.WriteRune(c.Rune)
	}
	return strings.TrimRight(b.String(), " ")
}
