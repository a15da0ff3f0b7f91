package buffer

import "slices"

// InsertChar inserts c into row at col and returns the cursor position after
// it. When row equals NumRows an empty row is appended first. Rows past the
// end are ignored.
func (d *Document) InsertChar(row, col int, c byte) Position {
	d.mu.Lock()
	defer d.mu.Unlock()

	if row < 0 || row > len(d.rows) {
		return Position{Row: row, Col: col}
	}
	if row == len(d.rows) {
		d.insertRow(row, nil)
	}

	r := &d.rows[row]
	col = clamp(col, 0, len(r.raw))
	r.raw = slices.Insert(r.raw, col, c)
	d.updateRow(row)
	d.dirty++
	return Position{Row: row, Col: col + 1}
}

// DeleteChar deletes the byte before col. At column zero the row is joined
// onto the previous one. At the start of the document it does nothing.
func (d *Document) DeleteChar(row, col int) Position {
	d.mu.Lock()
	defer d.mu.Unlock()

	if row < 0 || row >= len(d.rows) {
		return Position{Row: row, Col: col}
	}
	r := &d.rows[row]
	col = clamp(col, 0, len(r.raw))
	if col == 0 && row == 0 {
		return Position{}
	}
	if col > 0 {
		r.raw = slices.Delete(r.raw, col-1, col)
		d.updateRow(row)
		d.dirty++
		return Position{Row: row, Col: col - 1}
	}

	prev := &d.rows[row-1]
	joinAt := len(prev.raw)
	prev.raw = append(prev.raw, r.raw...)
	d.deleteRow(row)
	d.updateRow(row - 1)
	d.dirty++
	return Position{Row: row - 1, Col: joinAt}
}

// InsertNewline breaks row at col. At column zero an empty row is inserted
// above; otherwise the bytes from col onward move to a new row below.
func (d *Document) InsertNewline(row, col int) Position {
	d.mu.Lock()
	defer d.mu.Unlock()

	if row < 0 || row > len(d.rows) {
		return Position{Row: row, Col: col}
	}
	if row == len(d.rows) {
		d.insertRow(row, nil)
		return Position{Row: row + 1}
	}

	col = clamp(col, 0, len(d.rows[row].raw))
	if col == 0 {
		d.insertRow(row, nil)
		return Position{Row: row + 1}
	}

	tail := slices.Clone(d.rows[row].raw[col:])
	d.insertRow(row+1, tail)
	// insertRow may have reallocated the slice.
	d.rows[row].raw = d.rows[row].raw[:col]
	d.updateRow(row)
	return Position{Row: row + 1}
}

// InsertString inserts s at the given position, treating '\n' as a line
// break and dropping '\r'.
func (d *Document) InsertString(row, col int, s string) Position {
	pos := Position{Row: row, Col: col}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
		case '\n':
			pos = d.InsertNewline(pos.Row, pos.Col)
		default:
			pos = d.InsertChar(pos.Row, pos.Col, s[i])
		}
	}
	return pos
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
