// Package layout maps between raw row columns and rendered screen columns.
//
// Every byte occupies one rendered cell except a tab, which advances the
// rendered cursor to the next multiple of the tab stop.
package layout

// DefaultTabStop is the tab stop used when none is configured.
const DefaultTabStop = 8

// TabExpander provides tab expansion utilities for a fixed tab stop.
type TabExpander struct {
	tabStop int
}

// NewTabExpander creates a tab expander with the given tab stop.
func NewTabExpander(tabStop int) *TabExpander {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	return &TabExpander{tabStop: tabStop}
}

// DefaultTabExpander returns a tab expander with a tab stop of 8.
func DefaultTabExpander() *TabExpander {
	return NewTabExpander(DefaultTabStop)
}

// TabStop returns the current tab stop.
func (t *TabExpander) TabStop() int {
	return t.tabStop
}

// SetTabStop sets the tab stop. Values below 1 are clamped to 1.
func (t *TabExpander) SetTabStop(n int) {
	if n < 1 {
		n = 1
	}
	t.tabStop = n
}

// NextTabStop returns the next tab stop column after the given column.
func (t *TabExpander) NextTabStop(col int) int {
	return col + t.TabStopOffset(col)
}

// TabStopOffset returns how many cells a tab at the given column expands to.
func (t *TabExpander) TabStopOffset(col int) int {
	return t.tabStop - (col % t.tabStop)
}

// ExpandedWidth returns the rendered width of raw.
func (t *TabExpander) ExpandedWidth(raw []byte) int {
	col := 0
	for _, c := range raw {
		if c == '\t' {
			col = t.NextTabStop(col)
		} else {
			col++
		}
	}
	return col
}

// Expand returns the render form of raw with every tab replaced by spaces
// up to the next tab stop. The result never aliases raw.
func (t *TabExpander) Expand(raw []byte) []byte {
	out := make([]byte, 0, t.ExpandedWidth(raw))
	for _, c := range raw {
		if c != '\t' {
			out = append(out, c)
			continue
		}
		out = append(out, ' ')
		for len(out)%t.tabStop != 0 {
			out = append(out, ' ')
		}
	}
	return out
}

// RawToRender converts a raw column into the rendered column at which that
// byte starts. Columns past the end of raw are treated as len(raw).
func (t *TabExpander) RawToRender(raw []byte, rawCol int) int {
	if rawCol > len(raw) {
		rawCol = len(raw)
	}
	col := 0
	for i := 0; i < rawCol; i++ {
		if raw[i] == '\t' {
			col = t.NextTabStop(col)
		} else {
			col++
		}
	}
	return col
}

// RenderToRaw converts a rendered column back to a raw column. It returns the
// first raw index whose cumulative rendered width exceeds renderCol, so any
// column inside a tab's span maps to the tab itself. Columns past the
// rendered end clamp to len(raw).
func (t *TabExpander) RenderToRaw(raw []byte, renderCol int) int {
	col := 0
	for i, c := range raw {
		if c == '\t' {
			col = t.NextTabStop(col)
		} else {
			col++
		}
		if col > renderCol {
			return i
		}
	}
	return len(raw)
}
