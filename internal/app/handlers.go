package app

import (
	"github.com/dshills/ares/internal/input/key"
)

// ProcessKey applies one keystroke. It returns ErrQuit when the editor
// should exit.
func (app *Application) ProcessKey(ev key.Event) error {
	if app.modes.HandleKey(ev) {
		return nil
	}

	if ev.IsCtrl('q') {
		if app.doc.IsDirty() && app.quitLeft > 0 {
			app.SetStatus("File has unsaved changes. Press Ctrl-Q %d more times to quit.", app.quitLeft)
			app.quitLeft--
			return nil
		}
		return ErrQuit
	}

	app.dispatchKey(ev)
	app.quitLeft = app.cfg.Editor.QuitTimes
	return nil
}

func (app *Application) dispatchKey(ev key.Event) {
	switch {
	case ev.IsCtrl('s'):
		app.Save()
	case ev.IsCtrl('f'):
		app.StartSearch()
	case ev.IsCtrl('g'):
		if err := app.modes.Start("goto-line"); err != nil {
			app.logComponentError("mode", err)
		}
	case ev.IsCtrl('k'):
		app.StartCommit()
	case ev.IsCtrl('l'), ev.Is(key.KeyEscape):
		// Screen is repainted after every key anyway.
	case ev.Is(key.KeyEnter):
		app.insertNewline()
	case ev.Is(key.KeyBackspace), ev.IsCtrl('h'):
		app.deleteChar()
	case ev.Is(key.KeyDelete):
		app.moveCursor(key.KeyRight)
		app.deleteChar()
	case ev.Is(key.KeyHome):
		app.cx = 0
	case ev.Is(key.KeyEnd):
		if app.cy < app.doc.NumRows() {
			app.cx = app.doc.RowLen(app.cy)
		}
	case ev.Is(key.KeyPageUp), ev.Is(key.KeyPageDown):
		app.page(ev.Key)
	case ev.Key.IsArrow() && ev.Modifiers == key.ModNone:
		app.moveCursor(ev.Key)
	default:
		if c, ok := ev.Char(); ok {
			app.insertChar(c)
		}
	}
}

func (app *Application) insertChar(c byte) {
	pos := app.doc.InsertChar(app.cy, app.cx, c)
	app.cy, app.cx = pos.Row, pos.Col
}

func (app *Application) insertNewline() {
	pos := app.doc.InsertNewline(app.cy, app.cx)
	app.cy, app.cx = pos.Row, pos.Col
}

func (app *Application) deleteChar() {
	pos := app.doc.DeleteChar(app.cy, app.cx)
	app.cy, app.cx = pos.Row, pos.Col
}

// moveCursor moves one step. The cursor may sit on the virtual row just past
// the last one, and the column snaps to the length of the new row.
func (app *Application) moveCursor(k key.Key) {
	switch k {
	case key.KeyLeft:
		if app.cx > 0 {
			app.cx--
		}
	case key.KeyRight:
		if app.cy < app.doc.NumRows() && app.cx < app.doc.RowLen(app.cy) {
			app.cx++
		}
	case key.KeyUp:
		if app.cy > 0 {
			app.cy--
		}
	case key.KeyDown:
		if app.cy < app.doc.NumRows() {
			app.cy++
		}
	}
	app.clampCursor()
}

// page moves a screenful: first to the top or bottom edge of the viewport,
// then one screen height further.
func (app *Application) page(k key.Key) {
	rows := app.renderer.TextRows()
	top := app.renderer.Viewport().TopRow()

	dir := key.KeyUp
	if k == key.KeyPageUp {
		app.cy = top
	} else {
		dir = key.KeyDown
		app.cy = min(top+rows-1, app.doc.NumRows())
	}
	for i := 0; i < rows; i++ {
		app.moveCursor(dir)
	}
}

// clampCursor keeps the cursor inside the document.
func (app *Application) clampCursor() {
	n := app.doc.NumRows()
	app.cy = max(min(app.cy, n), 0)
	rowLen := 0
	if app.cy < n {
		rowLen = app.doc.RowLen(app.cy)
	}
	app.cx = max(min(app.cx, rowLen), 0)
}
