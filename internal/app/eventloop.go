package app

import (
	"context"
	"errors"
	"runtime/debug"

	"github.com/dshills/ares/internal/project/watcher"
	"github.com/dshills/ares/internal/renderer"
	"github.com/dshills/ares/internal/renderer/backend"
	"github.com/dshills/ares/internal/renderer/statusline"
)

// ErrAlreadyRunning indicates Run was called twice.
var ErrAlreadyRunning = errors.New("application already running")

// Run paints and processes events until the user quits or ctx is done.
// A quit returns nil. Panics in event handling are returned as
// RecoveredPanicError so the caller can restore the terminal first.
func (app *Application) Run(ctx context.Context) (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
			app.Logger().Error("%v", err)
		}
	}()

	stop := context.AfterFunc(ctx, func() {
		app.backend.Interrupt(ctx.Err())
	})
	defer stop()

	app.Logger().Info("event loop started")
	for {
		app.Refresh()

		if err := app.HandleEvent(app.backend.PollEvent()); err != nil {
			if errors.Is(err, ErrQuit) {
				app.Logger().Info("quit")
				return nil
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// HandleEvent applies one backend event.
func (app *Application) HandleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.ProcessKey(ev.Key)
	case backend.EventResize:
		app.renderer.Resize(ev.Width, ev.Height)
	case backend.EventInterrupt:
		switch data := ev.Data.(type) {
		case watcher.Event:
			app.handleFileChange(data)
		case error:
			return data
		}
	}
	return nil
}

// Refresh paints the current state.
func (app *Application) Refresh() {
	rx := 0
	if app.cy < app.doc.NumRows() {
		rx = app.doc.RawToRender(app.cy, app.cx)
	}

	app.renderer.Render(renderer.Frame{
		Doc:       app.doc,
		CursorRow: app.cy,
		CursorCol: rx,
		Status: statusline.Info{
			Filename: app.filename,
			NumRows:  app.doc.NumRows(),
			Modified: app.doc.IsDirty(),
			Syntax:   app.syntaxName(),
			Row:      app.cy + 1,
		},
		Message: app.message.Text(),
	})
}
