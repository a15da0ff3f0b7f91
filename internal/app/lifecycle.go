package app

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/dshills/ares/internal/project/watcher"
)

// Open loads path into the document and selects its syntax. A missing file
// yields an empty document that will be created on save.
func (app *Application) Open(path string) error {
	log := app.Logger().WithComponent("file").WithField("path", path)

	lines, err := app.store.ReadLines(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info("new file")
		lines = nil
	case err != nil:
		return NewOperationError("open", path, err)
	}

	app.searcher.Reset(app.doc)
	app.doc.LoadLines(lines)
	app.setFilename(path)
	app.cx, app.cy = 0, 0
	app.recordDiskTime()

	log.Info("opened %d lines, syntax %q", app.doc.NumRows(), app.syntaxName())
	return nil
}

// Save writes the document to its file, or starts the Save-As prompt when
// the document has no name.
func (app *Application) Save() {
	if app.filename == "" {
		if err := app.modes.Start("save-as"); err != nil {
			app.logComponentError("mode", err)
		}
		return
	}
	app.save()
}

// save writes the document and reports the outcome in the message bar.
func (app *Application) save() bool {
	data := app.doc.Bytes()
	n, err := app.store.WriteFile(app.filename, data)
	if err != nil {
		app.logComponentError("file", NewOperationError("save", app.filename, err))
		app.SetStatus("Can't save! I/O error: %v", err)
		return false
	}

	app.doc.MarkClean()
	app.recordDiskTime()
	app.Logger().WithComponent("file").WithField("path", app.filename).Info("wrote %d bytes", n)
	app.SetStatus("%d bytes written to disk", n)
	return true
}

func (app *Application) setFilename(path string) {
	app.filename = path
	app.doc.SetSyntax(app.registry.Select(path))
	if app.watchEnabled {
		app.startWatcher(path)
	}
}

func (app *Application) recordDiskTime() {
	if mt, err := app.store.ModTime(app.filename); err == nil {
		app.diskTime = mt
	}
}

func (app *Application) syntaxName() string {
	if syn := app.doc.Syntax(); syn != nil {
		return syn.Name
	}
	return ""
}

// startWatcher (re)targets the file watcher at path. Watch failures only
// disable change notification.
func (app *Application) startWatcher(path string) {
	log := app.Logger().WithComponent("watcher")

	if app.watcher == nil {
		w, err := watcher.New()
		if err != nil {
			log.Warn("start: %v", err)
			return
		}
		app.watcher = w
		app.watchWG.Add(1)
		go app.forwardWatchEvents(w)
	}

	if err := app.watcher.Watch(path); err != nil {
		log.Warn("watch %s: %v", path, err)
	}
}

// forwardWatchEvents posts watcher output into the backend queue so the
// event loop handles it between keystrokes.
func (app *Application) forwardWatchEvents(w *watcher.FileWatcher) {
	defer app.watchWG.Done()

	events, errs := w.Events(), w.Errors()
	for events != nil || errs != nil {
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			app.backend.Interrupt(ev)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			app.Logger().WithComponent("watcher").Warn("%v", err)
		}
	}
}

func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Close(); err != nil {
		app.logComponentError("watcher", err)
	}
	app.watchWG.Wait()
	app.watcher = nil
}

// handleFileChange reacts to the open file changing on disk. Our own saves
// are recognised by modification time and ignored. A clean document is
// reloaded; a modified one only gets a warning.
func (app *Application) handleFileChange(ev watcher.Event) {
	if app.filename == "" {
		return
	}
	if abs, err := filepath.Abs(app.filename); err == nil && ev.Path != "" && ev.Path != abs {
		return
	}
	log := app.Logger().WithComponent("watcher").WithField("op", ev.Op)

	mt, err := app.store.ModTime(app.filename)
	if err != nil {
		log.Info("file gone: %v", err)
		app.SetStatus("File was removed on disk")
		return
	}
	if !mt.After(app.diskTime) {
		return
	}

	if app.doc.IsDirty() {
		app.diskTime = mt
		app.SetStatus("File changed on disk. Ctrl-S overwrites it")
		return
	}

	lines, err := app.store.ReadLines(app.filename)
	if err != nil {
		app.SetStatus("Can't reload: %v", err)
		return
	}
	app.searcher.Reset(app.doc)
	app.doc.LoadLines(lines)
	app.diskTime = mt
	app.clampCursor()
	log.Info("reloaded %d lines", app.doc.NumRows())
	app.SetStatus("File reloaded from disk")
}
