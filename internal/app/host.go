package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dshills/ares/internal/engine/buffer"
	"github.com/dshills/ares/internal/engine/search"
	"github.com/dshills/ares/internal/integration/git"
)

// gitTimeout bounds one commit or push.
const gitTimeout = 30 * time.Second

// SetStatus implements mode.Host.
func (app *Application) SetStatus(format string, args ...any) {
	app.message.Set(format, args...)
}

// SaveAs implements mode.Host. The new name also selects the syntax.
func (app *Application) SaveAs(filename string) {
	app.setFilename(filename)
	app.save()
}

// Search implements mode.Host.
func (app *Application) Search(query string, dir search.Direction, fresh bool) {
	if fresh {
		app.searcher.Restore(app.doc)
		app.searcher.Start(query)
	}

	m, ok := app.searcher.Next(app.doc, dir)
	if !ok {
		return
	}
	app.cy, app.cx = m.Row, m.Col

	// Scroll so the match is the top row; the render pass keeps it there
	// while still honouring the horizontal offset.
	vp := app.renderer.Viewport()
	vp.ScrollTo(m.Row, vp.LeftCol())
}

// EndSearch implements mode.Host.
func (app *Application) EndSearch(accept bool) {
	app.searcher.Reset(app.doc)
	if accept {
		return
	}
	app.cy, app.cx = app.savedCursor.Row, app.savedCursor.Col
	app.renderer.Viewport().ScrollTo(app.savedTop, app.savedLeft)
}

// StartSearch remembers the cursor and enters the search prompt.
func (app *Application) StartSearch() {
	vp := app.renderer.Viewport()
	app.savedCursor = buffer.Position{Row: app.cy, Col: app.cx}
	app.savedTop, app.savedLeft = vp.TopRow(), vp.LeftCol()
	app.searcher.Reset(app.doc)
	if err := app.modes.Start("search"); err != nil {
		app.logComponentError("mode", err)
	}
}

// GotoLine implements mode.Host.
func (app *Application) GotoLine(line int) error {
	n := app.doc.NumRows()
	if line < 1 || line > n {
		return fmt.Errorf("%w: %d (document has %d lines)", ErrLineOutOfRange, line, n)
	}
	app.cy, app.cx = line-1, 0
	return nil
}

// Commit implements mode.Host. The file is saved first when modified, then
// staged and committed, then pushed when git.push is set.
func (app *Application) Commit(message string) {
	if app.filename == "" {
		app.SetStatus("Commit failed: %v", ErrNoFilename)
		return
	}
	if app.doc.IsDirty() && !app.save() {
		return
	}

	log := app.Logger().WithComponent("git")
	opts := append([]git.Option{git.WithObserver(func(inv git.Invocation) {
		l := log.WithFields(map[string]any{"id": inv.ID, "took": inv.Duration})
		if inv.Err != nil {
			l.Warn("git %s: %v", strings.Join(inv.Args, " "), inv.Err)
			return
		}
		l.Debug("git %s", strings.Join(inv.Args, " "))
	})}, app.gitOpts...)

	repo, err := git.Discover(filepath.Dir(app.filename), opts...)
	if err != nil {
		app.SetStatus("Commit failed: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()

	if _, err := repo.CommitFile(ctx, app.filename, message); err != nil {
		if errors.Is(err, git.ErrNothingToCommit) {
			app.SetStatus("Nothing to commit")
			return
		}
		app.SetStatus("Commit failed: %v", err)
		return
	}

	if !app.cfg.Git.Push {
		app.SetStatus("Committed %s", filepath.Base(app.filename))
		return
	}
	if err := repo.Push(ctx, app.cfg.Git.Remote, app.cfg.Git.Branch); err != nil {
		app.SetStatus("Committed, but push failed: %v", err)
		return
	}
	app.SetStatus("Committed and pushed to %s", app.cfg.Git.Remote)
}

// StartCommit enters the commit prompt for a named file.
func (app *Application) StartCommit() {
	if app.filename == "" {
		app.SetStatus("Save the file before committing")
		return
	}
	if err := app.modes.Start("commit"); err != nil {
		app.logComponentError("mode", err)
	}
}
