package app

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/ares/internal/config"
	"github.com/dshills/ares/internal/engine/buffer"
	"github.com/dshills/ares/internal/engine/search"
	"github.com/dshills/ares/internal/input/mode"
	"github.com/dshills/ares/internal/integration/git"
	"github.com/dshills/ares/internal/project/filestore"
	"github.com/dshills/ares/internal/project/watcher"
	"github.com/dshills/ares/internal/renderer"
	"github.com/dshills/ares/internal/renderer/backend"
	"github.com/dshills/ares/internal/renderer/highlight"
	"github.com/dshills/ares/internal/renderer/statusline"
)

// helpMessage is shown when the editor starts.
const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | Ctrl-G = goto | Ctrl-K = commit"

// Application owns the document, the cursor and every collaborator the
// editor talks to. All state is touched only from the event loop.
type Application struct {
	cfg    *config.Config
	logger *Logger

	backend  backend.Backend
	renderer *renderer.Renderer
	registry *highlight.Registry
	store    *filestore.Store
	modes    *mode.Manager
	searcher *search.Searcher
	message  *statusline.Message

	doc      *buffer.Document
	filename string
	// diskTime is the file's modification time after our last load or save.
	diskTime time.Time

	// Cursor: cy is the document row, cx the raw column within it.
	cx, cy int

	// Cursor and scroll position when a search started.
	savedCursor buffer.Position
	savedTop    int
	savedLeft   int

	quitLeft int

	watchEnabled bool
	watcher      *watcher.FileWatcher
	watchWG      sync.WaitGroup

	gitOpts []git.Option

	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// Config holds the settings. Defaults to config.Default().
	Config *config.Config

	// Backend is the screen and input source. Required.
	Backend backend.Backend

	// Logger receives diagnostics. Defaults to NullLogger.
	Logger *Logger

	// Filename is opened at startup when set.
	Filename string

	// GitRunner replaces the git process runner.
	GitRunner git.Runner

	// Watch enables external change notification for the open file.
	Watch bool
}

// New creates an Application and opens Options.Filename. A file that
// cannot be read is an error; a missing file starts a new document under
// that name.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, ErrNoBackend
	}

	app := &Application{
		cfg:          opts.Config,
		logger:       opts.Logger,
		backend:      opts.Backend,
		watchEnabled: opts.Watch,
	}
	if app.cfg == nil {
		app.cfg = config.Default()
	}
	if app.logger == nil {
		app.logger = NullLogger
	}
	if opts.GitRunner != nil {
		app.gitOpts = append(app.gitOpts, git.WithRunner(opts.GitRunner))
	}

	app.bootstrap()

	if opts.Filename != "" {
		if err := app.Open(opts.Filename); err != nil {
			app.Close()
			return nil, err
		}
	}

	app.message.Set(helpMessage)
	return app, nil
}

// Document returns the edited document.
func (app *Application) Document() *buffer.Document {
	return app.doc
}

// Filename returns the current file name, or "" for an unnamed document.
func (app *Application) Filename() string {
	return app.filename
}

// Cursor returns the cursor as a document row and raw column.
func (app *Application) Cursor() buffer.Position {
	return buffer.Position{Row: app.cy, Col: app.cx}
}

// Message returns the visible message bar text.
func (app *Application) Message() string {
	return app.message.Text()
}

// Modes returns the prompt mode manager.
func (app *Application) Modes() *mode.Manager {
	return app.modes
}

// Close stops background work. It is safe to call more than once.
func (app *Application) Close() {
	app.stopWatcher()
}
