package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/ares/internal/engine/buffer"
	"github.com/dshills/ares/internal/engine/search"
	"github.com/dshills/ares/internal/input/mode"
	"github.com/dshills/ares/internal/plugin/lua"
	"github.com/dshills/ares/internal/project/filestore"
	"github.com/dshills/ares/internal/renderer"
	"github.com/dshills/ares/internal/renderer/highlight"
	"github.com/dshills/ares/internal/renderer/statusline"
)

// bootstrap initializes components in dependency order. Problems with
// optional resources are logged and do not stop startup.
func (app *Application) bootstrap() {
	log := app.Logger().WithComponent("bootstrap")

	app.registry = highlight.DefaultRegistry()
	n, err := loadSyntaxDirs(app.registry, app.cfg.Syntax.Dirs)
	if err != nil {
		var list *ErrorList
		if errors.As(err, &list) {
			for _, e := range list.Errors() {
				log.Warn("syntax: %v", e)
			}
		} else {
			log.Warn("syntax: %v", err)
		}
	}
	log.Debug("loaded %d syntax definitions from %d dirs", n, len(app.cfg.Syntax.Dirs))

	theme := highlight.DefaultTheme()
	if err := theme.Override(app.cfg.Theme); err != nil {
		log.Warn("theme: %v", err)
	}

	app.renderer = renderer.New(app.backend, renderer.WithTheme(theme))
	app.store = filestore.NewStore()
	app.doc = buffer.NewDocument(buffer.WithTabStop(app.cfg.Editor.TabStop))
	app.message = statusline.NewMessage(app.cfg.Editor.MessageTimeout.Std())
	app.searcher = search.NewSearcher()
	app.modes = mode.NewManager(app)
	app.modes.OnChange(func(from, to mode.Mode) {
		app.Logger().WithComponent("mode").Debug("%s -> %s", modeName(from), modeName(to))
	})
	app.quitLeft = app.cfg.Editor.QuitTimes
}

func modeName(m mode.Mode) string {
	if m == nil {
		return "edit"
	}
	return m.Name()
}

// loadSyntaxDirs registers every *.yaml, *.yml and *.lua definition found
// in dirs. Missing directories are skipped. Definitions loaded later
// replace earlier ones with the same name, built-ins included.
func loadSyntaxDirs(reg *highlight.Registry, dirs []string) (int, error) {
	errs := NewErrorList()
	loaded := 0

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			errs.Add(NewOperationError("read syntax dir", dir, err))
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())

			var defs []*highlight.Syntax
			switch strings.ToLower(filepath.Ext(entry.Name())) {
			case ".yaml", ".yml":
				defs, err = highlight.LoadYAMLFile(path)
			case ".lua":
				defs, err = lua.LoadSyntaxFile(path)
			default:
				continue
			}
			if err != nil {
				errs.Add(NewOperationError("load syntax", path, err))
				continue
			}

			for _, def := range defs {
				if err := reg.Register(def); err != nil {
					errs.Add(NewOperationError("register syntax", path, err))
					continue
				}
				loaded++
			}
		}
	}

	return loaded, errs.AsError()
}
