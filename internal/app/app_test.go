package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/ares/internal/config"
	"github.com/dshills/ares/internal/input/key"
	"github.com/dshills/ares/internal/project/watcher"
	"github.com/dshills/ares/internal/renderer/backend"
	"github.com/dshills/ares/internal/renderer/highlight"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Syntax.Dirs = nil
	return cfg
}

func newTestApp(t *testing.T, opts Options) (*Application, *backend.NullBackend) {
	t.Helper()
	b := backend.NewNullBackend(80, 24)
	opts.Backend = b
	if opts.Config == nil {
		opts.Config = testConfig()
	}
	app, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(app.Close)
	return app, b
}

// typeKeys feeds s to the application; '\n' is Enter.
func typeKeys(t *testing.T, app *Application, s string) {
	t.Helper()
	for _, r := range s {
		ev := key.NewRuneEvent(r, key.ModNone)
		if r == '\n' {
			ev = key.NewSpecialEvent(key.KeyEnter, key.ModNone)
		}
		if err := app.ProcessKey(ev); err != nil {
			t.Fatalf("ProcessKey(%q): %v", r, err)
		}
	}
}

func press(t *testing.T, app *Application, ev key.Event) {
	t.Helper()
	if err := app.ProcessKey(ev); err != nil {
		t.Fatalf("ProcessKey(%v): %v", ev, err)
	}
}

func special(k key.Key) key.Event {
	return key.NewSpecialEvent(k, key.ModNone)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewRequiresBackend(t *testing.T) {
	if _, err := New(Options{}); !errors.Is(err, ErrNoBackend) {
		t.Errorf("New = %v, want ErrNoBackend", err)
	}
}

func TestNewOpensFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.c", "int main() {\n\treturn 0;\n}\n")
	app, _ := newTestApp(t, Options{Filename: path})

	if got := app.Document().NumRows(); got != 3 {
		t.Errorf("NumRows = %d, want 3", got)
	}
	if app.syntaxName() != "c" {
		t.Errorf("syntax = %q, want c", app.syntaxName())
	}
	if app.Document().IsDirty() {
		t.Error("freshly opened document is dirty")
	}
	if !strings.HasPrefix(app.Message(), "HELP:") {
		t.Errorf("message = %q", app.Message())
	}
}

func TestNewMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	app, _ := newTestApp(t, Options{Filename: path})

	if app.Document().NumRows() != 0 {
		t.Errorf("NumRows = %d, want 0", app.Document().NumRows())
	}
	if app.Filename() != path {
		t.Errorf("Filename = %q", app.Filename())
	}
}

func TestNewUnreadableFileFails(t *testing.T) {
	dir := t.TempDir()
	_, err := New(Options{Backend: backend.NewNullBackend(80, 24), Config: testConfig(), Filename: dir})

	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "open" {
		t.Fatalf("New(dir) = %v, want open OperationError", err)
	}
}

func TestTyping(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	typeKeys(t, app, "hello\nworld")
	if got := app.Document().String(); got != "hello\nworld\n" {
		t.Errorf("content = %q", got)
	}
	if pos := app.Cursor(); pos.Row != 1 || pos.Col != 5 {
		t.Errorf("cursor = %+v, want {1 5}", pos)
	}

	press(t, app, special(key.KeyBackspace))
	press(t, app, special(key.KeyHome))
	press(t, app, special(key.KeyBackspace))
	if got := app.Document().String(); got != "helloworl\n" {
		t.Errorf("join at col 0: content = %q, want %q", got, "helloworl\n")
	}
	if pos := app.Cursor(); pos.Row != 0 || pos.Col != 5 {
		t.Errorf("cursor after join = %+v, want {0 5}", pos)
	}

	press(t, app, special(key.KeyDelete))
	if got := app.Document().String(); got != "helloorl\n" {
		t.Errorf("after Delete = %q", got)
	}

	press(t, app, key.NewSpecialEvent(key.KeyTab, key.ModNone))
	if row, _ := app.Document().Row(0); string(row.Raw) != "hello\torl" {
		t.Errorf("after Tab = %q", row.Raw)
	}
}

func TestCursorMovement(t *testing.T) {
	path := writeFile(t, t.TempDir(), "f.txt", "long line here\nab\n")
	app, _ := newTestApp(t, Options{Filename: path})

	press(t, app, special(key.KeyEnd))
	if pos := app.Cursor(); pos.Col != 14 {
		t.Fatalf("End: cursor = %+v", pos)
	}
	press(t, app, special(key.KeyDown))
	if pos := app.Cursor(); pos.Row != 1 || pos.Col != 2 {
		t.Errorf("Down snaps column: cursor = %+v, want {1 2}", pos)
	}
	press(t, app, special(key.KeyDown))
	press(t, app, special(key.KeyDown))
	if pos := app.Cursor(); pos.Row != 2 || pos.Col != 0 {
		t.Errorf("past last row: cursor = %+v, want {2 0}", pos)
	}
	press(t, app, special(key.KeyRight))
	if pos := app.Cursor(); pos.Col != 0 {
		t.Errorf("Right on virtual row moved to %+v", pos)
	}
	press(t, app, special(key.KeyPageUp))
	if pos := app.Cursor(); pos.Row != 0 {
		t.Errorf("PageUp: cursor = %+v", pos)
	}
	press(t, app, special(key.KeyPageDown))
	if pos := app.Cursor(); pos.Row != 2 {
		t.Errorf("PageDown: cursor = %+v, want row 2", pos)
	}
	press(t, app, special(key.KeyLeft))
	if pos := app.Cursor(); pos.Col != 0 {
		t.Errorf("Left at col 0: cursor = %+v", pos)
	}
}

func TestSave(t *testing.T) {
	path := writeFile(t, t.TempDir(), "f.txt", "abc\n")
	app, _ := newTestApp(t, Options{Filename: path})

	typeKeys(t, app, "x")
	press(t, app, key.Ctrl('s'))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "xabc\n" {
		t.Errorf("file = %q", data)
	}
	if app.Message() != "5 bytes written to disk" {
		t.Errorf("message = %q", app.Message())
	}
	if app.Document().IsDirty() {
		t.Error("document dirty after save")
	}
}

func TestSaveError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "f.txt")
	app, _ := newTestApp(t, Options{Filename: path})

	typeKeys(t, app, "x")
	press(t, app, key.Ctrl('s'))

	if !strings.HasPrefix(app.Message(), "Can't save! I/O error:") {
		t.Errorf("message = %q", app.Message())
	}
	if !app.Document().IsDirty() {
		t.Error("failed save cleared dirty flag")
	}
}

func TestSaveAs(t *testing.T) {
	dir := t.TempDir()
	app, _ := newTestApp(t, Options{})
	typeKeys(t, app, "int x;")

	press(t, app, key.Ctrl('s'))
	if !app.Modes().Active() {
		t.Fatal("Save-As prompt not active")
	}
	if app.Message() != "Save as:  (ESC to cancel)" {
		t.Errorf("prompt = %q", app.Message())
	}

	target := filepath.Join(dir, "x.c")
	typeKeys(t, app, target)
	press(t, app, special(key.KeyEnter))

	if app.Modes().Active() {
		t.Error("prompt still active")
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "int x;\n" {
		t.Errorf("file = %q", data)
	}
	if app.syntaxName() != "c" {
		t.Errorf("syntax after save-as = %q", app.syntaxName())
	}
}

func TestSaveAsCancel(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	press(t, app, key.Ctrl('s'))
	typeKeys(t, app, "abc")
	press(t, app, special(key.KeyEscape))

	if app.Message() != "Save aborted" {
		t.Errorf("message = %q", app.Message())
	}
	if app.Filename() != "" {
		t.Errorf("Filename = %q", app.Filename())
	}
}

func TestQuit(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	if err := app.ProcessKey(key.Ctrl('q')); !errors.Is(err, ErrQuit) {
		t.Fatalf("clean quit = %v, want ErrQuit", err)
	}

	typeKeys(t, app, "x")
	if err := app.ProcessKey(key.Ctrl('q')); err != nil {
		t.Fatalf("first dirty quit = %v", err)
	}
	if !strings.Contains(app.Message(), "Press Ctrl-Q 1 more times") {
		t.Errorf("message = %q", app.Message())
	}
	if err := app.ProcessKey(key.Ctrl('q')); !errors.Is(err, ErrQuit) {
		t.Errorf("second dirty quit = %v, want ErrQuit", err)
	}
}

func TestQuitCounterResets(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	typeKeys(t, app, "x")

	press(t, app, key.Ctrl('q'))
	press(t, app, special(key.KeyLeft))
	if err := app.ProcessKey(key.Ctrl('q')); err != nil {
		t.Errorf("quit after another key = %v, want warning again", err)
	}
}

func TestSearch(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pets.txt", "dog\ncat\nbat\ncat\n")
	app, _ := newTestApp(t, Options{Filename: path})

	press(t, app, key.Ctrl('f'))
	typeKeys(t, app, "cat")
	if pos := app.Cursor(); pos.Row != 1 {
		t.Fatalf("first match row = %d, want 1", pos.Row)
	}
	press(t, app, special(key.KeyDown))
	if pos := app.Cursor(); pos.Row != 3 {
		t.Errorf("next match row = %d, want 3", pos.Row)
	}
	press(t, app, special(key.KeyDown))
	if pos := app.Cursor(); pos.Row != 1 {
		t.Errorf("wrapped match row = %d, want 1", pos.Row)
	}

	press(t, app, special(key.KeyEscape))
	if pos := app.Cursor(); pos.Row != 0 || pos.Col != 0 {
		t.Errorf("cancel: cursor = %+v, want origin", pos)
	}
	for i, n := 0, app.Document().NumRows(); i < n; i++ {
		row, _ := app.Document().Row(i)
		for _, tag := range row.Highlight {
			if tag == highlight.TagMatch {
				t.Fatalf("row %d still has match highlight", i)
			}
		}
	}
}

func TestSearchAccept(t *testing.T) {
	path := writeFile(t, t.TempDir(), "f.txt", "one\n\tneedle\n")
	app, _ := newTestApp(t, Options{Filename: path})

	press(t, app, key.Ctrl('f'))
	typeKeys(t, app, "needle")
	press(t, app, special(key.KeyEnter))

	if pos := app.Cursor(); pos.Row != 1 || pos.Col != 1 {
		t.Errorf("cursor = %+v, want {1 1}", pos)
	}
	if app.Modes().Active() {
		t.Error("search still active")
	}
}

func TestGotoLine(t *testing.T) {
	path := writeFile(t, t.TempDir(), "f.txt", "a\nb\nc\n")
	app, _ := newTestApp(t, Options{Filename: path})

	press(t, app, key.Ctrl('g'))
	typeKeys(t, app, "3\n")
	if pos := app.Cursor(); pos.Row != 2 {
		t.Errorf("cursor = %+v, want row 2", pos)
	}

	press(t, app, key.Ctrl('g'))
	typeKeys(t, app, "9\n")
	if pos := app.Cursor(); pos.Row != 2 {
		t.Errorf("out of range moved cursor to %+v", pos)
	}
	if !strings.Contains(app.Message(), "line out of range") {
		t.Errorf("message = %q", app.Message())
	}
}

func TestRefreshPaintsStatus(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.c", "int x;\n")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	app, b := newTestApp(t, Options{Filename: "main.c"})

	app.Refresh()

	if got := b.RowText(0); got != "int x;" {
		t.Errorf("row 0 = %q", got)
	}
	status := b.RowText(22)
	if !strings.HasPrefix(status, "main.c - 1 lines") {
		t.Errorf("status = %q", status)
	}
	if !strings.HasSuffix(status, "c | 1/1") {
		t.Errorf("status right = %q", status)
	}
	if got := b.RowText(23); !strings.HasPrefix(got, "HELP:") {
		t.Errorf("message bar = %q", got)
	}
}

func TestRunQuits(t *testing.T) {
	app, b := newTestApp(t, Options{})

	for _, r := range "hi" {
		b.PostEvent(backend.Event{Type: backend.EventKey, Key: key.NewRuneEvent(r, key.ModNone)})
	}
	b.Resize(100, 30)
	b.PostEvent(backend.Event{Type: backend.EventKey, Key: key.Ctrl('q')})
	b.PostEvent(backend.Event{Type: backend.EventKey, Key: key.Ctrl('q')})

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := app.Document().String(); got != "hi\n" {
		t.Errorf("content = %q", got)
	}
	if app.renderer.Viewport().Width() != 100 {
		t.Errorf("viewport width = %d after resize", app.renderer.Viewport().Width())
	}
}

func TestRunContextCancel(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestFileChangedOnDisk(t *testing.T) {
	path := writeFile(t, t.TempDir(), "f.txt", "old\n")
	app, _ := newTestApp(t, Options{Filename: path})

	later := time.Now().Add(time.Hour)
	if err := os.WriteFile(path, []byte("new\nlines\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}

	abs, _ := filepath.Abs(path)
	err := app.HandleEvent(backend.Event{
		Type: backend.EventInterrupt,
		Data: watcher.Event{Path: abs, Op: watcher.OpWrite},
	})
	if err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if got := app.Document().String(); got != "new\nlines\n" {
		t.Errorf("content = %q, want reload", got)
	}
	if app.Message() != "File reloaded from disk" {
		t.Errorf("message = %q", app.Message())
	}
}

func TestFileChangedWhileDirty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "f.txt", "old\n")
	app, _ := newTestApp(t, Options{Filename: path})
	typeKeys(t, app, "x")

	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}

	abs, _ := filepath.Abs(path)
	if err := app.HandleEvent(backend.Event{Type: backend.EventInterrupt, Data: watcher.Event{Path: abs}}); err != nil {
		t.Fatal(err)
	}
	if got := app.Document().String(); got != "xold\n" {
		t.Errorf("dirty document replaced: %q", got)
	}
	if !strings.HasPrefix(app.Message(), "File changed on disk") {
		t.Errorf("message = %q", app.Message())
	}
}

func TestOwnSaveIgnoredByWatcher(t *testing.T) {
	path := writeFile(t, t.TempDir(), "f.txt", "a\n")
	app, _ := newTestApp(t, Options{Filename: path})
	typeKeys(t, app, "b")
	press(t, app, key.Ctrl('s'))
	msg := app.Message()

	abs, _ := filepath.Abs(path)
	if err := app.HandleEvent(backend.Event{Type: backend.EventInterrupt, Data: watcher.Event{Path: abs, Op: watcher.OpWrite}}); err != nil {
		t.Fatal(err)
	}
	if app.Message() != msg {
		t.Errorf("message changed to %q", app.Message())
	}
}
