package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
)

type call struct {
	dir  string
	args []string
}

type fakeRunner struct {
	mu      sync.Mutex
	calls   []call
	results map[string]fakeResult
}

type fakeResult struct {
	stdout string
	stderr string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, dir string, args ...string) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{dir: dir, args: append([]string(nil), args...)})
	res := f.results[args[0]]
	return res.stdout, res.stderr, res.err
}

func testRepo(t *testing.T, runner Runner, opts ...Option) (*Repository, string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	repo, err := Open(dir, append([]Option{WithRunner(runner)}, opts...)...)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return repo, dir
}

func TestOpenNotRepository(t *testing.T) {
	_, err := Open(t.TempDir())
	if !errors.Is(err, ErrNotRepository) {
		t.Errorf("Open = %v, want ErrNotRepository", err)
	}
}

func TestOpenGitFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"worktree", "gitdir: /elsewhere/.git/worktrees/x\n", nil},
		{"garbage", "hello", ErrNotRepository},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, ".git"), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Open(dir)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Open = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	repo, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if repo.Path() != root {
		t.Errorf("Path = %q, want %q", repo.Path(), root)
	}
}

func TestInvocationIDs(t *testing.T) {
	var seen []Invocation
	runner := &fakeRunner{}
	repo, _ := testRepo(t, runner, WithObserver(func(inv Invocation) {
		seen = append(seen, inv)
	}))

	ctx := context.Background()
	if err := repo.Add(ctx, "a.txt"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := repo.Commit(ctx, "msg"); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("observed %d invocations, want 2", len(seen))
	}
	if seen[0].ID == "" || seen[0].ID == seen[1].ID {
		t.Errorf("ids not unique: %q %q", seen[0].ID, seen[1].ID)
	}
	if seen[1].Args[0] != "commit" {
		t.Errorf("second invocation = %v", seen[1].Args)
	}
}

func TestCommandErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		verb   string
		result fakeResult
		want   error
	}{
		{
			name:   "nothing to commit",
			verb:   "commit",
			result: fakeResult{stdout: "On branch main\nnothing to commit, working tree clean\n", err: errors.New("exit status 1")},
			want:   ErrNothingToCommit,
		},
		{
			name:   "missing remote",
			verb:   "push",
			result: fakeResult{stderr: "fatal: 'nope' does not appear to be a git repository\n", err: errors.New("exit status 128")},
			want:   ErrRemoteNotFound,
		},
		{
			name:   "auth",
			verb:   "push",
			result: fakeResult{stderr: "remote: Authentication failed for 'https://x'\n", err: errors.New("exit status 128")},
			want:   ErrAuthenticationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{results: map[string]fakeResult{tt.verb: tt.result}}
			repo, _ := testRepo(t, runner)

			var err error
			if tt.verb == "commit" {
				_, err = repo.Commit(context.Background(), "msg")
			} else {
				err = repo.Push(context.Background(), "nope", "")
			}

			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var cmdErr *CommandError
			if !errors.As(err, &cmdErr) {
				t.Fatalf("err %T is not a CommandError", err)
			}
			if cmdErr.ID == "" {
				t.Error("CommandError has no id")
			}
		})
	}
}

func TestCommandErrorUnknown(t *testing.T) {
	cause := errors.New("exit status 2")
	runner := &fakeRunner{results: map[string]fakeResult{
		"add": {stderr: "fatal: weird\n", err: cause},
	}}
	repo, _ := testRepo(t, runner)

	err := repo.Add(context.Background(), "x")
	if !errors.Is(err, cause) {
		t.Fatalf("err = %v, want wrapping %v", err, cause)
	}
	if !strings.Contains(err.Error(), "fatal: weird") {
		t.Errorf("message %q lacks stderr", err.Error())
	}
}

func TestRunnerFunc(t *testing.T) {
	var gotDir string
	var gotArgs []string
	fn := RunnerFunc(func(_ context.Context, dir string, args ...string) (string, string, error) {
		gotDir, gotArgs = dir, args
		return "ok", "", nil
	})
	repo, dir := testRepo(t, fn)

	out, err := repo.Commit(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if out != "ok" {
		t.Errorf("output = %q", out)
	}
	if gotDir != dir {
		t.Errorf("dir = %q, want %q", gotDir, dir)
	}
	if !reflect.DeepEqual(gotArgs, []string{"commit", "-m", "hello"}) {
		t.Errorf("args = %v", gotArgs)
	}
}
