package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Invocation reports one completed git command.
type Invocation struct {
	ID       string
	Args     []string
	Duration time.Duration
	Err      error
}

// Option configures a Repository.
type Option func(*Repository)

// WithRunner replaces the process runner.
func WithRunner(r Runner) Option {
	return func(repo *Repository) {
		if r != nil {
			repo.runner = r
		}
	}
}

// WithObserver registers a callback invoked after every git command.
func WithObserver(fn func(Invocation)) Option {
	return func(repo *Repository) {
		repo.observe = fn
	}
}

// Repository represents a git working tree.
type Repository struct {
	path    string
	runner  Runner
	observe func(Invocation)
}

// Open opens the repository rooted at path.
func Open(path string, opts ...Option) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}

	gitDir := filepath.Join(absPath, ".git")
	info, err := os.Stat(gitDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotRepository
		}
		return nil, fmt.Errorf("stat .git: %w", err)
	}

	// .git can be a file pointing elsewhere for worktrees and submodules
	if !info.IsDir() {
		content, err := os.ReadFile(gitDir)
		if err != nil {
			return nil, fmt.Errorf("read .git file: %w", err)
		}
		if !bytes.HasPrefix(content, []byte("gitdir:")) {
			return nil, ErrNotRepository
		}
	}

	repo := &Repository{path: absPath, runner: execRunner{}}
	for _, opt := range opts {
		opt(repo)
	}
	return repo, nil
}

// Discover finds the repository containing path and opens it.
func Discover(path string, opts ...Option) (*Repository, error) {
	root, err := discoverRoot(path)
	if err != nil {
		return nil, err
	}
	return Open(root, opts...)
}

func discoverRoot(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("abs path: %w", err)
	}

	current := absPath
	for {
		if _, err := os.Stat(filepath.Join(current, ".git")); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrRepositoryNotFound
		}
		current = parent
	}
}

// Path returns the repository root path.
func (r *Repository) Path() string {
	return r.path
}

// git executes a git command in the repository.
func (r *Repository) git(ctx context.Context, args ...string) (string, error) {
	id := uuid.New().String()
	start := time.Now()

	stdout, stderr, err := r.runner.Run(ctx, r.path, args...)
	if err != nil {
		cause := classify(stdout, stderr)
		if cause == nil {
			cause = err
		}
		err = &CommandError{ID: id, Args: args, Stderr: stderr, Err: cause}
	}

	if r.observe != nil {
		r.observe(Invocation{ID: id, Args: args, Duration: time.Since(start), Err: err})
	}
	return stdout, err
}
