package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Add stages paths. Absolute paths are made relative to the repository root.
func (r *Repository) Add(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	args := []string{"add", "--"}
	for _, p := range paths {
		args = append(args, r.relative(p))
	}

	if _, err := r.git(ctx, args...); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	return nil
}

// Commit records the staged changes and returns git's summary output.
func (r *Repository) Commit(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	output, err := r.git(ctx, "commit", "-m", message)
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return strings.TrimSpace(output), nil
}

// Push sends branch to remote. An empty branch pushes the current one.
func (r *Repository) Push(ctx context.Context, remote, branch string) error {
	if remote == "" {
		remote = "origin"
	}

	args := []string{"push", remote}
	if branch != "" {
		args = append(args, branch)
	}

	if _, err := r.git(ctx, args...); err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}

// CommitFile stages file and commits it with message.
func (r *Repository) CommitFile(ctx context.Context, file, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	if err := r.Add(ctx, file); err != nil {
		return "", err
	}
	return r.Commit(ctx, message)
}

func (r *Repository) relative(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(r.path, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
