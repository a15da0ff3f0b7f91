package git

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner executes git with args in dir and returns its captured output.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (stdout, stderr string, err error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, dir string, args ...string) (string, string, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, dir string, args ...string) (string, string, error) {
	return f(ctx, dir, args...)
}

// execRunner runs the git binary found on PATH.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
