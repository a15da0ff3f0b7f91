package git

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for git operations.
var (
	// ErrNotRepository indicates the path is not a git repository.
	ErrNotRepository = errors.New("not a git repository")

	// ErrRepositoryNotFound indicates no repository was found.
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrNothingToCommit indicates there are no staged changes to commit.
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrEmptyMessage indicates a commit was requested without a message.
	ErrEmptyMessage = errors.New("empty commit message")

	// ErrRemoteNotFound indicates the remote was not found.
	ErrRemoteNotFound = errors.New("remote not found")

	// ErrAuthenticationFailed indicates authentication failed.
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// CommandError describes a failed git invocation.
type CommandError struct {
	ID     string
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("git %s: %s", strings.Join(e.Args, " "), msg)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// classify maps well-known git diagnostics onto sentinel errors.
func classify(stdout, stderr string) error {
	text := strings.ToLower(stdout + "\n" + stderr)
	switch {
	case strings.Contains(text, "nothing to commit"),
		strings.Contains(text, "no changes added to commit"):
		return ErrNothingToCommit
	case strings.Contains(text, "does not appear to be a git repository"),
		strings.Contains(text, "no such remote"):
		return ErrRemoteNotFound
	case strings.Contains(text, "authentication failed"),
		strings.Contains(text, "permission denied (publickey)"):
		return ErrAuthenticationFailed
	case strings.Contains(text, "not a git repository"):
		return ErrNotRepository
	}
	return nil
}
