// Package errors provides sentinel errors and custom error types for commitkit.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrRepositoryUnavailable indicates that the target path is not a git repository
	ErrRepositoryUnavailable = errors.New("repository unavailable")

	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrEmptyPathSet indicates that a stage request carried no paths
	ErrEmptyPathSet = errors.New("no paths to stage")

	// ErrStageFailed indicates that staging a group's files failed
	ErrStageFailed = errors.New("stage failed")

	// ErrCommitFailed indicates that creating a commit failed
	ErrCommitFailed = errors.New("commit failed")
)

// RepositoryUnavailableError represents an error when a path is not inside a git work tree
type RepositoryUnavailableError struct {
	Path string
	Err  error
}

func (e *RepositoryUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s is not a git repository: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s is not a git repository", e.Path)
}

// Is returns true if the target error is ErrRepositoryUnavailable
func (e *RepositoryUnavailableError) Is(target error) bool {
	return target == ErrRepositoryUnavailable
}

func (e *RepositoryUnavailableError) Unwrap() error {
	return e.Err
}

// NewRepositoryUnavailableError creates a new RepositoryUnavailableError
func NewRepositoryUnavailableError(path string, err error) *RepositoryUnavailableError {
	return &RepositoryUnavailableError{Path: path, Err: err}
}

// StageError represents a failure to stage a set of paths
type StageError struct {
	Paths []string
	Err   error
}

func (e *StageError) Error() string {
	if len(e.Paths) == 0 {
		return fmt.Sprintf("failed to stage: %s", Diagnostic(e.Err))
	}
	return fmt.Sprintf("failed to stage %s: %s", strings.Join(e.Paths, ", "), Diagnostic(e.Err))
}

// Is returns true if the target error is ErrStageFailed
func (e *StageError) Is(target error) bool {
	return target == ErrStageFailed
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError
func NewStageError(paths []string, err error) *StageError {
	return &StageError{Paths: paths, Err: err}
}

// CommitError represents a failure to create a commit
type CommitError struct {
	Err error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("failed to commit: %s", Diagnostic(e.Err))
}

// Is returns true if the target error is ErrCommitFailed
func (e *CommitError) Is(target error) bool {
	return target == ErrCommitFailed
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// NewCommitError creates a new CommitError
func NewCommitError(err error) *CommitError {
	return &CommitError{Err: err}
}

// GitCommandError represents an error from a git command execution.
// It also covers the case where the git binary could not be launched at all.
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// Diagnostic returns the tool's own explanation of the failure: stderr when
// present, then stdout (git prints "nothing to commit" there), then the
// process error itself.
func (e *GitCommandError) Diagnostic() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return s
	}
	if s := strings.TrimSpace(e.Stdout); s != "" {
		return s
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// Diagnostic extracts the most useful human-readable text from err.
// Git command failures yield the raw tool output, stage and commit errors
// the diagnostic of their cause, everything else its message.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}
	var gitErr *GitCommandError
	if errors.As(err, &gitErr) {
		return gitErr.Diagnostic()
	}
	var stageErr *StageError
	if errors.As(err, &stageErr) && stageErr.Err != nil {
		return Diagnostic(stageErr.Err)
	}
	var commitErr *CommitError
	if errors.As(err, &commitErr) && commitErr.Err != nil {
		return Diagnostic(commitErr.Err)
	}
	return err.Error()
}
