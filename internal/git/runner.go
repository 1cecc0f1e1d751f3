package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	commitkiterrors "commitkit.dev/commitkit/internal/errors"
)

// DefaultRepoRoot is used when a caller does not name a repository.
const DefaultRepoRoot = "."

// CommandRunner handles execution of git commands in one working directory.
type CommandRunner struct {
	workingDir string
	timeout    time.Duration
}

// NewCommandRunner creates a new CommandRunner. A zero timeout means git
// commands run until they exit or ctx is cancelled.
func NewCommandRunner(workingDir string, timeout time.Duration) *CommandRunner {
	return &CommandRunner{workingDir: ResolveRoot(workingDir), timeout: timeout}
}

// ResolveRoot maps an empty repository root to DefaultRepoRoot.
func ResolveRoot(root string) string {
	if strings.TrimSpace(root) == "" {
		return DefaultRepoRoot
	}
	return root
}

// Run executes a git command with the given context and returns trimmed stdout.
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, args...)
}

// RunRaw executes a git command and returns stdout without trimming.
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, false, args...)
}

func (r *CommandRunner) runInternal(ctx context.Context, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if _, ok := ctx.Deadline(); !ok && r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.workingDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", commitkiterrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", commitkiterrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}
