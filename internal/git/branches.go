package git

import (
	"context"
	"fmt"
	"strconv"

	commitkiterrors "commitkit.dev/commitkit/internal/errors"
)

// DefaultLogCount is the number of commits shown when no count is given.
const DefaultLogCount = 10

// CurrentBranch returns the checked out branch name.
func (r *CommandRunner) CurrentBranch(ctx context.Context) (string, error) {
	branch, err := r.Run(ctx, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	if branch == "" {
		return "", commitkiterrors.ErrNotOnBranch
	}
	return branch, nil
}

// Log returns the last limit commits in one-line form.
func (r *CommandRunner) Log(ctx context.Context, limit int) (string, error) {
	if limit <= 0 {
		limit = DefaultLogCount
	}
	output, err := r.RunRaw(ctx, "log", "--oneline", "-n", strconv.Itoa(limit))
	if err != nil {
		return "", fmt.Errorf("failed to read log: %w", err)
	}
	return output, nil
}
