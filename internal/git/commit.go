package git

import (
	"context"

	commitkiterrors "commitkit.dev/commitkit/internal/errors"
)

// Commit records the staged changes with message. It fails when nothing is
// staged or git reports any other problem; the error carries git's output.
func (r *CommandRunner) Commit(ctx context.Context, message string) error {
	if _, err := r.Run(ctx, "commit", "-m", message); err != nil {
		return commitkiterrors.NewCommitError(err)
	}
	return nil
}
