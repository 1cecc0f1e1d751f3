package git

import (
	"context"

	commitkiterrors "commitkit.dev/commitkit/internal/errors"
)

// Stage adds paths to the index. An empty path set is rejected before any
// git process is started.
func (r *CommandRunner) Stage(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return commitkiterrors.NewStageError(paths, commitkiterrors.ErrEmptyPathSet)
	}

	args := append([]string{"add", "--"}, paths...)
	if _, err := r.Run(ctx, args...); err != nil {
		return commitkiterrors.NewStageError(paths, err)
	}
	return nil
}

// StageAll stages every change in the working tree, untracked files included.
func (r *CommandRunner) StageAll(ctx context.Context) error {
	return r.Stage(ctx, []string{"."})
}
