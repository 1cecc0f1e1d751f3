package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	commitkiterrors "commitkit.dev/commitkit/internal/errors"
)

func TestRepositoryUnavailableError(t *testing.T) {
	t.Run("matches sentinel", func(t *testing.T) {
		err := commitkiterrors.NewRepositoryUnavailableError("/tmp/nope", errors.New("repository does not exist"))
		require.ErrorIs(t, err, commitkiterrors.ErrRepositoryUnavailable)
		require.Contains(t, err.Error(), "/tmp/nope is not a git repository")
	})

	t.Run("matches sentinel when wrapped", func(t *testing.T) {
		err := fmt.Errorf("status: %w", commitkiterrors.NewRepositoryUnavailableError(".", nil))
		require.ErrorIs(t, err, commitkiterrors.ErrRepositoryUnavailable)

		var repoErr *commitkiterrors.RepositoryUnavailableError
		require.True(t, errors.As(err, &repoErr))
		require.Equal(t, ".", repoErr.Path)
	})
}

func TestStageAndCommitErrors(t *testing.T) {
	gitErr := commitkiterrors.NewGitCommandError("git", []string{"add", "--", "missing.txt"}, "",
		"fatal: pathspec 'missing.txt' did not match any files\n", errors.New("exit status 128"))

	t.Run("stage error exposes the tool diagnostic", func(t *testing.T) {
		err := commitkiterrors.NewStageError([]string{"missing.txt"}, gitErr)
		require.ErrorIs(t, err, commitkiterrors.ErrStageFailed)
		require.NotErrorIs(t, err, commitkiterrors.ErrCommitFailed)
		require.Equal(t, "fatal: pathspec 'missing.txt' did not match any files", commitkiterrors.Diagnostic(err))
	})

	t.Run("commit error exposes the tool diagnostic", func(t *testing.T) {
		err := commitkiterrors.NewCommitError(gitErr)
		require.ErrorIs(t, err, commitkiterrors.ErrCommitFailed)
		require.Contains(t, err.Error(), "pathspec 'missing.txt'")
	})

	t.Run("empty path set passes through", func(t *testing.T) {
		err := commitkiterrors.NewStageError(nil, commitkiterrors.ErrEmptyPathSet)
		require.ErrorIs(t, err, commitkiterrors.ErrEmptyPathSet)
		require.Equal(t, "no paths to stage", commitkiterrors.Diagnostic(err))
		require.Equal(t, "failed to stage: no paths to stage", err.Error())
	})

	t.Run("wrapped stage error still yields the cause", func(t *testing.T) {
		err := fmt.Errorf("group 2: %w", commitkiterrors.NewStageError(nil, commitkiterrors.ErrEmptyPathSet))
		require.Equal(t, "no paths to stage", commitkiterrors.Diagnostic(err))
	})

	t.Run("commit error with plain cause yields the cause", func(t *testing.T) {
		err := commitkiterrors.NewCommitError(errors.New("signal: killed"))
		require.Equal(t, "signal: killed", commitkiterrors.Diagnostic(err))
	})
}

func TestGitCommandErrorDiagnostic(t *testing.T) {
	tests := []struct {
		name string
		err  *commitkiterrors.GitCommandError
		want string
	}{
		{
			name: "prefers stderr",
			err:  commitkiterrors.NewGitCommandError("git", nil, "out", " err \n", errors.New("exit status 1")),
			want: "err",
		},
		{
			name: "falls back to stdout",
			err:  commitkiterrors.NewGitCommandError("git", nil, "nothing to commit, working tree clean\n", "", errors.New("exit status 1")),
			want: "nothing to commit, working tree clean",
		},
		{
			name: "falls back to launch error",
			err:  commitkiterrors.NewGitCommandError("git", nil, "", "", errors.New(`exec: "git": executable file not found in $PATH`)),
			want: `exec: "git": executable file not found in $PATH`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Diagnostic())
		})
	}
}

func TestDiagnosticNil(t *testing.T) {
	require.Equal(t, "", commitkiterrors.Diagnostic(nil))
}
