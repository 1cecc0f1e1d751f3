package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectRecentSubjects asserts the newest commit subjects, newest first.
func ExpectRecentSubjects(t *testing.T, repo *GitRepo, expected ...string) {
	t.Helper()

	subjects, err := repo.Subjects()
	require.NoError(t, err, "Failed to read commit subjects")
	require.GreaterOrEqual(t, len(subjects), len(expected), "Not enough commits")
	require.Equal(t, expected, subjects[:len(expected)], "Commit subjects do not match")
}

// ExpectCommitCount asserts the number of commits reachable from HEAD.
func ExpectCommitCount(t *testing.T, repo *GitRepo, expected int) {
	t.Helper()

	count, err := repo.CommitCount()
	require.NoError(t, err, "Failed to count commits")
	require.Equal(t, expected, count, "Commit count does not match")
}

// ExpectCleanTree asserts there is nothing to commit, untracked files included.
func ExpectCleanTree(t *testing.T, repo *GitRepo) {
	t.Helper()

	status, err := repo.RunGitCommandAndGetOutput("status", "--porcelain")
	require.NoError(t, err, "Failed to read status")
	require.Empty(t, status, "Working tree is not clean")
}
