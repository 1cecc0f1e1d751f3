package actions_test

import (
	"context"
	"errors"
	"slices"
	"sync"

	commitkiterrors "commitkit.dev/commitkit/internal/errors"
	"commitkit.dev/commitkit/internal/git"
)

// fakeGateway records calls and fails the ones it is told to.
type fakeGateway struct {
	mu sync.Mutex

	repoErr    error
	failStage  map[string]error // keyed by first path
	failCommit map[string]error // keyed by message
	entries    []git.StatusEntry
	log        string
	branch     string
	branchErr  error

	staged    [][]string
	committed []string
	calls     []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		failStage:  map[string]error{},
		failCommit: map[string]error{},
		branch:     "main",
	}
}

func (f *fakeGateway) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeGateway) CheckRepository(string) error {
	f.record("check")
	return f.repoErr
}

func (f *fakeGateway) Stage(_ context.Context, _ string, paths []string) error {
	f.record("stage")
	if len(paths) == 0 {
		return commitkiterrors.NewStageError(paths, commitkiterrors.ErrEmptyPathSet)
	}
	if err, ok := f.failStage[paths[0]]; ok {
		return commitkiterrors.NewStageError(paths, err)
	}
	f.mu.Lock()
	f.staged = append(f.staged, slices.Clone(paths))
	f.mu.Unlock()
	return nil
}

func (f *fakeGateway) StageAll(ctx context.Context, repoRoot string) error {
	return f.Stage(ctx, repoRoot, []string{"."})
}

func (f *fakeGateway) Commit(_ context.Context, _ string, message string) error {
	f.record("commit")
	if err, ok := f.failCommit[message]; ok {
		return commitkiterrors.NewCommitError(err)
	}
	f.mu.Lock()
	f.committed = append(f.committed, message)
	f.mu.Unlock()
	return nil
}

func (f *fakeGateway) Status(context.Context, string) ([]git.StatusEntry, error) {
	f.record("status")
	return f.entries, nil
}

func (f *fakeGateway) Log(_ context.Context, _ string, limit int) (string, error) {
	f.record("log")
	if f.log == "" {
		return "", errors.New("no log configured")
	}
	return f.log, nil
}

func (f *fakeGateway) CurrentBranch(context.Context, string) (string, error) {
	f.record("branch")
	return f.branch, f.branchErr
}

func gitFailure(stderr string) error {
	return commitkiterrors.NewGitCommandError("git", nil, "", stderr, errors.New("exit status 1"))
}
