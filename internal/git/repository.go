package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	commitkiterrors "commitkit.dev/commitkit/internal/errors"
)

// Repository wraps a go-git repository
type Repository struct {
	*gogit.Repository
}

// OpenRepository opens the git repository containing path.
// Failures are reported as RepositoryUnavailableError.
func OpenRepository(path string) (*Repository, error) {
	path = ResolveRoot(path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, commitkiterrors.NewRepositoryUnavailableError(path, fmt.Errorf("failed to resolve path: %w", err))
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, commitkiterrors.NewRepositoryUnavailableError(path, err)
	}

	return &Repository{Repository: repo}, nil
}

// CheckRepository verifies that path is inside a git work tree.
func CheckRepository(path string) error {
	repo, err := OpenRepository(path)
	if err != nil {
		return err
	}
	if _, err := repo.Worktree(); err != nil {
		return commitkiterrors.NewRepositoryUnavailableError(ResolveRoot(path), err)
	}
	return nil
}

// GetRepoRoot returns the root directory of the work tree.
func (r *Repository) GetRepoRoot() (string, error) {
	worktree, err := r.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	return worktree.Filesystem.Root(), nil
}
