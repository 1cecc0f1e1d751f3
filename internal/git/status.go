package git

import (
	"fmt"
	"sort"

	gogit "github.com/go-git/go-git/v5"
)

// ChangeKind classifies a changed path in the working tree.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeModified ChangeKind = "modified"
	ChangeDeleted  ChangeKind = "deleted"
)

// StatusEntry is one changed path, relative to the repository root.
type StatusEntry struct {
	Path string
	Kind ChangeKind
}

// ReadStatus returns the working tree changes of the repository containing
// root, untracked files included. Index and worktree states are folded
// together; paths in any other state (renamed, copied, unmerged) are
// omitted. Entries are sorted by path.
func ReadStatus(root string) ([]StatusEntry, error) {
	repo, err := OpenRepository(root)
	if err != nil {
		return nil, err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read status: %w", err)
	}

	entries := make([]StatusEntry, 0, len(status))
	for path, fs := range status {
		kind, ok := classifyChange(fs)
		if !ok {
			continue
		}
		entries = append(entries, StatusEntry{Path: path, Kind: kind})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

func classifyChange(fs *gogit.FileStatus) (ChangeKind, bool) {
	switch {
	case fs.Staging == gogit.Added || fs.Staging == gogit.Untracked || fs.Worktree == gogit.Untracked:
		return ChangeAdded, true
	case fs.Staging == gogit.Modified || fs.Worktree == gogit.Modified:
		return ChangeModified, true
	case fs.Staging == gogit.Deleted || fs.Worktree == gogit.Deleted:
		return ChangeDeleted, true
	default:
		return "", false
	}
}
