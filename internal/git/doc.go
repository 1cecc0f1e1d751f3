// Package git is the version control gateway.
//
// It wraps git command execution and go-git for:
//   - Staging paths and creating commits
//   - Working tree status (added, modified, deleted files)
//   - Recent history and the current branch
//   - Detecting whether a path is inside a repository
//
// Every operation takes the repository root explicitly and holds no state
// between calls. This package should be the only place where git commands
// are executed.
package git
