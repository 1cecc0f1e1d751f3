// Package commit holds the commit classification registry and the
// commit message composer.
//
// Both are pure: the registry is a fixed table that is never mutated,
// and Compose renders the same message for the same inputs.
package commit
