// Package actions provides the business logic behind every commitkit tool.
//
// Each action corresponds to a tool (status, commit, smart commit, etc.)
// and returns the text result a caller sees, whether that caller is the
// MCP server or the CLI.
//
// Key patterns:
//   - Actions receive their git.Gateway explicitly and hold no repository state
//   - Failures of single-shot actions are returned as formatted text, never panics
//   - The Orchestrator turns per-group failures into outcomes and keeps going
//
// Dependencies:
//   - commit: classification registry and message composer
//   - git: version control gateway
package actions
