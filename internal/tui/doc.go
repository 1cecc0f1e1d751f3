// Package tui provides the terminal side of commitkit.
//
// It handles:
//   - Structured logging and console output (Splog, with rotating log files)
//   - Terminal styling of tool results (using lipgloss)
//   - Confirmation prompts (using survey)
//   - Grouped commit progress (using bubbletea)
package tui
