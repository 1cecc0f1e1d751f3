package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// editorHelp is appended below a message opened for editing.
const editorHelp = `
# Edit the commit message above. Lines starting with '#' are ignored,
# and an empty message aborts the commit.`

// resolveEditor picks the editor the way git does: GIT_EDITOR, then
// core.editor, then EDITOR, then vi.
func resolveEditor() string {
	if editor := os.Getenv("GIT_EDITOR"); editor != "" {
		return editor
	}
	if output, err := exec.Command("git", "config", "--get", "core.editor").Output(); err == nil {
		if editor := strings.TrimSpace(string(output)); editor != "" {
			return editor
		}
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}

// EditMessage opens the user's editor on message and returns the cleaned
// result.
func EditMessage(message string) (string, error) {
	tmpFile, err := os.CreateTemp("", "COMMITKIT_EDITMSG-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	if _, err := tmpFile.WriteString(message + "\n" + editorHelp + "\n"); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.Command("sh", "-c", resolveEditor()+` "$1"`, "sh", tmpFile.Name()) //nolint:gosec // editor chosen by the user
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited with error: %w", err)
	}

	content, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return CleanMessage(string(content)), nil
}

// CleanMessage drops comment lines and surrounding blank lines.
func CleanMessage(content string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, strings.TrimRight(line, " \t\r"))
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
