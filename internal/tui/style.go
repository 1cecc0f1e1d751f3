package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	tipStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	typeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// headerPrefixes mark the first line of a tool result.
var headerPrefixes = []string{"📊", "📜", "🌿", "📝 Generated", "📋"}

// StyleResult colors a tool result line by line: success lines green,
// failures red, tips dim and section headers bold. Other lines pass through.
func StyleResult(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = styleLine(line)
	}
	return strings.Join(lines, "\n")
}

func styleLine(line string) string {
	switch {
	case strings.HasPrefix(line, "✅"):
		return successStyle.Render(line)
	case strings.HasPrefix(line, "❌"):
		return failureStyle.Render(line)
	case strings.HasPrefix(line, "💡"):
		return tipStyle.Render(line)
	}
	for _, p := range headerPrefixes {
		if strings.HasPrefix(line, p) {
			return headerStyle.Render(line)
		}
	}
	return line
}
