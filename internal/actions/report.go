package actions

import (
	"fmt"
	"strings"
)

// Result line markers. Every outcome line of a rendered report starts with
// exactly one of them.
const (
	MarkerSuccess = "✅"
	MarkerFailure = "❌"
)

// PushReminder is appended to reports and commit results that created commits.
const PushReminder = "💡 To publish, run: git push"

// RenderReport formats r for humans: a summary line, one line per outcome
// and, when something was committed and remind is set, the push reminder.
func RenderReport(r *Report, remind bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Grouped commit finished: %d/%d groups succeeded", r.Succeeded, r.Total)

	if len(r.Outcomes) > 0 {
		b.WriteString("\n")
	}
	for _, o := range r.Outcomes {
		b.WriteString("\n")
		b.WriteString(renderOutcome(o))
	}

	if remind && r.Succeeded > 0 {
		b.WriteString("\n\n")
		b.WriteString(PushReminder)
	}
	return b.String()
}

func renderOutcome(o Outcome) string {
	if o.Success {
		return fmt.Sprintf("%s Group %d [%s]: %s (%s)", MarkerSuccess, o.Index, singleLine(o.Type), singleLine(o.Summary), pluralFiles(o.FileCount))
	}
	return fmt.Sprintf("%s Group %d [%s] %s failed: %s", MarkerFailure, o.Index, singleLine(o.Type), o.Stage, singleLine(o.Detail))
}

func pluralFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}

// singleLine folds multi-line text so each outcome stays on one line.
func singleLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "; ")
}

// CountMarkers counts the success and failure outcome lines in a rendered report.
func CountMarkers(text string) (succeeded, failed int) {
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, MarkerSuccess):
			succeeded++
		case strings.HasPrefix(line, MarkerFailure):
			failed++
		}
	}
	return succeeded, failed
}
