package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"commitkit.dev/commitkit/internal/actions"
)

func update(t *testing.T, m GroupCommitModel, msg tea.Msg) (GroupCommitModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(GroupCommitModel)
	require.True(t, ok)
	return model, cmd
}

func TestGroupCommitModel(t *testing.T) {
	withColorProfile(t, termenv.Ascii)

	groups := []actions.Group{
		{Files: []string{"a.txt"}, Type: "fix", Summary: "null check"},
		{Files: []string{"b.txt", "c.txt"}, Type: "feat", Summary: "new flag"},
	}
	m := NewGroupCommitModel(groups)

	view := m.View()
	require.Contains(t, view, "○ fix null check (1)")
	require.Contains(t, view, "○ feat new flag (2)")

	m, _ = update(t, m, GroupStartedMsg{Index: 1})
	require.Equal(t, groupRunning, m.items[0].status)

	m, _ = update(t, m, GroupFinishedMsg{Outcome: actions.Outcome{Index: 1, Success: true}})
	m, _ = update(t, m, GroupStartedMsg{Index: 2})
	m, _ = update(t, m, GroupFinishedMsg{Outcome: actions.Outcome{
		Index: 2, Stage: actions.StepCommit, Detail: "nothing to commit\nmore",
	}})

	view = m.View()
	require.Contains(t, view, "✓ fix null check")
	require.Contains(t, view, "✗ feat new flag (2) commit failed: nothing to commit")
	require.NotContains(t, view, "more")

	report := &actions.Report{Total: 2, Succeeded: 1}
	m, cmd := update(t, m, GroupRunDoneMsg{Report: report})
	require.NotNil(t, cmd)
	require.True(t, m.done)
	require.Contains(t, m.View(), "1/2 groups committed")
}

func TestGroupCommitModelIgnoresUnknownIndex(t *testing.T) {
	m := NewGroupCommitModel([]actions.Group{{Type: "fix"}})
	m, _ = update(t, m, GroupStartedMsg{Index: 5})
	m, _ = update(t, m, GroupFinishedMsg{Outcome: actions.Outcome{Index: 0}})
	require.Equal(t, groupPending, m.items[0].status)
}

func TestLineObserver(t *testing.T) {
	var buf bytes.Buffer
	splog, err := NewSplogWithConfig(&buf, "")
	require.NoError(t, err)

	obs := LineObserver{Splog: splog}
	obs.GroupStarted(1, actions.Group{Type: "docs", Summary: "readme"})
	obs.GroupFinished(actions.Outcome{Index: 1, Success: true})
	obs.GroupStarted(2, actions.Group{Type: "fix", Summary: "typo"})
	obs.GroupFinished(actions.Outcome{Index: 2, Stage: actions.StepStage})

	require.Equal(t,
		"  ⋯ Group 1 [docs] readme...\n  ✓ Group 1 committed\n  ⋯ Group 2 [fix] typo...\n  ✗ Group 2 stage failed\n",
		buf.String())
}
