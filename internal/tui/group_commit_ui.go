package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"commitkit.dev/commitkit/internal/actions"
)

type groupStatus int

const (
	groupPending groupStatus = iota
	groupRunning
	groupDone
	groupFailed
)

type groupItem struct {
	group  actions.Group
	status groupStatus
	detail string
}

// GroupStartedMsg is sent when the orchestrator begins a group.
type GroupStartedMsg struct {
	Index int
}

// GroupFinishedMsg is sent when a group reaches a terminal state.
type GroupFinishedMsg struct {
	Outcome actions.Outcome
}

// GroupRunDoneMsg signals the orchestrator has returned.
type GroupRunDoneMsg struct {
	Report *actions.Report
	Err    error
}

// GroupCommitModel is the bubbletea model for grouped commit progress.
type GroupCommitModel struct {
	items    []groupItem
	spinner  spinner.Model
	report   *actions.Report
	err      error
	done     bool
	quitting bool
}

// NewGroupCommitModel creates a progress model with every group pending.
func NewGroupCommitModel(groups []actions.Group) GroupCommitModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	items := make([]groupItem, len(groups))
	for i, g := range groups {
		items[i] = groupItem{group: g}
	}
	return GroupCommitModel{items: items, spinner: s}
}

func (m GroupCommitModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m GroupCommitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Git commands already in flight are not interrupted; the caller
		// still waits for the run to finish.
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case GroupStartedMsg:
		if item := m.item(msg.Index); item != nil {
			item.status = groupRunning
		}

	case GroupFinishedMsg:
		if item := m.item(msg.Outcome.Index); item != nil {
			if msg.Outcome.Success {
				item.status = groupDone
			} else {
				item.status = groupFailed
				item.detail = fmt.Sprintf("%s failed: %s", msg.Outcome.Stage, firstLine(msg.Outcome.Detail))
			}
		}

	case GroupRunDoneMsg:
		m.report = msg.Report
		m.err = msg.Err
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// item returns the entry for a 1-based group index.
func (m *GroupCommitModel) item(index int) *groupItem {
	if index < 1 || index > len(m.items) {
		return nil
	}
	return &m.items[index-1]
}

func (m GroupCommitModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, item := range m.items {
		var icon string
		switch item.status {
		case groupPending:
			icon = dimStyle.Render("○")
		case groupRunning:
			icon = m.spinner.View()
		case groupDone:
			icon = successStyle.Render("✓")
		case groupFailed:
			icon = failureStyle.Render("✗")
		}

		files := fmt.Sprintf("(%d)", len(item.group.Files))
		line := fmt.Sprintf("  %s %s %s %s", icon, typeStyle.Render(item.group.Type), item.group.Summary, dimStyle.Render(files))
		if item.status == groupFailed {
			line += " " + failureStyle.Render(item.detail)
		}

		b.WriteString(line)
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if m.done && m.report != nil {
		b.WriteString("\n")
		summary := fmt.Sprintf("%d/%d groups committed", m.report.Succeeded, m.report.Total)
		if m.report.Succeeded == m.report.Total {
			b.WriteString(successStyle.Render("✓ " + summary))
		} else {
			b.WriteString(failureStyle.Render(summary))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// programObserver forwards orchestrator progress into a running program.
type programObserver struct {
	program *tea.Program
}

func (o programObserver) GroupStarted(index int, _ actions.Group) {
	o.program.Send(GroupStartedMsg{Index: index})
}

func (o programObserver) GroupFinished(outcome actions.Outcome) {
	o.program.Send(GroupFinishedMsg{Outcome: outcome})
}

// GroupRunFunc runs a grouped commit, reporting progress to obs.
type GroupRunFunc func(obs actions.Observer) (*actions.Report, error)

// RunGroupCommitTUI shows live progress while run executes in the
// background, and returns its report once both have finished.
func RunGroupCommitTUI(groups []actions.Group, run GroupRunFunc, out io.Writer) (*actions.Report, error) {
	p := tea.NewProgram(NewGroupCommitModel(groups), tea.WithInput(os.Stdin), tea.WithOutput(out))

	results := make(chan GroupRunDoneMsg, 1)
	go func() {
		report, err := run(programObserver{program: p})
		result := GroupRunDoneMsg{Report: report, Err: err}
		results <- result
		p.Send(result)
	}()

	if _, err := p.Run(); err != nil {
		result := <-results
		if result.Err != nil {
			return result.Report, result.Err
		}
		return result.Report, fmt.Errorf("progress view failed: %w", err)
	}

	result := <-results
	return result.Report, result.Err
}

// LineObserver prints one line per group event, for terminals where the
// progress view cannot run.
type LineObserver struct {
	Splog *Splog
}

func (o LineObserver) GroupStarted(index int, group actions.Group) {
	o.Splog.Info("  ⋯ Group %d [%s] %s...", index, group.Type, group.Summary)
}

func (o LineObserver) GroupFinished(outcome actions.Outcome) {
	if outcome.Success {
		o.Splog.Info("  ✓ Group %d committed", outcome.Index)
		return
	}
	o.Splog.Info("  ✗ Group %d %s failed", outcome.Index, outcome.Stage)
}
