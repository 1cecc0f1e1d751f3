package actions

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"commitkit.dev/commitkit/internal/commit"
	commitkiterrors "commitkit.dev/commitkit/internal/errors"
	"commitkit.dev/commitkit/internal/git"
)

// Group is one commit to carve out of the working tree.
type Group struct {
	Files   []string `json:"files" yaml:"files"`
	Type    string   `json:"commit_type" yaml:"commit_type"`
	Summary string   `json:"short_desc" yaml:"short_desc"`
	Details []string `json:"details" yaml:"details"`
}

// Step names the gateway call an outcome failed in.
type Step string

const (
	StepStage  Step = "stage"
	StepCommit Step = "commit"
)

// Outcome records what happened to one group.
type Outcome struct {
	Index     int
	Type      string
	Summary   string
	FileCount int
	Success   bool
	Stage     Step
	Detail    string
}

// Report aggregates the outcomes of one grouped commit run.
type Report struct {
	Total     int
	Succeeded int
	Outcomes  []Outcome
	Text      string
}

// Failed returns the number of groups that did not produce a commit.
func (r *Report) Failed() int {
	return r.Total - r.Succeeded
}

// Observer is notified as each group is processed. Calls happen on the
// orchestrator's goroutine, in group order.
type Observer interface {
	GroupStarted(index int, group Group)
	GroupFinished(outcome Outcome)
}

// Orchestrator stages and commits groups one after another.
type Orchestrator struct {
	gateway      git.Gateway
	logger       *slog.Logger
	pushReminder bool
}

// NewOrchestrator creates an Orchestrator. A nil logger discards log output.
func NewOrchestrator(gateway git.Gateway, logger *slog.Logger, pushReminder bool) *Orchestrator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Orchestrator{gateway: gateway, logger: logger, pushReminder: pushReminder}
}

// Run processes groups in order against repoRoot. A group whose staging or
// commit fails is recorded and skipped; later groups are still attempted
// and earlier commits stay in place. obs may be nil.
func (o *Orchestrator) Run(ctx context.Context, groups []Group, repoRoot string, obs Observer) *Report {
	repoRoot = git.ResolveRoot(repoRoot)
	logger := o.logger.With("run_id", uuid.NewString(), "repo", repoRoot)
	logger.Info("grouped commit started", "groups", len(groups))

	report := &Report{
		Total:    len(groups),
		Outcomes: make([]Outcome, 0, len(groups)),
	}

	for i, group := range groups {
		index := i + 1
		if obs != nil {
			obs.GroupStarted(index, group)
		}

		outcome := o.runGroup(ctx, repoRoot, index, group)
		if outcome.Success {
			report.Succeeded++
			logger.Info("group committed", "group", index, "type", group.Type, "files", outcome.FileCount)
		} else {
			logger.Warn("group failed", "group", index, "type", group.Type, "step", outcome.Stage, "detail", outcome.Detail)
		}
		report.Outcomes = append(report.Outcomes, outcome)

		if obs != nil {
			obs.GroupFinished(outcome)
		}
	}

	report.Text = RenderReport(report, o.pushReminder)
	logger.Info("grouped commit finished", "succeeded", report.Succeeded, "total", report.Total)
	return report
}

func (o *Orchestrator) runGroup(ctx context.Context, repoRoot string, index int, group Group) Outcome {
	outcome := Outcome{
		Index:     index,
		Type:      group.Type,
		Summary:   group.Summary,
		FileCount: len(group.Files),
	}

	classification := commit.Lookup(group.Type)
	message := commit.Compose(classification, group.Summary, group.Details)

	if err := o.gateway.Stage(ctx, repoRoot, group.Files); err != nil {
		outcome.Stage = StepStage
		outcome.Detail = commitkiterrors.Diagnostic(err)
		return outcome
	}

	if err := o.gateway.Commit(ctx, repoRoot, message); err != nil {
		outcome.Stage = StepCommit
		outcome.Detail = commitkiterrors.Diagnostic(err)
		return outcome
	}

	outcome.Success = true
	return outcome
}
