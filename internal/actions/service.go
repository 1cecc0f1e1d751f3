package actions

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"commitkit.dev/commitkit/internal/commit"
	commitkiterrors "commitkit.dev/commitkit/internal/errors"
	"commitkit.dev/commitkit/internal/git"
)

// Result is the text outcome of a single-shot action. Failed marks results
// that report an error to the caller.
type Result struct {
	Text   string
	Failed bool
}

func failure(format string, args ...any) Result {
	return Result{Text: MarkerFailure + " " + fmt.Sprintf(format, args...), Failed: true}
}

// ServiceOptions configures a Service.
type ServiceOptions struct {
	Gateway         git.Gateway
	Logger          *slog.Logger
	DefaultLogCount int
	PushReminder    bool
}

// Service runs the commitkit tools against a Gateway.
type Service struct {
	gateway      git.Gateway
	logger       *slog.Logger
	logCount     int
	pushReminder bool
}

// NewService creates a Service from opts.
func NewService(opts ServiceOptions) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logCount := opts.DefaultLogCount
	if logCount <= 0 {
		logCount = git.DefaultLogCount
	}
	return &Service{
		gateway:      opts.Gateway,
		logger:       logger,
		logCount:     logCount,
		pushReminder: opts.PushReminder,
	}
}

func (s *Service) checkRepository(repoRoot string) (Result, bool) {
	if err := s.gateway.CheckRepository(repoRoot); err != nil {
		return RepositoryFailure(err), false
	}
	return Result{}, true
}

// Status lists the working tree changes of the repository at repoRoot.
func (s *Service) Status(ctx context.Context, repoRoot string) Result {
	repoRoot = git.ResolveRoot(repoRoot)
	if res, ok := s.checkRepository(repoRoot); !ok {
		return res
	}

	entries, err := s.gateway.Status(ctx, repoRoot)
	if err != nil {
		return failure("Failed to read status: %s", commitkiterrors.Diagnostic(err))
	}
	return Result{Text: RenderStatus(entries)}
}

// RenderStatus formats status entries, one per line.
func RenderStatus(entries []git.StatusEntry) string {
	if len(entries) == 0 {
		return MarkerSuccess + " Working tree clean, nothing to commit"
	}

	var b strings.Builder
	b.WriteString("📊 Working tree changes:\n")
	for _, e := range entries {
		b.WriteString("\n")
		switch e.Kind {
		case git.ChangeAdded:
			b.WriteString("➕ added ")
		case git.ChangeModified:
			b.WriteString("📝 modified ")
		case git.ChangeDeleted:
			b.WriteString("➖ deleted ")
		}
		b.WriteString(e.Path)
	}
	return b.String()
}

// GenerateMessage composes a commit message without touching any repository.
func (s *Service) GenerateMessage(commitType, summary string, details []string) Result {
	message := commit.Compose(commit.Lookup(commitType), summary, details)
	return Result{Text: "📝 Generated commit message:\n\n```\n" + message + "\n```"}
}

// Commit stages every change in repoRoot and commits it with message.
func (s *Service) Commit(ctx context.Context, repoRoot, message string) Result {
	repoRoot = git.ResolveRoot(repoRoot)
	if res, ok := s.checkRepository(repoRoot); !ok {
		return res
	}

	if err := s.gateway.StageAll(ctx, repoRoot); err != nil {
		s.logger.Warn("stage all failed", "repo", repoRoot, "error", err)
		return failure("git add failed: %s", commitkiterrors.Diagnostic(err))
	}
	if err := s.gateway.Commit(ctx, repoRoot, message); err != nil {
		s.logger.Warn("commit failed", "repo", repoRoot, "error", err)
		return failure("git commit failed: %s", commitkiterrors.Diagnostic(err))
	}

	s.logger.Info("commit created", "repo", repoRoot)
	text := MarkerSuccess + " Commit created\n\n" + message
	if s.pushReminder {
		text += "\n\n" + PushReminder
	}
	return Result{Text: text}
}

// ListTypes renders the classification registry as a markdown table.
func (s *Service) ListTypes() Result {
	var b strings.Builder
	b.WriteString("📋 Available commit types:\n\n")
	b.WriteString("| Type | Emoji | Description |\n")
	b.WriteString("|------|-------|-------------|\n")
	for _, c := range commit.Types() {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", c.Key, c.Emoji, c.Description)
	}
	return Result{Text: strings.TrimSuffix(b.String(), "\n")}
}

// Log shows the last count commits. count <= 0 uses the configured default.
func (s *Service) Log(ctx context.Context, repoRoot string, count int) Result {
	repoRoot = git.ResolveRoot(repoRoot)
	if res, ok := s.checkRepository(repoRoot); !ok {
		return res
	}
	if count <= 0 {
		count = s.logCount
	}

	out, err := s.gateway.Log(ctx, repoRoot, count)
	if err != nil {
		return failure("git log failed: %s", commitkiterrors.Diagnostic(err))
	}
	return Result{Text: fmt.Sprintf("📜 Last %d commits:\n\n%s", count, strings.TrimRight(out, "\n"))}
}

// Branch reports the branch HEAD points at.
func (s *Service) Branch(ctx context.Context, repoRoot string) Result {
	repoRoot = git.ResolveRoot(repoRoot)
	if res, ok := s.checkRepository(repoRoot); !ok {
		return res
	}

	branch, err := s.gateway.CurrentBranch(ctx, repoRoot)
	if err != nil {
		return failure("Failed to read current branch: %s", commitkiterrors.Diagnostic(err))
	}
	return Result{Text: "🌿 Current branch: " + branch}
}

// GroupCommit runs the grouped commit orchestrator over groups. Only an
// unusable repository is returned as an error; group failures live in the
// report.
func (s *Service) GroupCommit(ctx context.Context, repoRoot string, groups []Group, obs Observer) (*Report, error) {
	repoRoot = git.ResolveRoot(repoRoot)
	if err := s.gateway.CheckRepository(repoRoot); err != nil {
		return nil, err
	}
	return NewOrchestrator(s.gateway, s.logger, s.pushReminder).Run(ctx, groups, repoRoot, obs), nil
}

// RepositoryFailure formats err the way single-shot tools report an
// unusable repository.
func RepositoryFailure(err error) Result {
	return failure("Cannot open git repository: %v", err)
}
