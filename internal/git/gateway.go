package git

import (
	"context"
	"time"
)

// Gateway is the set of version control operations the actions depend on.
// Each call names its repository root and is independent of every other call.
type Gateway interface {
	CheckRepository(repoRoot string) error
	Stage(ctx context.Context, repoRoot string, paths []string) error
	StageAll(ctx context.Context, repoRoot string) error
	Commit(ctx context.Context, repoRoot, message string) error
	Status(ctx context.Context, repoRoot string) ([]StatusEntry, error)
	Log(ctx context.Context, repoRoot string, limit int) (string, error)
	CurrentBranch(ctx context.Context, repoRoot string) (string, error)
}

// CLIGateway implements Gateway with the git executable and go-git.
type CLIGateway struct {
	timeout time.Duration
}

// NewGateway creates a gateway. A zero timeout disables the per-command limit.
func NewGateway(timeout time.Duration) *CLIGateway {
	return &CLIGateway{timeout: timeout}
}

func (g *CLIGateway) runner(repoRoot string) *CommandRunner {
	return NewCommandRunner(repoRoot, g.timeout)
}

func (g *CLIGateway) CheckRepository(repoRoot string) error {
	return CheckRepository(repoRoot)
}

func (g *CLIGateway) Stage(ctx context.Context, repoRoot string, paths []string) error {
	return g.runner(repoRoot).Stage(ctx, paths)
}

func (g *CLIGateway) StageAll(ctx context.Context, repoRoot string) error {
	return g.runner(repoRoot).StageAll(ctx)
}

func (g *CLIGateway) Commit(ctx context.Context, repoRoot, message string) error {
	return g.runner(repoRoot).Commit(ctx, message)
}

// Status reads the working tree through go-git; ctx is accepted for
// interface symmetry and is not consulted.
func (g *CLIGateway) Status(_ context.Context, repoRoot string) ([]StatusEntry, error) {
	return ReadStatus(repoRoot)
}

func (g *CLIGateway) Log(ctx context.Context, repoRoot string, limit int) (string, error) {
	return g.runner(repoRoot).Log(ctx, limit)
}

func (g *CLIGateway) CurrentBranch(ctx context.Context, repoRoot string) (string, error) {
	return g.runner(repoRoot).CurrentBranch(ctx)
}
