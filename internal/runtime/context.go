package runtime

import (
	"fmt"
	"io"

	"commitkit.dev/commitkit/internal/actions"
	"commitkit.dev/commitkit/internal/config"
	"commitkit.dev/commitkit/internal/git"
	"commitkit.dev/commitkit/internal/tui"
)

// Context provides access to the service and output for commands
type Context struct {
	Config   *config.Config
	Splog    *tui.Splog
	Gateway  git.Gateway
	Service  *actions.Service
	RepoRoot string
}

// Options controls how a Context is built.
type Options struct {
	// ConfigPath overrides config.GetConfigPath.
	ConfigPath string
	// Console receives user-facing output.
	Console io.Writer
	// RepoRoot is the repository commands operate on; empty means ".".
	RepoRoot string
	// Gateway replaces the git gateway, for tests.
	Gateway git.Gateway
}

// NewContext loads configuration and builds the service stack.
func NewContext(opts Options) (*Context, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.GetConfigPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logFile := cfg.LogFile
	if logFile == "" {
		logFile = tui.GetLogFilePath()
	}
	splog, err := tui.NewSplogWithConfig(opts.Console, logFile)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	gateway := opts.Gateway
	if gateway == nil {
		gateway = git.NewGateway(cfg.Timeout())
	}

	return &Context{
		Config:  cfg,
		Splog:   splog,
		Gateway: gateway,
		Service: actions.NewService(actions.ServiceOptions{
			Gateway:         gateway,
			Logger:          splog.Logger(),
			DefaultLogCount: cfg.DefaultLogCount,
			PushReminder:    cfg.ShowPushReminder(),
		}),
		RepoRoot: git.ResolveRoot(opts.RepoRoot),
	}, nil
}

// Close releases the log file.
func (c *Context) Close() error {
	return c.Splog.Close()
}
