// Package common provides shared helper functions for CLI commands.
package common

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"commitkit.dev/commitkit/internal/actions"
	"commitkit.dev/commitkit/internal/runtime"
	"commitkit.dev/commitkit/internal/tui"
)

// ErrReported marks a failure whose message was already printed.
var ErrReported = errors.New("failure already reported")

// Run builds a runtime context from the global flags and passes it to fn.
// Console output goes to the command's stdout.
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	return RunWithConsole(cmd, cmd.OutOrStdout(), fn)
}

// RunWithConsole is Run with an explicit console writer.
func RunWithConsole(cmd *cobra.Command, console io.Writer, fn func(ctx *runtime.Context) error) error {
	repoRoot, _ := cmd.Flags().GetString("path")
	configPath, _ := cmd.Flags().GetString("config")

	ctx, err := runtime.NewContext(runtime.Options{
		ConfigPath: configPath,
		Console:    console,
		RepoRoot:   repoRoot,
	})
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()

	return fn(ctx)
}

// IsTerminal reports whether w is a terminal, deciding styled output.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && f == os.Stdout && tui.IsStdoutTTY()
}

// PrintResult writes a tool result, styled on terminals. Failed results
// return ErrReported so the process exits non-zero.
func PrintResult(ctx *runtime.Context, res actions.Result) error {
	text := res.Text
	if IsTerminal(ctx.Splog.Writer()) {
		text = tui.StyleResult(text)
	}
	ctx.Splog.Page(text + "\n")
	if res.Failed {
		return ErrReported
	}
	return nil
}
