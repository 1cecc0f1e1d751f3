package cli

import (
	"github.com/spf13/cobra"

	"commitkit.dev/commitkit/internal/cli/common"
	"commitkit.dev/commitkit/internal/mcp"
	"commitkit.dev/commitkit/internal/runtime"
)

// newServeCmd creates the serve command
func newServeCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the commitkit tools to an MCP client over stdio",
		Long: `Serve the commitkit tools to an MCP client over stdio.

Requests are read from stdin and answered on stdout, one JSON-RPC message per line.
Console messages go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.RunWithConsole(cmd, cmd.ErrOrStderr(), func(ctx *runtime.Context) error {
				server := mcp.NewServer(ctx.Service, mcp.Options{
					Version: version,
					Logger:  ctx.Splog.Logger(),
				})
				ctx.Splog.Debug("commitkit MCP server listening on stdio")
				return server.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}
}
