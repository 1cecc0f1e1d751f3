package cli

import (
	"github.com/spf13/cobra"

	"commitkit.dev/commitkit/internal/cli/common"
	"commitkit.dev/commitkit/internal/runtime"
)

// newBranchCmd creates the branch command
func newBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branch",
		Short: "Show the current branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return common.PrintResult(ctx, ctx.Service.Branch(cmd.Context(), ctx.RepoRoot))
			})
		},
	}
}
