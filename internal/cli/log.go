package cli

import (
	"github.com/spf13/cobra"

	"commitkit.dev/commitkit/internal/cli/common"
	"commitkit.dev/commitkit/internal/runtime"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:     "log",
		Short:   "Show recent commits in one-line form",
		Aliases: []string{"l"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return common.PrintResult(ctx, ctx.Service.Log(cmd.Context(), ctx.RepoRoot, count))
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of commits to show (default from config, 10)")

	return cmd
}
