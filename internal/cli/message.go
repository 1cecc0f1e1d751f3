package cli

import (
	"github.com/spf13/cobra"

	"commitkit.dev/commitkit/internal/cli/common"
	"commitkit.dev/commitkit/internal/commit"
	"commitkit.dev/commitkit/internal/runtime"
)

// newMessageCmd creates the message command
func newMessageCmd() *cobra.Command {
	var (
		commitType string
		summary    string
		details    []string
		raw        bool
	)

	cmd := &cobra.Command{
		Use:   "message",
		Short: "Generate a commit message without committing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				if raw {
					ctx.Splog.Page(commit.Compose(commit.Lookup(commitType), summary, details) + "\n")
					return nil
				}
				return common.PrintResult(ctx, ctx.Service.GenerateMessage(commitType, summary, details))
			})
		},
	}

	cmd.Flags().StringVarP(&commitType, "type", "t", commit.Default().Key, "Commit type (see \"commitkit types\")")
	cmd.Flags().StringVarP(&summary, "summary", "s", "", "Short summary, at most 50 characters")
	cmd.Flags().StringArrayVarP(&details, "detail", "d", nil, "Detail line; repeat for several")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print only the message")
	_ = cmd.MarkFlagRequired("summary")

	return cmd
}
