package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"commitkit.dev/commitkit/internal/cli/common"
	"commitkit.dev/commitkit/internal/runtime"
	"commitkit.dev/commitkit/internal/tui"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var (
		message string
		edit    bool
		yes     bool
	)

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Stage every change and commit it",
		Long: `Stage every change in the working tree (git add .) and commit it with the given message.

On a terminal you are asked to confirm first unless --yes is given.
With --edit the message is opened in your editor first; an empty result
aborts the commit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				if edit {
					edited, err := tui.EditMessage(message)
					if err != nil {
						return err
					}
					if edited == "" {
						ctx.Splog.Info("Empty commit message, commit aborted.")
						return nil
					}
					message = edited
				}

				if !yes && tui.InteractiveAllowed() {
					ctx.Splog.Info("Commit message:\n\n%s\n", message)
					ok, err := tui.PromptConfirm("Stage all changes and commit?", true)
					if err != nil && !errors.Is(err, tui.ErrCanceled) {
						return err
					}
					if !ok {
						ctx.Splog.Info("Commit canceled.")
						return nil
					}
				}
				return common.PrintResult(ctx, ctx.Service.Commit(cmd.Context(), ctx.RepoRoot, message))
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Commit without asking for confirmation")
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Edit the message in your editor before committing")
	cmd.MarkFlagsOneRequired("message", "edit")

	return cmd
}
