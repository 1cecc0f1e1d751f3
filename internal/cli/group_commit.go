package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"commitkit.dev/commitkit/internal/actions"
	"commitkit.dev/commitkit/internal/cli/common"
	"commitkit.dev/commitkit/internal/runtime"
	"commitkit.dev/commitkit/internal/tui"
)

// newGroupCommitCmd creates the group-commit command
func newGroupCommitCmd() *cobra.Command {
	var (
		planPath string
		progress bool
	)

	cmd := &cobra.Command{
		Use:   "group-commit",
		Short: "Split the working tree into several commits from a plan file",
		Long: `Split the working tree into several commits from a plan file.

The plan is YAML or JSON: a list of groups, or a mapping with a "commits" list
and an optional "path". Each group names its files, commit_type, short_desc
and optional details. Groups are committed in order; a failing group is
reported and the remaining groups are still attempted.

Use "--plan -" to read the plan from stdin.`,
		Aliases: []string{"gc"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readPlan(cmd, planPath)
			if err != nil {
				return err
			}
			plan, err := actions.ParsePlan(data)
			if err != nil {
				return err
			}

			return common.Run(cmd, func(ctx *runtime.Context) error {
				repoRoot := ctx.RepoRoot
				if plan.Path != "" && !cmd.Flags().Changed("path") {
					repoRoot = plan.Path
				}

				run := func(obs actions.Observer) (*actions.Report, error) {
					return ctx.Service.GroupCommit(cmd.Context(), repoRoot, plan.Commits, obs)
				}

				var report *actions.Report
				switch {
				case common.IsTerminal(ctx.Splog.Writer()) && tui.InteractiveAllowed():
					ctx.Splog.SetQuiet(true)
					report, err = tui.RunGroupCommitTUI(plan.Commits, run, os.Stdout)
					ctx.Splog.SetQuiet(false)
				case progress:
					report, err = run(tui.LineObserver{Splog: ctx.Splog})
				default:
					report, err = run(nil)
				}
				if err != nil {
					return common.PrintResult(ctx, actions.RepositoryFailure(err))
				}

				if perr := common.PrintResult(ctx, actions.Result{Text: report.Text}); perr != nil {
					return perr
				}
				if report.Failed() > 0 {
					return common.ErrReported
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&planPath, "plan", "p", "", "Plan file, or - for stdin")
	cmd.Flags().BoolVar(&progress, "progress", false, "Print a line per group as it runs when not on a terminal")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func readPlan(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read plan from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // plan path chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}
	return data, nil
}
