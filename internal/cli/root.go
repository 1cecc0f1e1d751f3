package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"commitkit.dev/commitkit/internal/git"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "commitkit",
		Short: "Commitkit writes consistent commit messages and splits working trees into grouped commits",
		Long: `Commitkit writes consistent commit messages and splits working trees into grouped commits.

Run "commitkit serve" to expose the same tools to an MCP client over stdio.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("path", "C", git.DefaultRepoRoot, "Path to the git repository")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $COMMITKIT_CONFIG or ~/.commitkit/config.yaml)")

	rootCmd.AddCommand(
		newServeCmd(version),
		newStatusCmd(),
		newMessageCmd(),
		newCommitCmd(),
		newGroupCommitCmd(),
		newLogCmd(),
		newBranchCmd(),
		newTypesCmd(),
		newConfigCmd(),
	)

	return rootCmd
}
