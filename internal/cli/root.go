// Package cli wires the spriteit commands together with cobra.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spriteit",
		Short: "Spriteit versions a single art file with Git, no Git knowledge required",
		Long: `Spriteit lets an artist version one file with Git without leaving their
workflow: enlist the file into its own repository, take snapshots, browse
history, peek at past revisions, and sync with a remote.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().String("repo", "", "Operate on the repository at or above this path")

	rootCmd.AddCommand(newEnlistCmd())
	rootCmd.AddCommand(newSnapshotCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newPeekCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}
