package cli

import (
	"github.com/spf13/cobra"

	"spriteit.dev/spriteit/internal/actions"
	"spriteit.dev/spriteit/internal/cli/common"
	"spriteit.dev/spriteit/internal/runtime"
)

// newEnlistCmd creates the enlist command
func newEnlistCmd() *cobra.Command {
	var (
		here       bool
		noRemember bool
	)

	cmd := &cobra.Command{
		Use:     "enlist <file>",
		Aliases: []string{"e"},
		Short:   "Move a file into its own folder and start versioning it",
		Long: `Enlist moves the file into a new folder named after it, initializes a
Git repository there, and creates the initial snapshot. The folder is
remembered so later commands work from anywhere.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(rt *runtime.Context) error {
				return actions.EnlistAction(cmd.Context(), rt, actions.EnlistOptions{
					FilePath:   args[0],
					Here:       here,
					NoRemember: noRemember,
				})
			})
		},
	}

	cmd.Flags().BoolVar(&here, "here", false, "Initialize in the file's current directory without moving it")
	cmd.Flags().BoolVar(&noRemember, "no-remember", false, "Do not record the folder in the user config")

	return cmd
}
