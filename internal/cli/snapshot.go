package cli

import (
	"github.com/spf13/cobra"

	"spriteit.dev/spriteit/internal/actions"
	"spriteit.dev/spriteit/internal/cli/common"
	"spriteit.dev/spriteit/internal/runtime"
)

// newSnapshotCmd creates the snapshot command
func newSnapshotCmd() *cobra.Command {
	var (
		message       string
		noInteractive bool
	)

	cmd := &cobra.Command{
		Use:     "snapshot [file]",
		Aliases: []string{"s", "save"},
		Short:   "Save the current state of the file as a new snapshot",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.RunInRepo(cmd, func(rt *runtime.Context) error {
				file := ""
				if len(args) > 0 {
					file = args[0]
				}
				return actions.SnapshotAction(cmd.Context(), rt, actions.SnapshotOptions{
					Message:       message,
					File:          file,
					NoInteractive: noInteractive,
				})
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Snapshot description")
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Disable interactive prompts")

	return cmd
}
