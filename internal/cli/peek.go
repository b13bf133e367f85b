package cli

import (
	"github.com/spf13/cobra"

	"spriteit.dev/spriteit/internal/actions"
	"spriteit.dev/spriteit/internal/cli/common"
	"spriteit.dev/spriteit/internal/runtime"
)

// newPeekCmd creates the peek command
func newPeekCmd() *cobra.Command {
	var noOpen bool

	cmd := &cobra.Command{
		Use:     "peek <revision> [file]",
		Aliases: []string{"p"},
		Short:   "Open a read-only copy of the file as it was at a snapshot",
		Long: `Peek extracts the file's content at the given snapshot into a read-only
copy in the temp directory and opens it with the OS default application.
The working file is never touched.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.RunInRepo(cmd, func(rt *runtime.Context) error {
				file := ""
				if len(args) > 1 {
					file = args[1]
				}
				return actions.PeekAction(cmd.Context(), rt, actions.PeekOptions{
					Revision: args[0],
					File:     file,
					NoOpen:   noOpen,
				})
			})
		},
	}

	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Write the copy without opening it")

	return cmd
}
