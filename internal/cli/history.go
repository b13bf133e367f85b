package cli

import (
	"github.com/spf13/cobra"

	"spriteit.dev/spriteit/internal/actions"
	"spriteit.dev/spriteit/internal/cli/common"
	"spriteit.dev/spriteit/internal/runtime"
)

// newHistoryCmd creates the history command
func newHistoryCmd() *cobra.Command {
	var (
		limit  int
		plain  bool
		noOpen bool
	)

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"h", "log"},
		Short:   "Browse the file's snapshots",
		Long: `History lists every snapshot of the file. In a terminal it opens an
interactive browser; selecting a snapshot peeks at it in a read-only
temp copy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.RunInRepo(cmd, func(rt *runtime.Context) error {
				return actions.HistoryAction(cmd.Context(), rt, actions.HistoryOptions{
					Limit:  limit,
					Plain:  plain,
					NoOpen: noOpen,
				})
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many snapshots")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print one line per snapshot instead of the browser")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Do not launch the OS opener from the browser")

	return cmd
}
