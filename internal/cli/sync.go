package cli

import (
	"github.com/spf13/cobra"

	"spriteit.dev/spriteit/internal/actions"
	"spriteit.dev/spriteit/internal/cli/common"
	"spriteit.dev/spriteit/internal/runtime"
)

// newSyncCmd creates the sync command
func newSyncCmd() *cobra.Command {
	var (
		pullOnly  bool
		pushOnly  bool
		remoteURL string
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Exchange snapshots with the remote",
		Long: `Sync fetches, fast-forward pulls, and pushes the current branch.
Diverged histories are reported and left for git to resolve; sync never
creates merge commits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.RunInRepo(cmd, func(rt *runtime.Context) error {
				return actions.SyncAction(cmd.Context(), rt, actions.SyncOptions{
					PullOnly:  pullOnly,
					PushOnly:  pushOnly,
					RemoteURL: remoteURL,
				})
			})
		},
	}

	cmd.Flags().BoolVar(&pullOnly, "pull-only", false, "Fetch and pull without pushing")
	cmd.Flags().BoolVar(&pushOnly, "push-only", false, "Push without fetching or pulling")
	cmd.Flags().StringVar(&remoteURL, "remote", "", "Add this URL as the remote before syncing")
	cmd.MarkFlagsMutuallyExclusive("pull-only", "push-only")

	return cmd
}
