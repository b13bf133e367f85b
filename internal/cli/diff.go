package cli

import (
	"github.com/spf13/cobra"

	"spriteit.dev/spriteit/internal/cli/common"
	"spriteit.dev/spriteit/internal/runtime"
)

// newDiffCmd creates the diff command
func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [revision]",
		Short: "Show what changed since a snapshot",
		Long: `Diff compares the working file against a snapshot (HEAD by default).
Binary files are summarized in stat form.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.RunInRepo(cmd, func(rt *runtime.Context) error {
				revision := ""
				if len(args) > 0 {
					revision = args[0]
				}

				rel, err := rt.TargetRelPath("")
				if err != nil {
					return err
				}

				out, err := rt.Runner.DiffFile(cmd.Context(), revision, rel)
				if err != nil {
					return err
				}
				if out == "" {
					rt.Splog.Info("No changes.")
					return nil
				}
				rt.Splog.Page(out)
				return nil
			})
		},
	}

	return cmd
}
