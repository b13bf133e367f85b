package cli

import (
	"github.com/spf13/cobra"

	"spriteit.dev/spriteit/internal/actions"
	"spriteit.dev/spriteit/internal/cli/common"
	"spriteit.dev/spriteit/internal/runtime"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose common issues with your spriteit setup",
		Long: `Run diagnostic checks on the environment and remembered repository:
git availability and version, commit identity, and whether the
remembered folder still holds a repository.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(rt *runtime.Context) error {
				return actions.DoctorAction(cmd.Context(), rt)
			})
		},
	}
}
