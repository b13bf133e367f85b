package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"spriteit.dev/spriteit/internal/cli/common"
	"spriteit.dev/spriteit/internal/config"
	"spriteit.dev/spriteit/internal/runtime"
)

// newConfigCmd creates the config command and its subcommands
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show all settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(rt *runtime.Context) error {
				for _, key := range config.Keys() {
					value, err := rt.User.Get(key)
					if err != nil {
						return err
					}
					rt.Splog.Info("%s = %s", key, value)
				}
				return nil
			})
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Show one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(rt *runtime.Context) error {
				value, err := rt.User.Get(args[0])
				if err != nil {
					return err
				}
				rt.Splog.Info("%s", value)
				return nil
			})
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(rt *runtime.Context) error {
				if err := rt.User.Set(args[0], args[1]); err != nil {
					return err
				}
				rt.Splog.Info("%s = %s", args[0], args[1])
				return nil
			})
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Println(dir)
			return nil
		},
	}

	cmd.AddCommand(listCmd, getCmd, setCmd, pathCmd)
	return cmd
}
