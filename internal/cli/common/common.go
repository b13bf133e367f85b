// Package common provides shared helper functions for CLI commands.
package common

import (
	"github.com/spf13/cobra"

	"spriteit.dev/spriteit/internal/runtime"
)

// Run builds a runtime context and hands it to a command's execution
// function. For commands that do not need a repository.
func Run(cmd *cobra.Command, fn func(rt *runtime.Context) error) error {
	rt, err := runtime.NewContext()
	if err != nil {
		return err
	}
	defer func() { _ = rt.Splog.Close() }()
	return fn(rt)
}

// RunInRepo builds a runtime context, locates the repository (honoring
// the --repo flag when set), and hands both to the execution function.
func RunInRepo(cmd *cobra.Command, fn func(rt *runtime.Context) error) error {
	rt, err := runtime.NewContext()
	if err != nil {
		return err
	}
	defer func() { _ = rt.Splog.Close() }()

	startPath, _ := cmd.Flags().GetString("repo")
	if err := rt.RequireRepo(startPath); err != nil {
		return err
	}
	return fn(rt)
}
