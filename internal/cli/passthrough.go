package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"spriteit.dev/spriteit/internal/git"
	"spriteit.dev/spriteit/internal/runtime"
)

// gitCommandAllowlist lists git subcommands forwarded verbatim. Commands
// spriteit wraps itself (status, diff, log, fetch, pull, push) are
// excluded so the wrapped behavior always wins.
var gitCommandAllowlist = []string{
	"blame",
	"branch",
	"checkout",
	"cherry-pick",
	"clean",
	"gc",
	"grep",
	"reflog",
	"remote",
	"reset",
	"restore",
	"revert",
	"rm",
	"show",
	"stash",
	"switch",
	"tag",
}

// HandlePassthrough checks if the command should be passed through to git
// and executes it if so. Returns true if the command was handled (and the
// program should exit).
func HandlePassthrough(args []string) bool {
	if len(args) < 2 {
		return false
	}

	command := args[1]
	allowed := false
	for _, name := range gitCommandAllowlist {
		if name == command {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}

	// Run inside the located repository so passthrough works from anywhere
	dir := ""
	if rt, err := runtime.NewContext(); err == nil {
		if err := rt.RequireRepo(""); err == nil {
			dir = rt.Location.Root
		}
		_ = rt.Splog.Close()
	}

	fmt.Fprintf(os.Stderr, "\033[90mPassing command through to git...\033[0m\n")

	if err := git.NewRunner(dir).RunInteractive(args[1:]...); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
	os.Exit(0)
	return true
}
