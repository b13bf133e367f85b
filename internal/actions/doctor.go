package actions

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"spriteit.dev/spriteit/internal/git"
	"spriteit.dev/spriteit/internal/runtime"
)

// DoctorAction runs diagnostic checks on the environment and the
// remembered repository.
func DoctorAction(cctx context.Context, rt *runtime.Context) error {
	var warnings, problems []string

	rt.Splog.Info("Environment:")

	gitVersion, err := exec.Command("git", "version").Output()
	if err != nil {
		problems = append(problems, "git is not installed or not in PATH")
		rt.Splog.Error("  git is not installed or not in PATH")
	} else {
		rt.Splog.Info("  ✅ %s", strings.TrimSpace(string(gitVersion)))
	}

	for _, key := range []string{"user.name", "user.email"} {
		out, err := exec.Command("git", "config", "--get", key).Output()
		if err != nil || strings.TrimSpace(string(out)) == "" {
			warnings = append(warnings, fmt.Sprintf("git %s is not set; commits will fail", key))
			rt.Splog.Warn("  git %s is not set", key)
		} else {
			rt.Splog.Info("  ✅ git %s = %s", key, strings.TrimSpace(string(out)))
		}
	}

	rt.Splog.Newline()
	rt.Splog.Info("Remembered repository:")
	if rt.User.RememberedRepo == "" {
		rt.Splog.Info("  none recorded yet")
	} else if _, err := os.Stat(rt.User.RememberedRepo); err != nil {
		warnings = append(warnings, fmt.Sprintf("remembered folder %s no longer exists", rt.User.RememberedRepo))
		rt.Splog.Warn("  %s no longer exists", rt.User.RememberedRepo)
	} else if !git.IsRepository(cctx, rt.User.RememberedRepo) {
		warnings = append(warnings, fmt.Sprintf("remembered folder %s is not a repository", rt.User.RememberedRepo))
		rt.Splog.Warn("  %s is not a repository", rt.User.RememberedRepo)
	} else {
		rt.Splog.Info("  ✅ %s", rt.User.RememberedRepo)
	}

	rt.Splog.Newline()
	switch {
	case len(problems) > 0:
		rt.Splog.Error("%d problem(s), %d warning(s)", len(problems), len(warnings))
		return fmt.Errorf("doctor found %d problem(s)", len(problems))
	case len(warnings) > 0:
		rt.Splog.Warn("%d warning(s)", len(warnings))
	default:
		rt.Splog.Info("Everything looks good ✅")
	}
	return nil
}
