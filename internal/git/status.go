package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Status summarizes `git status --porcelain` output
type Status struct {
	Modified   int
	Added      int
	Deleted    int
	Renamed    int
	Untracked  int
	Conflicted int
}

// Clean reports whether the working tree has no changes at all
func (s Status) Clean() bool {
	return s.Modified == 0 && s.Added == 0 && s.Deleted == 0 &&
		s.Renamed == 0 && s.Untracked == 0 && s.Conflicted == 0
}

// Describe renders the status in plain language
func (s Status) Describe() string {
	if s.Clean() {
		return "clean"
	}
	var parts []string
	if s.Conflicted > 0 {
		parts = append(parts, fmt.Sprintf("%d conflicted", s.Conflicted))
	}
	if s.Modified > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", s.Modified))
	}
	if s.Added > 0 {
		parts = append(parts, fmt.Sprintf("%d added", s.Added))
	}
	if s.Deleted > 0 {
		parts = append(parts, fmt.Sprintf("%d deleted", s.Deleted))
	}
	if s.Renamed > 0 {
		parts = append(parts, fmt.Sprintf("%d renamed", s.Renamed))
	}
	if s.Untracked > 0 {
		parts = append(parts, fmt.Sprintf("%d untracked", s.Untracked))
	}
	return strings.Join(parts, ", ")
}

// GetStatus runs `git status --porcelain` and summarizes it
func (r *Runner) GetStatus(ctx context.Context) (Status, error) {
	lines, err := r.RunLines(ctx, "status", "--porcelain")
	if err != nil {
		return Status{}, fmt.Errorf("failed to get status: %w", err)
	}
	return ParseStatus(lines), nil
}

// GetFileStatus runs `git status --porcelain` limited to a single path
// and summarizes it.
func (r *Runner) GetFileStatus(ctx context.Context, relPath string) (Status, error) {
	lines, err := r.RunLines(ctx, "status", "--porcelain", "--", relPath)
	if err != nil {
		return Status{}, fmt.Errorf("failed to get status of %s: %w", relPath, err)
	}
	return ParseStatus(lines), nil
}

// ParseStatus summarizes porcelain v1 status lines. Each line carries a
// two-letter XY code; untracked entries are "??". Unmerged entries (any
// U, plus the AA and DD combinations) mean a conflict is in progress and
// must never read as clean.
func ParseStatus(lines []string) Status {
	var status Status
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		code := line[:2]
		switch {
		case code == "??":
			status.Untracked++
		case code == "AA" || code == "DD" || strings.ContainsAny(code, "U"):
			status.Conflicted++
		// Copies count with renames: both are path-pair entries
		case strings.ContainsAny(code, "RC"):
			status.Renamed++
		case strings.ContainsAny(code, "D"):
			status.Deleted++
		case strings.ContainsAny(code, "A"):
			status.Added++
		case strings.ContainsAny(code, "M"):
			status.Modified++
		}
	}
	return status
}

// AheadBehind returns how many commits HEAD is ahead of and behind its
// upstream tracking branch. Returns (0, 0, false, nil) when no upstream
// is configured.
func (r *Runner) AheadBehind(ctx context.Context) (ahead, behind int, hasUpstream bool, err error) {
	out, err := r.Run(ctx, "rev-list", "--left-right", "--count", "@{upstream}...HEAD")
	if err != nil {
		// No upstream configured is a normal condition, not a failure
		return 0, 0, false, nil
	}

	fields := strings.Fields(out)
	if len(fields) != 2 {
		return 0, 0, false, fmt.Errorf("unexpected rev-list output: %q", out)
	}
	behind, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false, fmt.Errorf("failed to parse rev-list output: %w", err)
	}
	ahead, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false, fmt.Errorf("failed to parse rev-list output: %w", err)
	}
	return ahead, behind, true, nil
}
