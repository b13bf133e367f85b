package utils

import (
	"os/exec"
	"strings"
)

// OpenFile opens a file with the OS default application, or with the
// user-configured override command when one is set.
func OpenFile(path string, override string) error {
	if parts := strings.Fields(override); len(parts) > 0 {
		args := append(parts[1:], path)
		return exec.Command(parts[0], args...).Start()
	}
	return openWithDefaultApp(path)
}
