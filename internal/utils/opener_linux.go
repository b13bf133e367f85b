//go:build linux

package utils

import (
	"os/exec"
)

// openWithDefaultApp opens a file with the default application on Linux
func openWithDefaultApp(path string) error {
	return exec.Command("xdg-open", path).Run()
}
