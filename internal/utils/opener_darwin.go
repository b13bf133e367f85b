//go:build darwin

package utils

import (
	"os/exec"
)

// openWithDefaultApp opens a file with the default application on macOS
func openWithDefaultApp(path string) error {
	return exec.Command("open", path).Run()
}
