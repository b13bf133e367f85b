//go:build windows

package utils

import (
	"os/exec"
)

// openWithDefaultApp opens a file with the default application on Windows
func openWithDefaultApp(path string) error {
	return exec.Command("cmd", "/c", "start", "", path).Run()
}
