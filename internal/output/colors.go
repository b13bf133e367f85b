package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func init() {
	// Strip styling when output is piped or redirected
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	shaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// Success colors text green
func Success(text string) string {
	return successStyle.Render(text)
}

// Highlight colors text yellow
func Highlight(text string) string {
	return warnStyle.Render(text)
}

// Bad colors text red
func Bad(text string) string {
	return errorStyle.Render(text)
}

// Sha renders an abbreviated commit sha
func Sha(text string) string {
	return shaStyle.Render(text)
}

// Path renders a filesystem path
func Path(text string) string {
	return pathStyle.Render(text)
}

// Dim renders de-emphasized text
func Dim(text string) string {
	return dimStyle.Render(text)
}

// Bold renders emphasized text
func Bold(text string) string {
	return boldStyle.Render(text)
}
