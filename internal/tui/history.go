// Package tui provides the interactive history browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"spriteit.dev/spriteit/internal/git"
)

const visibleRows = 15

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	shaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type historyModel struct {
	commits  []git.Commit
	lines    []string
	filtered []int
	input    textinput.Model
	cursor   int
	offset   int
	chosen   bool
	aborted  bool
}

func newHistoryModel(commits []git.Commit) historyModel {
	input := textinput.New()
	input.Placeholder = "filter snapshots"
	input.Prompt = "/ "
	input.Focus()

	lines := make([]string, len(commits))
	filtered := make([]int, len(commits))
	for i, commit := range commits {
		lines[i] = fmt.Sprintf("%s %s %s %s",
			commit.Short, commit.When.Format("2006-01-02 15:04"), commit.Subject, commit.Author)
		filtered[i] = i
	}

	return historyModel{
		commits:  commits,
		lines:    lines,
		filtered: filtered,
		input:    input,
	}
}

func (m historyModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			m.scroll()
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			m.scroll()
			return m, nil
		case "enter":
			if len(m.filtered) > 0 {
				m.chosen = true
			}
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *historyModel) refilter() {
	query := m.input.Value()
	if query == "" {
		m.filtered = make([]int, len(m.commits))
		for i := range m.commits {
			m.filtered[i] = i
		}
	} else {
		matches := fuzzy.Find(query, m.lines)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scroll()
}

func (m *historyModel) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visibleRows {
		m.offset = m.cursor - visibleRows + 1
	}
}

func (m historyModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Snapshots") + "\n")
	b.WriteString(m.input.View() + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  no matching snapshots") + "\n")
	}

	end := m.offset + visibleRows
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	for row := m.offset; row < end; row++ {
		commit := m.commits[m.filtered[row]]
		line := fmt.Sprintf("%s  %s  %s  %s",
			shaStyle.Render(commit.Short),
			commit.When.Format("2006-01-02 15:04"),
			commit.Subject,
			dimStyle.Render(commit.Author))
		if row == m.cursor {
			b.WriteString(activeStyle.Render("▸ ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n" + dimStyle.Render("↑/↓ navigate · enter peek · esc quit") + "\n")
	return b.String()
}

// SelectCommit runs the interactive history browser and returns the
// selected commit, or nil when the user backed out.
func SelectCommit(commits []git.Commit) (*git.Commit, error) {
	program := tea.NewProgram(newHistoryModel(commits))
	final, err := program.Run()
	if err != nil {
		return nil, err
	}

	model, ok := final.(historyModel)
	if !ok || model.aborted || !model.chosen {
		return nil, nil
	}
	selected := model.commits[model.filtered[model.cursor]]
	return &selected, nil
}
