package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"spriteit.dev/spriteit/internal/git"
)

func testCommits() []git.Commit {
	when := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	return []git.Commit{
		{SHA: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Short: "aaaaaaa", Subject: "Gave the hero a sword", Author: "Test Artist", When: when},
		{SHA: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", Short: "bbbbbbb", Subject: "Recolored the cape", Author: "Test Artist", When: when},
		{SHA: "cccccccccccccccccccccccccccccccccccccccc", Short: "ccccccc", Subject: "First sketch", Author: "Test Artist", When: when},
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHistoryModelNavigation(t *testing.T) {
	t.Parallel()

	model := newHistoryModel(testCommits())
	require.Equal(t, 0, model.cursor)

	next, _ := model.Update(keyMsg("down"))
	model = next.(historyModel)
	require.Equal(t, 1, model.cursor)

	next, _ = model.Update(keyMsg("up"))
	model = next.(historyModel)
	require.Equal(t, 0, model.cursor)

	// The cursor never leaves the list
	next, _ = model.Update(keyMsg("up"))
	model = next.(historyModel)
	require.Equal(t, 0, model.cursor)
}

func TestHistoryModelSelection(t *testing.T) {
	t.Parallel()

	model := newHistoryModel(testCommits())

	next, _ := model.Update(keyMsg("down"))
	model = next.(historyModel)
	next, cmd := model.Update(keyMsg("enter"))
	model = next.(historyModel)

	require.NotNil(t, cmd, "enter should quit the program")
	require.True(t, model.chosen)
	require.Equal(t, "bbbbbbb", model.commits[model.filtered[model.cursor]].Short)
}

func TestHistoryModelAbort(t *testing.T) {
	t.Parallel()

	model := newHistoryModel(testCommits())
	next, _ := model.Update(keyMsg("esc"))
	model = next.(historyModel)

	require.True(t, model.aborted)
	require.False(t, model.chosen)
}

func TestHistoryModelFilter(t *testing.T) {
	t.Parallel()

	model := newHistoryModel(testCommits())
	require.Len(t, model.filtered, 3)

	next, _ := model.Update(keyMsg("cape"))
	model = next.(historyModel)

	require.Len(t, model.filtered, 1)
	require.Equal(t, "Recolored the cape", model.commits[model.filtered[0]].Subject)

	// Clearing the filter restores the full list
	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	model = next.(historyModel)
	require.Len(t, model.filtered, 3)
}

func TestHistoryModelViewMarksActiveRow(t *testing.T) {
	t.Parallel()

	model := newHistoryModel(testCommits())
	view := model.View()
	require.Contains(t, view, "Gave the hero a sword")
	require.Contains(t, view, "▸")
}
