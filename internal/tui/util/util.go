package util

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Model is a bubbletea model that renders to a string view.
type Model interface {
	tea.Model
	tea.ViewModel
}

// CmdHandler wraps a message in a command.
func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// Clamp limits v to the inclusive range [low, high].
func Clamp(v, low, high int) int {
	if high < low {
		low, high = high, low
	}
	return min(high, max(low, v))
}
