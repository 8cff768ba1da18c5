package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// RunBoard opens the feed browser over the quest directory.
func RunBoard(dir string, out io.Writer) error {
	m := newBoardModel(dir)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
