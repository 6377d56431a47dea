package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"palplanner/internal/app"
)

func RunBoard(a *app.App, out io.Writer) error {
	m := newBoardModel(a)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
