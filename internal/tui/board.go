package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zxsa0716/ecoproject/internal/engine"
)

func RunBoard(eng *engine.Engine, out io.Writer) error {
	m := newBoardModel(eng)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
