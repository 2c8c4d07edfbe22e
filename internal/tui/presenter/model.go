// Package presenter is an interactive terminal front-end for one deck: it
// shows the cells from the top of the viewport, runs the slide commands
// from key bindings and saves through the workbench.
package presenter

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-slides/pkg/host"
	"github.com/mattsolo1/grove-slides/pkg/service"
)

// defaultHeight is used until the terminal reports its size.
const defaultHeight = 40

// Model is the bubbletea model of the presenter
type Model struct {
	wb   *host.Workbench
	svc  *service.Service
	ed   *host.Editor
	keys KeyMap
	help help.Model

	width  int
	height int

	message string
	err     error
}

// New creates a presenter for ed. The service must already be activated
// on wb.
func New(wb *host.Workbench, svc *service.Service, ed *host.Editor) Model {
	return Model{
		wb:   wb,
		svc:  svc,
		ed:   ed,
		keys: keys,
		help: help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the presenter on the alternate screen and blocks until it quits.
func Run(wb *host.Workbench, svc *service.Service, ed *host.Editor) error {
	p := tea.NewProgram(New(wb, svc, ed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
