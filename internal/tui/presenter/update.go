package presenter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-slides/pkg/notebook"
	"github.com/mattsolo1/grove-slides/pkg/slides"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Save):
		m.save()
		return m, nil
	case key.Matches(msg, m.keys.CursorDown):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.CursorUp):
		m.moveCursor(-1)
		return m, nil
	}

	for _, c := range m.keys.commands() {
		if key.Matches(msg, c.binding) {
			m.message, m.err = m.svc.Execute(c.id)
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) save() {
	m.message, m.err = "", nil
	if err := m.wb.Save(context.Background(), m.ed); err != nil {
		m.err = err
		return
	}
	m.message = fmt.Sprintf("Saved %s", filepath.Base(m.ed.Path()))
}

// moveCursor moves the selection by delta cells and scrolls just enough to
// keep it on screen.
func (m *Model) moveCursor(delta int) {
	m.message, m.err = "", nil
	n := m.ed.Document().CellCount()
	if n == 0 {
		return
	}
	pos := slides.CurrentPosition(m.ed) + delta
	pos = max(0, min(pos, n-1))
	m.ed.SetSelection(notebook.Single(pos))

	top := m.ed.Top()
	_, last := m.layout(top)
	if pos < top || pos > last {
		m.ed.RevealAtTop(notebook.Single(pos))
	}
}
