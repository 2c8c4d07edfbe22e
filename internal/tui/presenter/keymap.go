package presenter

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/mattsolo1/grove-slides/pkg/service"
)

// KeyMap defines the keybindings for the presenter
type KeyMap struct {
	NextSlide     key.Binding
	PrevSlide     key.Binding
	NextFragment  key.Binding
	PrevFragment  key.Binding
	FirstSlide    key.Binding
	LastSlide     key.Binding
	ToggleSpacers key.Binding
	CursorDown    key.Binding
	CursorUp      key.Binding
	Save          key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSlide, k.PrevSlide, k.ToggleSpacers, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSlide, k.PrevSlide, k.FirstSlide, k.LastSlide},
		{k.NextFragment, k.PrevFragment, k.CursorDown, k.CursorUp},
		{k.ToggleSpacers, k.Save, k.Help, k.Quit},
	}
}

// commands maps each navigation binding to the command it runs.
func (k KeyMap) commands() []struct {
	binding key.Binding
	id      string
} {
	return []struct {
		binding key.Binding
		id      string
	}{
		{k.NextSlide, service.CmdNextSlide},
		{k.PrevSlide, service.CmdPrevSlide},
		{k.NextFragment, service.CmdNextFragment},
		{k.PrevFragment, service.CmdPrevFragment},
		{k.FirstSlide, service.CmdFirstSlide},
		{k.LastSlide, service.CmdLastSlide},
		{k.ToggleSpacers, service.CmdToggleSpacers},
	}
}

var keys = KeyMap{
	NextSlide: key.NewBinding(
		key.WithKeys("n", "pgdown", " "),
		key.WithHelp("n", "next slide"),
	),
	PrevSlide: key.NewBinding(
		key.WithKeys("p", "pgup"),
		key.WithHelp("p", "previous slide"),
	),
	NextFragment: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next fragment"),
	),
	PrevFragment: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous fragment"),
	),
	FirstSlide: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first slide"),
	),
	LastSlide: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last slide"),
	),
	ToggleSpacers: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle spacers"),
	),
	CursorDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next cell"),
	),
	CursorUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous cell"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
