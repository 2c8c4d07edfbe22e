package host

// StatusItem is a single status-line entry.
type StatusItem struct {
	text    string
	visible bool
}

func (s *StatusItem) SetText(text string) {
	s.text = text
}

func (s *StatusItem) Show() {
	s.visible = true
}

func (s *StatusItem) Hide() {
	s.visible = false
}

func (s *StatusItem) Text() string {
	return s.text
}

func (s *StatusItem) Visible() bool {
	return s.visible
}

// Rendered returns the text when visible and "" otherwise.
func (s *StatusItem) Rendered() string {
	if !s.visible {
		return ""
	}
	return s.text
}
