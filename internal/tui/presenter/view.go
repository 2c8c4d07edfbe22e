package presenter

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mattsolo1/grove-slides/pkg/models"
	"github.com/mattsolo1/grove-slides/pkg/slidemeta"
	"github.com/mattsolo1/grove-slides/pkg/slides"
)

// chromeHeight is the number of lines used by header and footer.
const chromeHeight = 5

func (m Model) View() string {
	if m.help.ShowAll {
		return m.help.View(m.keys)
	}

	header := headerStyle.Render(filepath.Base(m.ed.Path()))
	if m.ed.Path() == "" {
		header = headerStyle.Render(m.ed.Document().ID())
	}

	body, _ := m.layout(m.ed.Top())

	status := m.wb.Status().Rendered()
	if status != "" {
		status = statusStyle.Render(status)
	}

	var message string
	switch {
	case m.err != nil:
		message = errorStyle.Render("Error: " + m.err.Error())
	case m.message != "":
		message = infoStyle.Render(m.message)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		strings.Join(body, "\n"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, status, " ", message),
		m.help.View(m.keys),
	)
}

func (m Model) bodyHeight() int {
	h := m.height
	if h == 0 {
		h = defaultHeight
	}
	return max(h-chromeHeight, 1)
}

// layout renders cells starting at top until the body is full. It returns
// the lines and the position of the last cell shown in full.
func (m Model) layout(top int) ([]string, int) {
	doc := m.ed.Document()
	height := m.bodyHeight()
	sel := slides.CurrentPosition(m.ed)

	var lines []string
	last := top
	for i := top; i < doc.CellCount(); i++ {
		cell := m.renderCell(doc.CellAt(i), i == sel)
		if len(lines)+len(cell) > height {
			if i == top {
				lines = append(lines, cell[:height]...)
			}
			break
		}
		lines = append(lines, cell...)
		last = i
	}
	return lines, last
}

// renderCell returns the screen lines of one cell. Spacer cells are blank
// space of the same height as their source.
func (m Model) renderCell(c models.Cell, selected bool) []string {
	if kind, ok := slidemeta.SpacerKindOf(c); ok {
		n := 1
		if kind == slidemeta.SpacerFiller {
			n = strings.Count(c.Source, "\n") + 1
		}
		return make([]string, n)
	}

	style := markdownStyle
	if c.Kind == models.CellKindCode {
		style = codeStyle
	}
	if selected {
		style = selectedCellStyle
	}
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}

	gutter := "  "
	if selected {
		gutter = cursorStyle.Render("▶ ")
	}

	var out []string
	if t := slidemeta.ClassifyCell(c).Normalize(); t != models.SlideTypeNone {
		out = append(out, gutter+badgeStyle.Render(string(t)))
		gutter = "  "
	}
	src := c.Source
	if src == "" {
		src = mutedStyle.Render("(empty)")
	}
	for _, line := range strings.Split(style.Render(src), "\n") {
		out = append(out, gutter+line)
		gutter = "  "
	}
	return out
}
