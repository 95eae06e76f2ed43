package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const statusWidth = 12

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m *progressModel) View() string {
	if len(m.files) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.header()))
	b.WriteString("\n\n")

	nameWidth := max(m.width-statusWidth-4, 20)
	for i, path := range m.files {
		s := m.states[i]
		fmt.Fprintf(&b, "  %s %s\n", s.style().Render(fmt.Sprintf("%*s", statusWidth, s)), truncate(path, nameWidth))
	}

	b.WriteByte('\n')
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteByte('\n')
	b.WriteString(mutedStyle.Render(m.footer()))
	b.WriteByte('\n')
	return b.String()
}

func (m *progressModel) header() string {
	h := m.title
	if m.phase != "" {
		h += " (" + m.phase + ")"
	}
	if m.done {
		return "done: " + h
	}
	return m.spinner.View() + " " + h
}

func (m *progressModel) footer() string {
	finished, failed := m.tally()
	s := fmt.Sprintf("%d/%d files", finished, len(m.files))
	if failed > 0 {
		s += fmt.Sprintf(", %d failed", failed)
	}
	return s
}

// truncate shortens value to width display cells, marking the cut with "...".
func truncate(value string, width int) string {
	switch {
	case width <= 0 || runewidth.StringWidth(value) <= width:
		return value
	case width <= 3:
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
