package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dsouzarc/incast/internal/presenter"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateForm:
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render("Incident prediction"),
			"",
			m.form.View(),
		)
	case StateSubmitting:
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render("Incident prediction"),
			"",
			fmt.Sprintf("%s Contacting prediction service…", m.spinner.View()),
		)
	case StateResult:
		content = m.viewResult()
	case StateError:
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render("Incident prediction"),
			"",
			errorStyle.Render(m.ctrl.ErrorMessage()),
			"",
			m.help.View(m),
		)
	}

	return docStyle.Render(content)
}

func (m Model) viewResult() string {
	result := m.ctrl.Result()
	summary := presenter.Summarize(result)

	width := m.width - 8
	if width < 20 {
		width = 20
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("Predicted incidents · %s", result.AssignmentGroup)),
		subtitleStyle.Render(result.Date),
		"",
		m.renderers[m.viewIdx].Render(summary, width),
		"",
		m.help.View(m),
	)
}
