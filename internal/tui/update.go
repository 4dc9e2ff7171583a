package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/dsouzarc/incast/internal/controller"
	"github.com/dsouzarc/incast/internal/logger"
	"github.com/dsouzarc/incast/internal/models"
)

// resultMsg carries the completion of an in-flight submission back into
// the event loop.
type resultMsg controller.Event

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case resultMsg:
		return m.handleResult(msg)

	case spinner.TickMsg:
		if m.state != StateSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && m.state != StateForm {
			m.quitting = true
			return m, tea.Quit
		}
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.state {
	case StateForm:
		return m.updateForm(msg)
	case StateResult, StateError:
		return m.updateDone(msg)
	default:
		// Submitting: nothing to do until the result message lands.
		return m, nil
	}
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submit(cmd)
	case huh.StateAborted:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// submit snapshots the form fields into the controller and fires the
// request. The controller suppresses a second submission on its own; the
// nil check just avoids scheduling a dead command.
func (m Model) submit(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.ctrl.SetDate(strings.TrimSpace(m.formModel.Date))
	m.ctrl.SetAssignmentGroup(strings.TrimSpace(m.formModel.Group))

	run := m.ctrl.Submit(context.Background())
	if run == nil {
		return m, cmd
	}

	m.state = StateSubmitting
	return m, tea.Batch(cmd, m.spinner.Tick, func() tea.Msg {
		return resultMsg(run())
	})
}

func (m Model) handleResult(msg resultMsg) (tea.Model, tea.Cmd) {
	m.ctrl.Resolve(controller.Event(msg))

	switch m.ctrl.State() {
	case controller.Succeeded:
		m.state = StateResult
		m.recordHistory()
	case controller.Failed:
		m.state = StateError
	}
	return m, nil
}

func (m Model) updateDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.New):
		m.formModel.Group = ""
		m.form = NewPredictionForm(m.formModel)
		m.state = StateForm
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Retry):
		run := m.ctrl.Submit(context.Background())
		if run == nil {
			return m, nil
		}
		m.state = StateSubmitting
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			return resultMsg(run())
		})

	case key.Matches(keyMsg, m.keys.Toggle):
		if m.state == StateResult {
			m.viewIdx = (m.viewIdx + 1) % len(m.renderers)
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

func (m Model) recordHistory() {
	if m.store == nil {
		return
	}
	result := m.ctrl.Result()
	err := m.store.SaveRecord(models.Record{
		ID:              uuid.New().String(),
		Date:            result.Date,
		AssignmentGroup: result.AssignmentGroup,
		Predictions:     result.Predictions,
		CreatedAt:       time.Now().Format(time.RFC3339),
	})
	if err != nil {
		logger.Warn("could not record prediction: %v", err)
	}
}
