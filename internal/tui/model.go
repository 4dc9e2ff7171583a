package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/dsouzarc/incast/internal/controller"
	"github.com/dsouzarc/incast/internal/renderer"
	"github.com/dsouzarc/incast/internal/storage"
)

type SessionState int

const (
	StateForm SessionState = iota
	StateSubmitting
	StateResult
	StateError
)

// PredictionFormModel holds the raw field values bound to the form inputs.
type PredictionFormModel struct {
	Date  string
	Group string
}

type Model struct {
	ctrl      *controller.Controller
	store     storage.Provider // nil when history is unavailable
	state     SessionState
	keys      KeyMap
	help      help.Model
	spinner   spinner.Model
	form      *huh.Form
	formModel *PredictionFormModel
	renderers []renderer.Renderer
	viewIdx   int
	quitting  bool
	width     int
	height    int
}

func NewModel(svc controller.Predictor, store storage.Provider) Model {
	fm := &PredictionFormModel{
		Date: time.Now().Format("2006-01-02"),
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		ctrl:      controller.New(svc),
		store:     store,
		state:     StateForm,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   sp,
		form:      NewPredictionForm(fm),
		formModel: fm,
		renderers: []renderer.Renderer{renderer.BarChart{}, renderer.List{}},
	}
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case StateResult:
		return []key.Binding{m.keys.New, m.keys.Toggle, m.keys.Retry, m.keys.Quit}
	case StateError:
		return []key.Binding{m.keys.New, m.keys.Retry, m.keys.Quit}
	default:
		return []key.Binding{m.keys.Quit, m.keys.Help}
	}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.New, m.keys.Toggle, m.keys.Retry},
		{m.keys.Quit, m.keys.Help},
	}
}
