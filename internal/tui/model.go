package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/pickadate/internal/constants"
	"github.com/julianstephens/pickadate/internal/input"
	"github.com/julianstephens/pickadate/internal/models"
	"github.com/julianstephens/pickadate/internal/session"
	"github.com/julianstephens/pickadate/internal/storage"
	"github.com/julianstephens/pickadate/internal/summary"
	"github.com/julianstephens/pickadate/internal/tui/components/buttons"
	"github.com/julianstephens/pickadate/internal/tui/components/rating"
	"github.com/julianstephens/pickadate/internal/tui/components/results"
	"github.com/julianstephens/pickadate/internal/tui/components/slider"
	"github.com/julianstephens/pickadate/internal/tui/components/swipe"
)

// Options configures a Model
type Options struct {
	Items  []models.Item
	Mode   constants.InputMode // defaults to buttons
	Policy summary.Policy      // defaults to top pick
	// Store records completed sessions; nil disables recording
	Store storage.Provider
	// Slug skips the entry screen when set
	Slug string
}

// VariantFormModel backs the input/summary chooser form
type VariantFormModel struct {
	Mode   constants.InputMode
	Policy constants.SummaryPolicy
}

type Model struct {
	state       constants.SessionState
	keys        KeyMap
	help        help.Model
	session     *session.Controller
	mode        constants.InputMode
	nameInput   textinput.Model
	input       rating.Input
	results     results.Model
	form        *huh.Form
	variantForm *VariantFormModel
	store       storage.Provider

	// celebrating is the summary banner; celebrationID discards stale ticks
	celebrating   bool
	celebrationID int

	lastResultID string
	recordErr    error

	quitting bool
	width    int
	height   int
}

func NewModel(opts Options) (Model, error) {
	mode := opts.Mode
	if mode == "" {
		mode = constants.InputButtons
	}
	if _, err := input.ParseMode(string(mode)); err != nil {
		return Model{}, err
	}

	ctrl, err := session.New(session.Config{
		Items:  opts.Items,
		Policy: opts.Policy,
		Slug:   opts.Slug,
	})
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "Enter your name"
	ti.CharLimit = 64
	ti.Width = 32
	ti.Prompt = "› "
	ti.Focus()

	m := Model{
		state:     constants.StateEntry,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		session:   ctrl,
		mode:      mode,
		nameInput: ti,
		results:   results.New(0, 0),
		store:     opts.Store,
	}
	m.input = newInput(mode, ctrl)
	m.layoutInput()

	if opts.Slug != "" {
		m.state = constants.StateRating
	}
	return m, nil
}

func newInput(mode constants.InputMode, s rating.Session) rating.Input {
	switch mode {
	case constants.InputSlider:
		return slider.New(s)
	case constants.InputSwipe:
		return swipe.New(s)
	default:
		return buttons.New(s)
	}
}

func (m Model) Init() tea.Cmd {
	if m.state == constants.StateEntry {
		return textinput.Blink
	}
	return nil
}

// State is the current screen
func (m Model) State() constants.SessionState { return m.state }

// Session exposes the controller, mostly for tests
func (m Model) Session() *session.Controller { return m.session }

// Mode is the active input mode
func (m Model) Mode() constants.InputMode { return m.mode }

// Route is the path shown in the status line, "/" or "/{slug}"
func (m Model) Route() string {
	if m.state == constants.StateEntry || m.state == constants.StateChooseVariant {
		return "/"
	}
	return "/" + m.session.Slug()
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.StateEntry:
		return []key.Binding{m.keys.Start, m.keys.Variant, m.keys.ForceQuit}
	case constants.StateRating:
		return append(m.input.Bindings(), m.keys.Back, m.keys.Help)
	case constants.StateSummary:
		return []key.Binding{m.keys.Restart, m.keys.Home, m.keys.Quit, m.keys.Help}
	}
	return nil
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Quit, m.keys.ForceQuit, m.keys.Help}
	switch m.state {
	case constants.StateEntry:
		return [][]key.Binding{{m.keys.Start, m.keys.Variant}, global}
	case constants.StateRating:
		return [][]key.Binding{m.input.Bindings(), {m.keys.Back}, global}
	case constants.StateSummary:
		return [][]key.Binding{{m.keys.Restart, m.keys.Home}, {m.keys.Up, m.keys.Down}, global}
	}
	return [][]key.Binding{global}
}

func (m Model) progressLine() string {
	return fmt.Sprintf("%d of %d • %d highly rated",
		m.session.Position()+1, m.session.Total(), m.session.HighlyRated())
}
