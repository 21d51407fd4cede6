// Package slider rates a card on a continuous 0-100 bar.
package slider

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/pickadate/internal/constants"
	"github.com/julianstephens/pickadate/internal/input"
	"github.com/julianstephens/pickadate/internal/tui/components/card"
	"github.com/julianstephens/pickadate/internal/tui/components/rating"
)

// StartValue is where the slider sits on every new card
const StartValue = 50

var (
	valueStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)

	// feedback colours by snapped value, highest band first
	feedbackColors = []struct {
		min   int
		color lipgloss.Color
	}{
		{90, lipgloss.Color("205")},
		{70, lipgloss.Color("214")},
		{50, lipgloss.Color("42")},
		{30, lipgloss.Color("39")},
		{0, lipgloss.Color("241")},
	}
)

type KeyMap struct {
	Dec     key.Binding
	Inc     key.Binding
	BigDec  key.Binding
	BigInc  key.Binding
	Min     key.Binding
	Max     key.Binding
	Confirm key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dec: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "-1"),
		),
		Inc: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "+1"),
		),
		BigDec: key.NewBinding(
			key.WithKeys("shift+left", "pgdown"),
			key.WithHelp("shift+←", "-10"),
		),
		BigInc: key.NewBinding(
			key.WithKeys("shift+right", "pgup"),
			key.WithHelp("shift+→", "+10"),
		),
		Min: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "0"),
		),
		Max: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "100"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
	}
}

type Model struct {
	session  rating.Session
	keys     KeyMap
	slider   input.Slider
	bar      progress.Model
	dragging bool
	width    int
	originX  int
	originY  int
}

func New(s rating.Session) *Model {
	return &Model{
		session: s,
		keys:    DefaultKeyMap(),
		slider:  input.NewSlider(StartValue),
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
			progress.WithWidth(card.MaxWidth),
		),
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.bar.Width = card.Width(width)
}

func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

func (m *Model) Clear() {
	m.slider.Set(StartValue)
	m.dragging = false
}

// Value is the live slider value
func (m *Model) Value() int { return m.slider.Value() }

func (m *Model) Bindings() []key.Binding {
	return []key.Binding{m.keys.Dec, m.keys.Inc, m.keys.BigDec, m.keys.BigInc, m.keys.Min, m.keys.Max, m.keys.Confirm}
}

func (m *Model) Update(msg tea.Msg) (rating.Input, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Dec):
			m.slider.Nudge(-constants.SliderStep)
		case key.Matches(msg, m.keys.Inc):
			m.slider.Nudge(constants.SliderStep)
		case key.Matches(msg, m.keys.BigDec):
			m.slider.Nudge(-constants.SliderBigStep)
		case key.Matches(msg, m.keys.BigInc):
			m.slider.Nudge(constants.SliderBigStep)
		case key.Matches(msg, m.keys.Min):
			m.slider.Set(constants.MinRating)
		case key.Matches(msg, m.keys.Max):
			m.slider.Set(constants.MaxRating)
		case key.Matches(msg, m.keys.Confirm):
			return m, m.submit()
		}

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft && m.onBar(msg.X, msg.Y) {
				m.dragging = true
				m.moveTo(msg.X)
			}
		case tea.MouseActionMotion:
			if m.dragging {
				m.moveTo(msg.X)
			}
		case tea.MouseActionRelease:
			if m.dragging {
				m.moveTo(msg.X)
				m.dragging = false
				return m, m.submit()
			}
		}
	}
	return m, nil
}

func (m *Model) submit() tea.Cmd {
	cmd := rating.Submit(m.session, m.slider.Value())
	m.Clear()
	return cmd
}

func (m *Model) barRow() int {
	return m.originY + lipgloss.Height(m.cardView()) + 1
}

func (m *Model) onBar(x, y int) bool {
	col := x - m.originX
	return y == m.barRow() && col >= 0 && col < m.bar.Width
}

// moveTo positions the slider under screen column x
func (m *Model) moveTo(x int) {
	if m.bar.Width <= 1 {
		return
	}
	m.slider.SetFraction(float64(x-m.originX) / float64(m.bar.Width-1))
}

func (m *Model) cardView() string {
	item, ok := m.session.Current()
	if !ok {
		return ""
	}
	return card.Render(item, m.width, card.TintNone)
}

func feedbackColor(v int) lipgloss.Color {
	for _, fc := range feedbackColors {
		if v >= fc.min {
			return fc.color
		}
	}
	return feedbackColors[len(feedbackColors)-1].color
}

func (m *Model) View() string {
	cv := m.cardView()
	if cv == "" {
		return ""
	}

	fb := m.slider.Feedback()
	label := valueStyle.Foreground(feedbackColor(fb.Value)).
		Render(fmt.Sprintf("%d%%  %s %s", m.slider.Value(), fb.Emoji, fb.Label))

	return lipgloss.JoinVertical(lipgloss.Left,
		cv,
		"",
		m.bar.ViewAs(m.slider.Fraction()),
		label,
		hintStyle.Render("drag the bar or use ←/→, enter to confirm"),
	)
}
