// Package buttons rates a card with one of the fixed palette buttons.
package buttons

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/pickadate/internal/input"
	"github.com/julianstephens/pickadate/internal/tui/components/card"
	"github.com/julianstephens/pickadate/internal/tui/components/rating"
)

var (
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("205")).
				BorderForeground(lipgloss.Color("205")).
				Bold(true)
)

type KeyMap struct {
	Pick   key.Binding
	Left   key.Binding
	Right  key.Binding
	Submit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "rate"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "rate highlighted"),
		),
	}
}

// span is the horizontal extent of a rendered button
type span struct{ from, to int }

type Model struct {
	session  rating.Session
	keys     KeyMap
	selected int
	width    int
	originX  int
	originY  int
}

func New(s rating.Session) *Model {
	return &Model{
		session:  s,
		keys:     DefaultKeyMap(),
		selected: len(input.Palette) / 2,
	}
}

func (m *Model) SetSize(width, height int) { m.width = width }

func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

func (m *Model) Clear() {
	m.selected = len(input.Palette) / 2
}

// Selected is the index of the highlighted palette button
func (m *Model) Selected() int { return m.selected }

func (m *Model) Bindings() []key.Binding {
	return []key.Binding{m.keys.Pick, m.keys.Left, m.keys.Right, m.keys.Submit}
}

func (m *Model) Update(msg tea.Msg) (rating.Input, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Pick):
			if c, ok := input.ChoiceForKey(msg.String()); ok {
				return m, m.submit(c.Value)
			}
		case key.Matches(msg, m.keys.Left):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, m.keys.Right):
			if m.selected < len(input.Palette)-1 {
				m.selected++
			}
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit(input.Palette[m.selected].Value)
		}

	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		i, ok := m.hit(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		switch msg.Action {
		case tea.MouseActionMotion, tea.MouseActionPress:
			m.selected = i
		case tea.MouseActionRelease:
			m.selected = i
			return m, m.submit(input.Palette[i].Value)
		}
	}
	return m, nil
}

func (m *Model) submit(value int) tea.Cmd {
	cmd := rating.Submit(m.session, value)
	m.Clear()
	return cmd
}

func (m *Model) cardView() string {
	item, ok := m.session.Current()
	if !ok {
		return ""
	}
	return card.Render(item, m.width, card.TintNone)
}

func (m *Model) renderButtons() ([]string, []span) {
	views := make([]string, len(input.Palette))
	spans := make([]span, len(input.Palette))
	x := 0
	for i, c := range input.Palette {
		style := buttonStyle
		if i == m.selected {
			style = activeButtonStyle
		}
		views[i] = style.Render(fmt.Sprintf("%s\n%s", c.Emoji, c.Label))
		w := lipgloss.Width(views[i])
		spans[i] = span{from: x, to: x + w}
		x += w
	}
	return views, spans
}

// hit maps a screen coordinate onto a palette index
func (m *Model) hit(x, y int) (int, bool) {
	views, spans := m.renderButtons()
	top := m.originY + lipgloss.Height(m.cardView())
	if y < top || y >= top+lipgloss.Height(views[0]) {
		return 0, false
	}
	col := x - m.originX
	for i, s := range spans {
		if col >= s.from && col < s.to {
			return i, true
		}
	}
	return 0, false
}

func (m *Model) View() string {
	cv := m.cardView()
	if cv == "" {
		return ""
	}
	views, _ := m.renderButtons()
	return lipgloss.JoinVertical(lipgloss.Left,
		cv,
		lipgloss.JoinHorizontal(lipgloss.Top, views...),
	)
}
