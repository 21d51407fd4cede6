// Package swipe rates a card by flinging it right (100) or left (0).
package swipe

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/pickadate/internal/constants"
	"github.com/julianstephens/pickadate/internal/input"
	"github.com/julianstephens/pickadate/internal/tui/components/card"
	"github.com/julianstephens/pickadate/internal/tui/components/rating"
)

// maxShift is how far, in cells, the card is drawn away from rest
const maxShift = 12

var (
	likeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	nopeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Release key.Binding
	Yes     key.Binding
	No      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "drag left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "drag right"),
		),
		Release: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "let go"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "swipe right"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "swipe left"),
		),
	}
}

type Model struct {
	session rating.Session
	keys    KeyMap
	swipe   input.Swipe
	width   int
	originX int
	originY int
}

func New(s rating.Session) *Model {
	return &Model{
		session: s,
		keys:    DefaultKeyMap(),
		swipe:   input.NewSwipe(),
	}
}

func (m *Model) SetSize(width, height int) { m.width = width }

func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

func (m *Model) Clear() {
	m.swipe = input.NewSwipe()
}

// Offset is the card's current displacement in swipe units
func (m *Model) Offset() int { return m.swipe.Offset() }

func (m *Model) Bindings() []key.Binding {
	return []key.Binding{m.keys.Left, m.keys.Right, m.keys.Release, m.keys.Yes, m.keys.No}
}

func (m *Model) Update(msg tea.Msg) (rating.Input, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.swipe.Move(-constants.SwipeNudge)
		case key.Matches(msg, m.keys.Right):
			m.swipe.Move(constants.SwipeNudge)
		case key.Matches(msg, m.keys.Release):
			return m, m.release()
		case key.Matches(msg, m.keys.Yes):
			m.Clear()
			return m, rating.Submit(m.session, constants.MaxRating)
		case key.Matches(msg, m.keys.No):
			m.Clear()
			return m, rating.Submit(m.session, constants.MinRating)
		}

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft && m.onCard(msg.X, msg.Y) {
				m.swipe.Press(msg.X)
			}
		case tea.MouseActionMotion:
			m.swipe.Drag(msg.X)
		case tea.MouseActionRelease:
			if m.swipe.Dragging() {
				m.swipe.Drag(msg.X)
				return m, m.release()
			}
		}
	}
	return m, nil
}

// release lets go of the card; within the threshold it snaps back without a rating
func (m *Model) release() tea.Cmd {
	value, ok := m.swipe.Release()
	if !ok {
		return nil
	}
	return rating.Submit(m.session, value)
}

func (m *Model) shift() int {
	s := m.swipe.Offset() / constants.SwipeUnitsPerCell
	if s > maxShift {
		s = maxShift
	}
	if s < -maxShift {
		s = -maxShift
	}
	return s
}

func (m *Model) onCard(x, y int) bool {
	cv := m.renderCard()
	left := m.originX + maxShift + m.shift()
	top := m.originY + 1
	return x >= left && x < left+lipgloss.Width(cv) && y >= top && y < top+lipgloss.Height(cv)
}

func (m *Model) renderCard() string {
	item, ok := m.session.Current()
	if !ok {
		return ""
	}
	tint := card.TintNone
	switch m.swipe.Leaning() {
	case 1:
		tint = card.TintRight
	case -1:
		tint = card.TintLeft
	}
	return card.Render(item, m.width-2*maxShift, tint)
}

func (m *Model) View() string {
	cv := m.renderCard()
	if cv == "" {
		return ""
	}

	var banner string
	switch m.swipe.Leaning() {
	case 1:
		banner = likeStyle.Render("LFG!!! 🤑")
	case -1:
		banner = nopeStyle.Render("💀 TF BRO")
	}
	pad := strings.Repeat(" ", maxShift+m.shift())

	return lipgloss.JoinVertical(lipgloss.Left,
		pad+banner,
		lipgloss.NewStyle().MarginLeft(maxShift+m.shift()).Render(cv),
		hintStyle.Render("drag the card, or ←/→ then space · y/n to fling"),
	)
}
