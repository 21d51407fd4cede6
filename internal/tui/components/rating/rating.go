// Package rating is the contract between the rating screen and its input components.
package rating

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/pickadate/internal/models"
)

// Session is the slice of the session controller an input may use.
// Inputs never change the session except through Submit.
type Session interface {
	Current() (models.Item, bool)
	Submit(value int) error
}

// RatedMsg reports a submission so the parent can react, for example by
// switching to the summary once the deck is exhausted.
type RatedMsg struct {
	Value int
	Err   error
}

// Input is one interchangeable rating producer
type Input interface {
	Update(msg tea.Msg) (Input, tea.Cmd)
	View() string
	SetSize(width, height int)
	// SetOrigin tells the input where its top-left corner sits on screen so
	// mouse coordinates can be mapped onto it.
	SetOrigin(x, y int)
	// Clear drops any in-progress gesture, e.g. after a reset
	Clear()
	Bindings() []key.Binding
}

// Submit records value on s and wraps the outcome in a RatedMsg
func Submit(s Session, value int) tea.Cmd {
	err := s.Submit(value)
	return func() tea.Msg {
		return RatedMsg{Value: value, Err: err}
	}
}
