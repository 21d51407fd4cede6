package buttons

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/pickadate/internal/models"
	"github.com/julianstephens/pickadate/internal/tui/components/rating"
)

var errComplete = errors.New("complete")

type fakeSession struct {
	items   []models.Item
	ratings []int
}

func (f *fakeSession) Current() (models.Item, bool) {
	if len(f.ratings) >= len(f.items) {
		return models.Item{}, false
	}
	return f.items[len(f.ratings)], true
}

func (f *fakeSession) Submit(v int) error {
	if len(f.ratings) >= len(f.items) {
		return errComplete
	}
	f.ratings = append(f.ratings, v)
	return nil
}

func newTestButtons() (*Model, *fakeSession) {
	fs := &fakeSession{items: []models.Item{{ID: 1, Title: "Coffee"}, {ID: 2, Title: "Picnic"}}}
	m := New(fs)
	m.SetSize(80, 40)
	m.SetOrigin(2, 4)
	return m, fs
}

func TestKeys(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.KeyMsg
		want int
	}{
		{"number key 1", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("1")}}, 20},
		{"number key 5", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("5")}}, 100},
		{"enter on default", []tea.KeyMsg{{Type: tea.KeyEnter}}, 60},
		{"right then enter", []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyEnter}}, 80},
		{"left past start", []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyLeft}, {Type: tea.KeyLeft}, {Type: tea.KeyEnter}}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, fs := newTestButtons()
			var cmd tea.Cmd
			for _, msg := range tt.msgs {
				_, cmd = m.Update(msg)
			}
			if cmd == nil {
				t.Fatal("expected a submit cmd")
			}
			got := cmd().(rating.RatedMsg)
			if got.Value != tt.want || got.Err != nil {
				t.Errorf("RatedMsg = %+v, want value %d", got, tt.want)
			}
			if len(fs.ratings) != 1 || fs.ratings[0] != tt.want {
				t.Errorf("ratings = %v, want [%d]", fs.ratings, tt.want)
			}
			if m.Selected() != 2 {
				t.Errorf("Selected() after submit = %d, want 2", m.Selected())
			}
		})
	}
}

func TestMouseRelease(t *testing.T) {
	m, fs := newTestButtons()
	buttonsTop := 4 + lipgloss.Height(m.cardView())

	m.Update(tea.MouseMsg{X: 3, Y: buttonsTop + 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if m.Selected() != 0 {
		t.Errorf("hover Selected() = %d, want 0", m.Selected())
	}

	_, cmd := m.Update(tea.MouseMsg{X: 3, Y: buttonsTop + 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if cmd == nil {
		t.Fatal("release over a button should submit")
	}
	if len(fs.ratings) != 1 || fs.ratings[0] != 20 {
		t.Errorf("ratings = %v, want [20]", fs.ratings)
	}
}

func TestMouseMiss(t *testing.T) {
	m, fs := newTestButtons()
	_, cmd := m.Update(tea.MouseMsg{X: 3, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if cmd != nil || len(fs.ratings) != 0 {
		t.Error("release on the card should not submit")
	}
}

func TestSubmitAfterComplete(t *testing.T) {
	m, fs := newTestButtons()
	fs.ratings = []int{40, 60}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	if cmd == nil {
		t.Fatal("expected a cmd carrying the error")
	}
	if got := cmd().(rating.RatedMsg); !errors.Is(got.Err, errComplete) {
		t.Errorf("RatedMsg.Err = %v, want %v", got.Err, errComplete)
	}
	if v := m.View(); v != "" {
		t.Errorf("View() = %q, want empty", v)
	}
}
