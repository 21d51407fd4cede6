package card

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/pickadate/internal/models"
)

func TestRender(t *testing.T) {
	item := models.Item{
		ID:          1,
		Title:       "Coffee",
		Description: "A slow morning.",
		Location:    "Corner cafe",
		Duration:    "1 hour",
		People:      "2 people",
		Image:       "https://example.com/coffee.jpg",
		Category:    "Chill",
	}

	out := Render(item, 100, TintNone)
	for _, want := range []string{"Coffee", "Chill", "A slow morning.", "Corner cafe", "1 hour", "2 people", "https://example.com/coffee.jpg"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
	if got := lipgloss.Width(out); got != MaxWidth {
		t.Errorf("Render() width = %d, want %d", got, MaxWidth)
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		available int
		want      int
	}{
		{0, MaxWidth},
		{-5, MaxWidth},
		{200, MaxWidth},
		{30, 30},
		{10, minWidth},
	}
	for _, tt := range tests {
		if got := Width(tt.available); got != tt.want {
			t.Errorf("Width(%d) = %d, want %d", tt.available, got, tt.want)
		}
	}
}
