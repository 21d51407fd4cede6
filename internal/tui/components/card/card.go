package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/pickadate/internal/models"
)

const (
	// MaxWidth caps the card on wide terminals
	MaxWidth = 48
	minWidth = 24
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("219")).
			Padding(0, 1)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)
)

// Width is the card width for an available width
func Width(available int) int {
	w := available
	if w <= 0 || w > MaxWidth {
		w = MaxWidth
	}
	if w < minWidth {
		w = minWidth
	}
	return w
}

// Tint overrides the border colour, e.g. while a card is being swiped
type Tint string

const (
	TintNone  Tint = ""
	TintRight Tint = "42"
	TintLeft  Tint = "196"
)

// Render draws item as a card of the given outer width
func Render(item models.Item, width int, tint Tint) string {
	width = Width(width)
	style := frameStyle.Width(width - 2)
	if tint != TintNone {
		style = style.BorderForeground(lipgloss.Color(string(tint)))
	}
	inner := width - 4

	lines := []string{titleStyle.Render(item.Title)}
	if item.Category != "" {
		lines = append(lines, badgeStyle.Render(item.Category))
	}
	lines = append(lines, "", descStyle.Width(inner).Render(item.Description), "")

	var meta []string
	if item.Location != "" {
		meta = append(meta, "📍 "+item.Location)
	}
	if item.Duration != "" {
		meta = append(meta, "⏱  "+item.Duration)
	}
	if item.People != "" {
		meta = append(meta, "👥 "+item.People)
	}
	if len(meta) > 0 {
		lines = append(lines, metaStyle.Width(inner).Render(strings.Join(meta, "\n")))
	}
	if item.Image != "" {
		lines = append(lines, linkStyle.Width(inner).Render(item.Image))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
