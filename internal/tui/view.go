package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/pickadate/internal/constants"
	"github.com/julianstephens/pickadate/internal/slug"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateEntry:
		content = m.viewEntry()
	case constants.StateRating:
		content = m.viewRating()
	case constants.StateSummary:
		content = m.viewSummary()
	case constants.StateChooseVariant:
		content = m.form.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		docStyle.Render(content),
		statusStyle.Render(m.Route()),
		m.help.View(m),
	)
}

func (m Model) viewEntry() string {
	start := startDisabledStyle.Render("Start")
	if slug.Valid(m.nameInput.Value()) {
		start = startStyle.Render("Start")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Pick Your Perfect Date 💘"),
		"",
		"What's your name?",
		m.nameInput.View(),
		"",
		start,
		"",
		subtleStyle.Render(fmt.Sprintf("rating with %s · showing %s", m.mode, policyLabel(m.session.Policy().Name()))),
	)
}

func policyLabel(p constants.SummaryPolicy) string {
	if p == constants.SummaryThreshold {
		return fmt.Sprintf("everything %d%%+", constants.HighRatingThreshold)
	}
	return "the top pick"
}

// viewRating must keep ratingHeaderLines in sync with the lines above the input
func (m Model) viewRating() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render(fmt.Sprintf("Bonjour %s! 🙂", m.session.DisplayName())),
		subtleStyle.Render("Pick your rating for each date idea!"),
		"",
		m.input.View(),
		"",
		subtleStyle.Render(m.progressLine()),
	)
}

func (m Model) viewSummary() string {
	name := m.session.DisplayName()
	heading := headingStyle.Render(fmt.Sprintf("Your results, %s", name))
	if m.celebrating {
		heading = celebrationStyle.Render(fmt.Sprintf("🎉 You got through the date list, %s!", name))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		"",
		m.results.View(),
		"",
		m.recordNote(),
		"",
		subtleStyle.Render("[r] Start Over   [h] Back to Home"),
	)
}

func (m Model) recordNote() string {
	switch {
	case m.store == nil:
		return subtleStyle.Render("💡 Please tell the host what you got!")
	case m.recordErr != nil:
		return warningStyle.Render("⚠ Your result couldn't be saved. Please tell the host what you got!")
	case m.lastResultID != "":
		return subtleStyle.Render(fmt.Sprintf("💾 Saved as %s. The host can look it up with `pickadate history`.", shortID(m.lastResultID)))
	default:
		return subtleStyle.Render("Saving your result…")
	}
}

// shortID is the prefix `pickadate history` prints
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
