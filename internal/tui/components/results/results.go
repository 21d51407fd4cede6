package results

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/pickadate/internal/constants"
	"github.com/julianstephens/pickadate/internal/summary"
)

// EmptyMessage is shown when a session ends with nothing rated
const EmptyMessage = "No dates rated! Try again!"

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	pickStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 1)

	pickTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// Model shows the picks of a summary and every rating in a scrollable list
type Model struct {
	viewport viewport.Model
	summary  summary.Summary
	policy   constants.SummaryPolicy
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetSummary(s summary.Summary, policy constants.SummaryPolicy) {
	m.summary = s
	m.policy = policy
	m.viewport.GotoTop()
	m.Render()
}

func (m *Model) Render() {
	m.viewport.SetContent(Content(m.summary, m.policy, m.width))
}

// Content renders the picks and the ranked list for a given width
func Content(s summary.Summary, policy constants.SummaryPolicy, width int) string {
	if s.Empty() {
		return emptyStyle.Render(EmptyMessage)
	}

	var b strings.Builder
	if policy == constants.SummaryThreshold {
		b.WriteString(fmt.Sprintf("You rated %d date options. Your picks (%d%% and up):\n\n",
			len(s.Ranked), constants.HighRatingThreshold))
	} else {
		b.WriteString(fmt.Sprintf("You rated %d date options. Here's your top pick:\n\n", len(s.Ranked)))
	}

	if len(s.Picks) == 0 {
		b.WriteString(emptyStyle.Render("Nothing made the cut this time."))
		b.WriteString("\n")
	}
	boxWidth := width - 2
	if boxWidth > 48 || boxWidth <= 0 {
		boxWidth = 48
	}
	for _, p := range s.Picks {
		lines := []string{
			"🏆 " + pickTitleStyle.Render(p.Item.Title),
		}
		if p.Item.Location != "" {
			lines = append(lines, metaStyle.Render(p.Item.Location))
		}
		lines = append(lines, valueStyle.Render(fmt.Sprintf("Your Rating: %d%%", p.Value)))
		b.WriteString(pickStyle.Width(boxWidth).Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(headingStyle.Render("All Your Ratings:"))
	b.WriteString("\n")

	titleWidth := 0
	for _, r := range s.Ranked {
		if w := lipgloss.Width(r.Item.Title); w > titleWidth {
			titleWidth = w
		}
	}
	for _, r := range s.Ranked {
		pad := strings.Repeat(" ", titleWidth-lipgloss.Width(r.Item.Title))
		b.WriteString(fmt.Sprintf("  %s%s  %s\n", r.Item.Title, pad, valueStyle.Render(fmt.Sprintf("%3d%%", r.Value))))
	}
	return strings.TrimRight(b.String(), "\n")
}
