package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/pickadate/internal/constants"
	"github.com/julianstephens/pickadate/internal/logger"
	"github.com/julianstephens/pickadate/internal/models"
	"github.com/julianstephens/pickadate/internal/session"
	"github.com/julianstephens/pickadate/internal/slug"
	"github.com/julianstephens/pickadate/internal/storage"
	"github.com/julianstephens/pickadate/internal/summary"
	"github.com/julianstephens/pickadate/internal/tui/components/rating"
)

// ratingHeaderLines is the height of the greeting block above the rating input
const ratingHeaderLines = 3

type celebrationDoneMsg struct{ id int }

type resultSavedMsg struct {
	id  string
	err error
}

func celebrate(id int) tea.Cmd {
	return tea.Tick(constants.CelebrationDuration, func(time.Time) tea.Msg {
		return celebrationDoneMsg{id: id}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layoutInput()
		resultsHeight := msg.Height - 10
		if resultsHeight < 5 {
			resultsHeight = 5
		}
		m.results.SetSize(msg.Width-2*contentLeft, resultsHeight)
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width - 2*contentLeft)
		}
		return m, nil

	case rating.RatedMsg:
		return m.handleRated(msg)

	case celebrationDoneMsg:
		// A restart may have started a newer celebration
		if msg.id == m.celebrationID {
			m.celebrating = false
		}
		return m, nil

	case resultSavedMsg:
		if msg.err != nil {
			logger.Warn("Failed to record result", "error", msg.err)
			m.recordErr = msg.err
			return m, nil
		}
		logger.Info("Result recorded", "id", msg.id, "slug", m.session.Slug())
		m.lastResultID = msg.id
		return m, nil
	}

	if m.state == constants.StateChooseVariant {
		return m.updateVariantForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		// The name field takes every printable key, so q and ? only work off the entry screen
		if m.state != constants.StateEntry {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}
	}

	switch m.state {
	case constants.StateEntry:
		return m.updateEntry(msg)
	case constants.StateRating:
		return m.updateRating(msg)
	case constants.StateSummary:
		return m.updateSummary(msg)
	}
	return m, nil
}

func (m *Model) layoutInput() {
	m.input.SetSize(m.width-2*contentLeft, m.height)
	m.input.SetOrigin(contentLeft, contentTop+ratingHeaderLines)
}

func (m Model) updateEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Start):
			name := m.nameInput.Value()
			if !slug.Valid(name) {
				return m, nil
			}
			m.startSession(slug.Slugify(name))
			return m, nil
		case key.Matches(msg, m.keys.Variant):
			return m.openVariantForm()
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) startSession(s string) {
	m.session.SetSlug(s)
	m.input.Clear()
	m.layoutInput()
	m.clearOutcome()
	m.state = constants.StateRating
	logger.Info("Session started", "route", slug.Route(s), "mode", m.mode, "policy", m.session.Policy().Name())
}

func (m Model) updateRating(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Back) {
		return m.goHome()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleRated(msg rating.RatedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Warn("Rating rejected", "value", msg.Value, "error", msg.Err)
		return m, nil
	}
	if m.state != constants.StateRating || m.session.State() != session.Complete {
		return m, nil
	}
	return m.enterSummary()
}

func (m Model) enterSummary() (tea.Model, tea.Cmd) {
	sum := m.session.Summary()
	policy := m.session.Policy().Name()

	m.state = constants.StateSummary
	m.results.SetSummary(sum, policy)
	m.clearOutcome()
	m.celebrating = true
	m.celebrationID++

	cmds := []tea.Cmd{celebrate(m.celebrationID)}
	if m.store != nil {
		cmds = append(cmds, recordResult(m.store, m.buildResult(sum, policy)))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) buildResult(sum summary.Summary, policy constants.SummaryPolicy) models.Result {
	return models.Result{
		ID:          uuid.New().String(),
		Slug:        m.session.Slug(),
		DisplayName: m.session.DisplayName(),
		InputMode:   string(m.mode),
		Policy:      string(policy),
		Picks:       models.ToRatedItems(sum.Picks),
		Ratings:     models.ToRatedItems(sum.Ranked),
		CompletedAt: time.Now(),
	}
}

func recordResult(store storage.Provider, r models.Result) tea.Cmd {
	return func() tea.Msg {
		return resultSavedMsg{id: r.ID, err: store.SaveResult(r)}
	}
}

func (m *Model) clearOutcome() {
	m.celebrating = false
	m.lastResultID = ""
	m.recordErr = nil
}

func (m Model) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Restart):
			m.session.Reset()
			m.input.Clear()
			m.clearOutcome()
			m.state = constants.StateRating
			return m, nil
		case key.Matches(msg, m.keys.Home):
			return m.goHome()
		}
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m Model) goHome() (tea.Model, tea.Cmd) {
	m.session.SetSlug("")
	m.input.Clear()
	m.clearOutcome()
	m.nameInput.Reset()
	focus := m.nameInput.Focus()
	m.state = constants.StateEntry
	return m, tea.Batch(focus, textinput.Blink)
}

func (m Model) openVariantForm() (tea.Model, tea.Cmd) {
	m.variantForm = &VariantFormModel{
		Mode:   m.mode,
		Policy: m.session.Policy().Name(),
	}
	m.form = newVariantForm(m.variantForm)
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width - 2*contentLeft)
	}
	m.state = constants.StateChooseVariant
	return m, m.form.Init()
}

func (m Model) updateVariantForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			m.quitting = true
			return m, tea.Quit
		case msg.Type == tea.KeyEsc:
			m.state = constants.StateEntry
			return m, nil
		}
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		m.applyVariant(*m.variantForm)
		m.state = constants.StateEntry
	case huh.StateAborted:
		m.state = constants.StateEntry
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) applyVariant(v VariantFormModel) {
	if v.Mode != "" && v.Mode != m.mode {
		m.mode = v.Mode
		m.input = newInput(v.Mode, m.session)
		m.layoutInput()
	}
	if p, err := summary.ParsePolicy(string(v.Policy)); err == nil {
		m.session.SetPolicy(p)
	} else {
		logger.Warn("Ignoring unknown summary policy", "policy", v.Policy)
	}
	logger.Debug("Variant chosen", "mode", m.mode, "policy", m.session.Policy().Name())
}
