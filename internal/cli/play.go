package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/pickadate/internal/constants"
	"github.com/julianstephens/pickadate/internal/logger"
	"github.com/julianstephens/pickadate/internal/slug"
	"github.com/julianstephens/pickadate/internal/storage"
	"github.com/julianstephens/pickadate/internal/summary"
	"github.com/julianstephens/pickadate/internal/tui"
)

type PlayCmd struct {
	Name     string `help:"Visitor name. Skips the entry screen." xor:"visitor"`
	Slug     string `help:"Visitor slug, e.g. jane-doe. Skips the entry screen." xor:"visitor"`
	Input    string `help:"How dates are rated: buttons, slider or swipe." enum:"buttons,slider,swipe" default:"buttons"`
	Summary  string `help:"What the results show: top or threshold." enum:"top,threshold" default:"top"`
	NoRecord bool   `help:"Don't write completed sessions to the result log."`
}

// options turns the flags into TUI options, without a store
func (c *PlayCmd) options(ctx *Context) (tui.Options, error) {
	items, err := ctx.Items()
	if err != nil {
		return tui.Options{}, err
	}
	policy, err := summary.ParsePolicy(c.Summary)
	if err != nil {
		return tui.Options{}, err
	}

	var s string
	switch {
	case c.Name != "":
		if !slug.Valid(c.Name) {
			return tui.Options{}, fmt.Errorf("name cannot be blank")
		}
		s = slug.Slugify(c.Name)
	case c.Slug != "":
		s = slug.Slugify(c.Slug)
	}

	return tui.Options{
		Items:  items,
		Mode:   constants.InputMode(c.Input),
		Policy: policy,
		Slug:   s,
	}, nil
}

// recorder opens the result log for recording. A log that can't be opened disables
// recording rather than stopping the session.
func (c *PlayCmd) recorder(ctx *Context) storage.Provider {
	if c.NoRecord || ctx.Store == nil {
		return nil
	}

	existed := fileExists(ctx.Store.GetConfigPath())
	if err := storage.Open(ctx.Store); err != nil {
		logger.Warn("Result log unavailable, results won't be recorded", "path", ctx.Store.GetConfigPath(), "error", err)
		return nil
	}
	if existed {
		ctx.PerformAutomaticBackup()
	}
	return ctx.Store
}

func (c *PlayCmd) Run(ctx *Context) error {
	opts, err := c.options(ctx)
	if err != nil {
		return err
	}
	opts.Store = c.recorder(ctx)

	m, err := tui.NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	return nil
}
