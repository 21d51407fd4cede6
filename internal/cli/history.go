package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/pickadate/internal/constants"
	"github.com/julianstephens/pickadate/internal/models"
	"github.com/julianstephens/pickadate/internal/storage"
)

// shortIDLen is how much of a result ID the listing shows and `show` accepts as a prefix
const shortIDLen = 8

type HistoryListCmd struct {
	Limit int `help:"Show at most this many results (0 for all)." default:"${history_limit}"`
}

func (c *HistoryListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	results, err := ctx.Store.GetResults(c.Limit)
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}
	if len(results) == 0 {
		fmt.Println("No results recorded yet")
		return nil
	}

	fmt.Println("Results:")
	for _, r := range results {
		fmt.Println(formatResultLine(r))
	}
	return nil
}

func formatResultLine(r models.Result) string {
	pick := "no picks"
	if p, ok := r.TopPick(); ok {
		pick = fmt.Sprintf("%s (%d%%)", p.Title, p.Value)
		if extra := len(r.Picks) - 1; extra > 0 {
			pick += fmt.Sprintf(" +%d more", extra)
		}
	}
	return fmt.Sprintf("  [%s] %s - %s, %s via %s (%s)",
		shortID(r.ID), r.DisplayName, pick, humanize.Time(r.CompletedAt), r.InputMode, r.Policy)
}

type HistoryShowCmd struct {
	ID string `arg:"" help:"Result ID or unique prefix."`
}

func (c *HistoryShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	r, err := findResult(ctx.Store, c.ID)
	if err != nil {
		return err
	}
	fmt.Print(formatResult(r))
	return nil
}

// findResult looks up id exactly, then as a unique prefix
func findResult(store storage.Provider, id string) (models.Result, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Result{}, errors.New("result ID cannot be empty")
	}

	r, err := store.GetResult(id)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.Result{}, err
	}

	all, err := store.GetResults(0)
	if err != nil {
		return models.Result{}, fmt.Errorf("failed to load results: %w", err)
	}
	var matches []models.Result
	for _, r := range all {
		if strings.HasPrefix(r.ID, id) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 0:
		return models.Result{}, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	case 1:
		return matches[0], nil
	default:
		return models.Result{}, fmt.Errorf("result ID prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}

func formatResult(r models.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Result %s\n", r.ID)
	fmt.Fprintf(&b, "  Visitor:   %s (/%s)\n", r.DisplayName, r.Slug)
	fmt.Fprintf(&b, "  Completed: %s (%s)\n", r.CompletedAt.Local().Format("2006-01-02 15:04:05"), humanize.Time(r.CompletedAt))
	fmt.Fprintf(&b, "  Rated with %s, showing %s\n", r.InputMode, r.Policy)

	if len(r.Picks) == 0 {
		b.WriteString("\nNo picks.\n")
	} else {
		b.WriteString("\nPicks:\n")
		for _, p := range r.Picks {
			fmt.Fprintf(&b, "  🏆 %s - %d%%\n", p.Title, p.Value)
		}
	}

	b.WriteString("\nAll ratings:\n")
	for _, rt := range r.Ratings {
		marker := " "
		if rt.Value >= constants.HighRatingThreshold {
			marker = "*"
		}
		fmt.Fprintf(&b, "  %s %3d%%  %s\n", marker, rt.Value, rt.Title)
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}
