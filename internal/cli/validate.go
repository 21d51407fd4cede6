package cli

import (
	"fmt"

	"github.com/julianstephens/pickadate/internal/deck"
	"github.com/julianstephens/pickadate/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	items, err := deck.Load(ctx.DeckPath)
	if err != nil {
		return err
	}

	fmt.Println("Validating deck...")
	result := validation.New().ValidateItems(items)

	fmt.Println()
	fmt.Println(result.FormatReport())

	if result.HasConflicts() {
		return fmt.Errorf("deck has %d conflict(s)", len(result.Conflicts))
	}
	return nil
}
