package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/pickadate/internal/deck"
)

type DeckCmd struct {
	JSON bool `help:"Print the deck as JSON."`
}

func (c *DeckCmd) Run(ctx *Context) error {
	items, err := deck.Load(ctx.DeckPath)
	if err != nil {
		return err
	}

	if c.JSON {
		jsonBytes, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal deck: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	if len(items) == 0 {
		fmt.Println("Deck is empty")
		return nil
	}

	fmt.Printf("Deck (%d dates):\n", len(items))
	for _, item := range items {
		fmt.Printf("  [%d] %s - %s\n", item.ID, item.Title, item.Category)
		fmt.Printf("      %s · %s · %s\n", item.Location, item.Duration, item.People)
	}
	return nil
}
