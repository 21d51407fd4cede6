// Package deck loads the fixed list of date ideas shown during a session.
package deck

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/pickadate/internal/models"
	"github.com/julianstephens/pickadate/internal/validation"
)

//go:embed default.yaml
var defaultDeck []byte

// Default returns the built-in deck
func Default() ([]models.Item, error) {
	items, err := Parse(defaultDeck)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in deck: %w", err)
	}
	return items, nil
}

// Load reads a deck file. An empty path yields the built-in deck.
func Load(path string) ([]models.Item, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse deck %s: %w", path, err)
	}
	return items, nil
}

// Parse decodes a YAML list of items
func Parse(data []byte) ([]models.Item, error) {
	var items []models.Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// LoadValid loads a deck and rejects it if validation finds conflicts
func LoadValid(path string) ([]models.Item, error) {
	items, err := Load(path)
	if err != nil {
		return nil, err
	}
	result := validation.New().ValidateItems(items)
	if result.HasConflicts() {
		return nil, fmt.Errorf("invalid deck: %s", result.Conflicts[0].Description)
	}
	return items, nil
}
