package validation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/julianstephens/pickadate/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictEmptyDeck     ConflictType = "empty_deck"
	ConflictDuplicateID   ConflictType = "duplicate_item_id"
	ConflictMissingTitle  ConflictType = "missing_title"
	ConflictDuplicateName ConflictType = "duplicate_item_title"
	ConflictInvalidImage  ConflictType = "invalid_image_url"
)

// Conflict represents a detected problem in a deck
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // titles involved
	ItemIDs     []int
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Validator checks decks for problems that would break a session
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateItems checks a deck
func (v *Validator) ValidateItems(items []models.Item) ValidationResult {
	var result ValidationResult

	if len(items) == 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictEmptyDeck,
			Description: "deck has no items",
		})
		return result
	}

	seenIDs := make(map[int]models.Item)
	seenTitles := make(map[string]models.Item)
	for _, item := range items {
		title := strings.TrimSpace(item.Title)

		if prev, ok := seenIDs[item.ID]; ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("item ID %d is used by both %q and %q", item.ID, prev.Title, item.Title),
				Items:       []string{prev.Title, item.Title},
				ItemIDs:     []int{item.ID},
			})
		} else {
			seenIDs[item.ID] = item
		}

		if title == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingTitle,
				Description: fmt.Sprintf("item %d has no title", item.ID),
				ItemIDs:     []int{item.ID},
			})
			continue
		}

		key := strings.ToLower(title)
		if prev, ok := seenTitles[key]; ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateName,
				Description: fmt.Sprintf("title %q appears more than once", title),
				Items:       []string{title},
				ItemIDs:     []int{prev.ID, item.ID},
			})
		} else {
			seenTitles[key] = item
		}

		if item.Image != "" {
			u, err := url.Parse(item.Image)
			if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidImage,
					Description: fmt.Sprintf("item %q has an invalid image URL: %s", title, item.Image),
					Items:       []string{title},
					ItemIDs:     []int{item.ID},
				})
			}
		}
	}

	return result
}
