// Package session holds the rating flow for one visitor: an ordered walk over a fixed deck
// with exactly one rating per item. It is in-memory only.
package session

import (
	"errors"
	"fmt"

	"github.com/julianstephens/pickadate/internal/constants"
	"github.com/julianstephens/pickadate/internal/logger"
	"github.com/julianstephens/pickadate/internal/models"
	"github.com/julianstephens/pickadate/internal/slug"
	"github.com/julianstephens/pickadate/internal/summary"
)

var (
	// ErrSessionComplete is returned when a rating arrives after the last item
	ErrSessionComplete = errors.New("session is complete")
	// ErrRatingOutOfRange is returned for ratings outside [0,100]
	ErrRatingOutOfRange = errors.New("rating out of range")
	// ErrNoItems is returned when a session is built without a deck
	ErrNoItems = errors.New("session needs at least one item")
)

// State is the phase of the flow
type State int

const (
	Active State = iota
	Complete
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config parameterizes a Controller
type Config struct {
	Items  []models.Item
	Policy summary.Policy // defaults to summary.TopPick
	Slug   string
}

// Controller drives one visitor's session.
// It only changes through Submit and Reset.
type Controller struct {
	items    []models.Item
	policy   summary.Policy
	slug     string
	position int
	ratings  []models.Rating
}

// New builds a Controller in the Active state at position 0
func New(cfg Config) (*Controller, error) {
	if len(cfg.Items) == 0 {
		return nil, ErrNoItems
	}
	items := make([]models.Item, len(cfg.Items))
	copy(items, cfg.Items)

	policy := cfg.Policy
	if policy == nil {
		policy = summary.TopPick{}
	}

	return &Controller{
		items:  items,
		policy: policy,
		slug:   cfg.Slug,
	}, nil
}

// Submit records value for the current item and advances.
func (c *Controller) Submit(value int) error {
	if c.State() == Complete {
		return ErrSessionComplete
	}
	if value < constants.MinRating || value > constants.MaxRating {
		return fmt.Errorf("%w: %d", ErrRatingOutOfRange, value)
	}

	item := c.items[c.position]
	c.ratings = append(c.ratings, models.Rating{Item: item, Value: value})
	c.position++

	logger.Debug("Rating submitted", "slug", c.slug, "title", item.Title, "rating", value,
		"position", c.position, "total", len(c.items))
	return nil
}

// Reset returns to Active at position 0 with no ratings
func (c *Controller) Reset() {
	c.position = 0
	c.ratings = nil
	logger.Debug("Session reset", "slug", c.slug)
}

func (c *Controller) State() State {
	if c.position >= len(c.items) {
		return Complete
	}
	return Active
}

func (c *Controller) Position() int { return c.position }

func (c *Controller) Total() int { return len(c.items) }

// Current returns the item awaiting a rating. ok is false once Complete.
func (c *Controller) Current() (models.Item, bool) {
	if c.State() == Complete {
		return models.Item{}, false
	}
	return c.items[c.position], true
}

// Ratings returns a copy of the ratings in submission order
func (c *Controller) Ratings() []models.Rating {
	out := make([]models.Rating, len(c.ratings))
	copy(out, c.ratings)
	return out
}

// HighlyRated counts ratings at or above the high-rating threshold
func (c *Controller) HighlyRated() int {
	return models.HighlyRated(c.ratings, constants.HighRatingThreshold)
}

func (c *Controller) Slug() string { return c.slug }

// DisplayName is the cosmetic name reconstructed from the slug
func (c *Controller) DisplayName() string { return slug.DisplayName(c.slug) }

// SetSlug changes the visitor and resets the session
func (c *Controller) SetSlug(s string) {
	c.slug = s
	c.Reset()
}

func (c *Controller) Policy() summary.Policy { return c.policy }

// SetPolicy swaps the summary policy; ratings are kept
func (c *Controller) SetPolicy(p summary.Policy) {
	if p != nil {
		c.policy = p
	}
}

// Summary applies the policy to the ratings collected so far
func (c *Controller) Summary() summary.Summary {
	return c.policy.Summarize(c.ratings)
}
