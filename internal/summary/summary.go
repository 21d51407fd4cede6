// Package summary ranks the ratings of a completed session and picks the winners.
package summary

import (
	"fmt"
	"sort"

	"github.com/julianstephens/pickadate/internal/constants"
	"github.com/julianstephens/pickadate/internal/models"
)

// Summary is what the results screen shows
type Summary struct {
	Picks  []models.Rating // chosen by the policy, highest first
	Ranked []models.Rating // every rating, highest first
}

// Empty reports whether there is nothing to pick from
func (s Summary) Empty() bool {
	return len(s.Ranked) == 0
}

// Policy turns a session's ratings into a Summary
type Policy interface {
	Name() constants.SummaryPolicy
	Summarize(ratings []models.Rating) Summary
}

// Ranked returns a copy of ratings sorted by value, highest first.
// Equal values keep their submission order.
func Ranked(ratings []models.Rating) []models.Rating {
	out := make([]models.Rating, len(ratings))
	copy(out, ratings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}

// TopPick picks the single highest rating
type TopPick struct{}

func (TopPick) Name() constants.SummaryPolicy { return constants.SummaryTopPick }

func (TopPick) Summarize(ratings []models.Rating) Summary {
	ranked := Ranked(ratings)
	s := Summary{Ranked: ranked}
	if len(ranked) > 0 {
		s.Picks = ranked[:1]
	}
	return s
}

// Threshold picks every rating at or above Min
type Threshold struct {
	Min int
}

func (Threshold) Name() constants.SummaryPolicy { return constants.SummaryThreshold }

func (p Threshold) Summarize(ratings []models.Rating) Summary {
	ranked := Ranked(ratings)
	s := Summary{Ranked: ranked}
	for _, r := range ranked {
		if r.Value >= p.Min {
			s.Picks = append(s.Picks, r)
		}
	}
	return s
}

// ParsePolicy maps a policy name to its implementation
func ParsePolicy(name string) (Policy, error) {
	switch constants.SummaryPolicy(name) {
	case constants.SummaryTopPick:
		return TopPick{}, nil
	case constants.SummaryThreshold:
		return Threshold{Min: constants.HighRatingThreshold}, nil
	default:
		return nil, fmt.Errorf("unknown summary policy %q (want %q or %q)",
			name, constants.SummaryTopPick, constants.SummaryThreshold)
	}
}
