// Package input holds the rating producers. Each one turns a gesture into a value in
// [0,100]; none of them touch the session directly.
package input

import (
	"fmt"

	"github.com/julianstephens/pickadate/internal/constants"
)

// ParseMode maps a mode name to an InputMode
func ParseMode(name string) (constants.InputMode, error) {
	switch m := constants.InputMode(name); m {
	case constants.InputButtons, constants.InputSlider, constants.InputSwipe:
		return m, nil
	default:
		return "", fmt.Errorf("unknown input mode %q (want %q, %q or %q)",
			name, constants.InputButtons, constants.InputSlider, constants.InputSwipe)
	}
}

// Modes lists every input mode in display order
func Modes() []constants.InputMode {
	return []constants.InputMode{constants.InputButtons, constants.InputSlider, constants.InputSwipe}
}

func clamp(v int) int {
	if v < constants.MinRating {
		return constants.MinRating
	}
	if v > constants.MaxRating {
		return constants.MaxRating
	}
	return v
}
