package input

import "github.com/julianstephens/pickadate/internal/constants"

// Swipe tracks the horizontal displacement of a card being dragged
type Swipe struct {
	offset    int
	threshold int
	dragging  bool
	anchorX   int
}

// NewSwipe returns a card at rest with the default threshold
func NewSwipe() Swipe {
	return Swipe{threshold: constants.SwipeThreshold}
}

// Offset is the current displacement in units; negative is left
func (s Swipe) Offset() int { return s.offset }

func (s Swipe) Dragging() bool { return s.dragging }

func (s Swipe) Threshold() int { return s.threshold }

// Move adds delta units of displacement
func (s *Swipe) Move(delta int) {
	s.offset += delta
}

// Press starts a pointer drag at column x
func (s *Swipe) Press(x int) {
	s.dragging = true
	s.anchorX = x
}

// Drag updates the displacement from the pointer column
func (s *Swipe) Drag(x int) {
	if !s.dragging {
		return
	}
	s.offset = (x - s.anchorX) * constants.SwipeUnitsPerCell
}

// Release ends the gesture. Past +threshold it yields MaxRating, past -threshold MinRating.
// Otherwise ok is false and the card returns to rest. The card is at rest afterwards
// either way.
func (s *Swipe) Release() (value int, ok bool) {
	offset := s.offset
	s.offset = 0
	s.dragging = false

	switch {
	case offset > s.threshold:
		return constants.MaxRating, true
	case offset < -s.threshold:
		return constants.MinRating, true
	default:
		return 0, false
	}
}

// Leaning reports which way the card would go if released now: 1 right, -1 left, 0 none
func (s Swipe) Leaning() int {
	switch {
	case s.offset > s.threshold:
		return 1
	case s.offset < -s.threshold:
		return -1
	default:
		return 0
	}
}
