package input

import "github.com/julianstephens/pickadate/internal/constants"

// Slider is a continuous 0-100 value
type Slider struct {
	value int
}

// NewSlider starts at value, clamped to range
func NewSlider(value int) Slider {
	return Slider{value: clamp(value)}
}

func (s Slider) Value() int { return s.value }

// Set moves to v, clamped to range
func (s *Slider) Set(v int) { s.value = clamp(v) }

// Nudge moves by delta, clamped to range
func (s *Slider) Nudge(delta int) { s.Set(s.value + delta) }

// SetFraction positions the slider at f of its track (0..1)
func (s *Slider) SetFraction(f float64) {
	s.Set(int(f*float64(constants.MaxRating) + 0.5))
}

// Fraction is the value as a share of the track
func (s Slider) Fraction() float64 {
	return float64(s.value) / float64(constants.MaxRating)
}

// Snapped is the value rounded to the nearest multiple of SliderSnap. It drives the label
// and colour only; Value is what gets submitted.
func (s Slider) Snapped() int {
	step := constants.SliderSnap
	return clamp((s.value + step/2) / step * step)
}

// Feedback is the label shown under the slider for the snapped value
func (s Slider) Feedback() Choice {
	v := s.Snapped()
	switch {
	case v >= 90:
		return Choice{Value: v, Label: "LFG!!!", Emoji: "🤑"}
	case v >= 70:
		return Choice{Value: v, Label: "Hell yeah", Emoji: "🔥"}
	case v >= 50:
		return Choice{Value: v, Label: "It's alright", Emoji: "🫡"}
	case v >= 30:
		return Choice{Value: v, Label: "Perhaps", Emoji: "🤨"}
	default:
		return Choice{Value: v, Label: "TF BRO", Emoji: "💀"}
	}
}
