package constants

// InputMode selects which rating producer a session uses
type InputMode string

// SummaryPolicy selects how a completed session is summarized
type SummaryPolicy string

const (
	// Rating bounds. Every producer emits values in [MinRating, MaxRating].
	MinRating = 0
	MaxRating = 100

	// HighRatingThreshold is the "highly rated" cut used by the footer and the threshold policy
	HighRatingThreshold = 70

	// SliderSnap is the step the slider label and colour snap to
	SliderSnap = 5
	// SliderStep and SliderBigStep are keyboard increments for the slider
	SliderStep    = 1
	SliderBigStep = 10

	// SwipeThreshold is the displacement (in units) a card must pass to count as a swipe
	SwipeThreshold = 50
	// SwipeUnitsPerCell converts a mouse drag of one terminal cell into units
	SwipeUnitsPerCell = 5
	// SwipeNudge is the displacement added by one arrow key press
	SwipeNudge = 10

	// Input modes
	InputButtons InputMode = "buttons"
	InputSlider  InputMode = "slider"
	InputSwipe   InputMode = "swipe"

	// Summary policies
	SummaryTopPick   SummaryPolicy = "top"
	SummaryThreshold SummaryPolicy = "threshold"
)
