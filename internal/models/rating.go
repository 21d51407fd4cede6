package models

// Rating is the score a visitor gave one item
type Rating struct {
	Item  Item `json:"item"`
	Value int  `json:"value"` // 0-100
}

// HighlyRated counts ratings at or above min
func HighlyRated(ratings []Rating, min int) int {
	n := 0
	for _, r := range ratings {
		if r.Value >= min {
			n++
		}
	}
	return n
}
