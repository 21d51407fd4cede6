package models

import "time"

// RatedItem is the stored form of a rating. Only the identifying fields of the item are kept.
type RatedItem struct {
	ItemID int    `json:"item_id"`
	Title  string `json:"title"`
	Value  int    `json:"value"`
}

// Result is the record of one completed session, written to the result log
type Result struct {
	ID          string      `json:"id"`
	Slug        string      `json:"slug"`
	DisplayName string      `json:"display_name"`
	InputMode   string      `json:"input_mode"`
	Policy      string      `json:"policy"`
	Picks       []RatedItem `json:"picks"`
	Ratings     []RatedItem `json:"ratings"` // ranked, highest first
	CompletedAt time.Time   `json:"completed_at"`
}

// TopPick returns the first pick, if any
func (r Result) TopPick() (RatedItem, bool) {
	if len(r.Picks) == 0 {
		return RatedItem{}, false
	}
	return r.Picks[0], true
}

// ToRatedItems flattens ratings for storage
func ToRatedItems(ratings []Rating) []RatedItem {
	out := make([]RatedItem, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, RatedItem{ItemID: r.Item.ID, Title: r.Item.Title, Value: r.Value})
	}
	return out
}
