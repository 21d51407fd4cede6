package models

// Item is one date idea shown on a card
type Item struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Location    string `json:"location" yaml:"location"`
	Duration    string `json:"duration" yaml:"duration"`
	People      string `json:"people" yaml:"people"`
	Image       string `json:"image" yaml:"image"` // remote URL, displayed as-is
	Category    string `json:"category" yaml:"category"`
}
