package models

import "time"

// Deck summarises one notebook for the deck catalog.
type Deck struct {
	Path       string    `json:"path"`
	Title      string    `json:"title"`
	Author     string    `json:"author,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	Cells      int       `json:"cells"`
	Slides     int       `json:"slides"`
	Fragments  int       `json:"fragments"`
	Spacers    int       `json:"spacers"` // leftover spacer cells found on disk
	Content    string    `json:"content,omitempty"`
	ModifiedAt time.Time `json:"modified_at"`
	IndexedAt  time.Time `json:"indexed_at"`
}

// NeedsCleaning reports whether the saved file still carries spacer cells.
func (d *Deck) NeedsCleaning() bool {
	return d.Spacers > 0
}
