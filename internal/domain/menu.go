package domain

import "time"

// MenuEntry is the dish plan for one calendar date (unique on Date).
// Details carries free-form dish fields and must stay plain data so the
// store can encode it.
type MenuEntry struct {
	ID        string         `json:"id"`
	Date      string         `json:"date"`
	MainDish  string         `json:"main_dish"`
	SideDish  string         `json:"side_dish,omitempty"`
	Drink     string         `json:"drink,omitempty"`
	Dessert   string         `json:"dessert,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
