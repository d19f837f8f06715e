package models

import "time"

// Settings is the persisted user selection.
type Settings struct {
	LogFolder string
	Avatar    string
}

// Notes are free text kept per avatar.
type Notes struct {
	Avatar    string
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SearchResult is the text returned by a log search.
type SearchResult struct {
	Avatar    string
	Term      string
	Text      string
	Truncated bool
}
