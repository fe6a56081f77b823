package models

import "time"

// Match is one completed game. Results are append-only.
type Match struct {
	ID        int       `json:"id" db:"id"`
	WinnerID  int       `json:"winner_id" db:"winner_id"`
	LoserID   int       `json:"loser_id" db:"loser_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
