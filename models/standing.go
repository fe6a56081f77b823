package models

// Standing is derived from the match results and is never stored.
type Standing struct {
	PlayerID int    `json:"id"`
	Name     string `json:"name"`
	Wins     int    `json:"wins"`
	Matches  int    `json:"matches"`
}

// Pairing is one matchup for the next round.
type Pairing struct {
	Player1ID   int    `json:"id1"`
	Player1Name string `json:"name1"`
	Player2ID   int    `json:"id2"`
	Player2Name string `json:"name2"`
}
