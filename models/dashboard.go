package models

type DashboardStats struct {
	PlayersTotal int `json:"players_total"`
	MatchesTotal int `json:"matches_total"`
}
