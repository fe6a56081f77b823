package brackets

import (
	"sort"

	"github.com/Dosada05/swiss-tournament/models"
)

// ComputeStandings aggregates match results into one Standing per player.
// The result is ordered by wins descending, then by player id ascending, so
// equal records always come back in the same order.
func ComputeStandings(players []models.Player, matches []models.Match) []models.Standing {
	standings := make([]models.Standing, 0, len(players))
	index := make(map[int]int, len(players))
	for _, p := range players {
		index[p.ID] = len(standings)
		standings = append(standings, models.Standing{PlayerID: p.ID, Name: p.Name})
	}

	for _, m := range matches {
		wi, okW := index[m.WinnerID]
		li, okL := index[m.LoserID]
		if okW {
			standings[wi].Wins++
			standings[wi].Matches++
		}
		if okL {
			standings[li].Matches++
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].PlayerID < standings[j].PlayerID
	})
	return standings
}
