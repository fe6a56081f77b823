package brackets

import (
	"testing"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourPlayers() []models.Player {
	return []models.Player{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
		{ID: 3, Name: "Carol"},
		{ID: 4, Name: "Dave"},
	}
}

// checkStandings asserts the invariants every standings list must satisfy.
func checkStandings(t *testing.T, players []models.Player, standings []models.Standing) {
	t.Helper()
	require.Len(t, standings, len(players))

	seen := map[int]bool{}
	for i, s := range standings {
		assert.False(t, seen[s.PlayerID], "player %d listed twice", s.PlayerID)
		seen[s.PlayerID] = true
		assert.LessOrEqual(t, s.Wins, s.Matches)
		if i > 0 {
			assert.GreaterOrEqual(t, standings[i-1].Wins, s.Wins, "standings not sorted by wins at %d", i)
		}
	}
	for _, p := range players {
		assert.True(t, seen[p.ID], "player %d missing", p.ID)
	}
}

func TestComputeStandings_Empty(t *testing.T) {
	standings := ComputeStandings(nil, nil)
	require.NotNil(t, standings)
	assert.Empty(t, standings)
}

func TestComputeStandings_NoMatches(t *testing.T) {
	players := fourPlayers()
	standings := ComputeStandings(players, nil)

	checkStandings(t, players, standings)
	for i, s := range standings {
		assert.Equal(t, 0, s.Wins)
		assert.Equal(t, 0, s.Matches)
		assert.Equal(t, players[i].ID, s.PlayerID, "zero-win ties fall back to id order")
	}
}

func TestComputeStandings_FirstRound(t *testing.T) {
	players := fourPlayers()
	matches := []models.Match{
		{ID: 1, WinnerID: 1, LoserID: 2},
		{ID: 2, WinnerID: 3, LoserID: 4},
	}

	standings := ComputeStandings(players, matches)
	checkStandings(t, players, standings)

	assert.Equal(t, []models.Standing{
		{PlayerID: 1, Name: "Alice", Wins: 1, Matches: 1},
		{PlayerID: 3, Name: "Carol", Wins: 1, Matches: 1},
		{PlayerID: 2, Name: "Bob", Wins: 0, Matches: 1},
		{PlayerID: 4, Name: "Dave", Wins: 0, Matches: 1},
	}, standings)
}

func TestComputeStandings_OneResultMovesOnlyTwoPlayers(t *testing.T) {
	players := fourPlayers()
	before := ComputeStandings(players, []models.Match{{WinnerID: 1, LoserID: 2}})
	after := ComputeStandings(players, []models.Match{{WinnerID: 1, LoserID: 2}, {WinnerID: 4, LoserID: 1}})

	byID := func(list []models.Standing) map[int]models.Standing {
		out := map[int]models.Standing{}
		for _, s := range list {
			out[s.PlayerID] = s
		}
		return out
	}
	b, a := byID(before), byID(after)

	assert.Equal(t, b[4].Wins+1, a[4].Wins)
	assert.Equal(t, b[4].Matches+1, a[4].Matches)
	assert.Equal(t, b[1].Wins, a[1].Wins)
	assert.Equal(t, b[1].Matches+1, a[1].Matches)
	assert.Equal(t, b[2], a[2])
	assert.Equal(t, b[3], a[3])
}

func TestComputeStandings_DeterministicTieBreak(t *testing.T) {
	// Input order must not leak into the ranking.
	players := []models.Player{
		{ID: 7, Name: "Gina"},
		{ID: 2, Name: "Bob"},
		{ID: 5, Name: "Eve"},
	}
	matches := []models.Match{{WinnerID: 7, LoserID: 5}, {WinnerID: 2, LoserID: 5}}

	first := ComputeStandings(players, matches)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeStandings(players, matches))
	}
	assert.Equal(t, []int{2, 7, 5}, []int{first[0].PlayerID, first[1].PlayerID, first[2].PlayerID})
}

func TestComputeStandings_IgnoresUnknownPlayers(t *testing.T) {
	players := fourPlayers()[:2]
	standings := ComputeStandings(players, []models.Match{{WinnerID: 1, LoserID: 99}})

	checkStandings(t, players, standings)
	assert.Equal(t, models.Standing{PlayerID: 1, Name: "Alice", Wins: 1, Matches: 1}, standings[0])
	assert.Equal(t, 0, standings[1].Matches)
}
