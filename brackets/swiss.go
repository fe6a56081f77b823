package brackets

import (
	"context"

	"github.com/Dosada05/swiss-tournament/models"
)

type SwissGenerator struct{}

func NewSwissGenerator() PairingGenerator {
	return &SwissGenerator{}
}

func (g *SwissGenerator) GetName() string {
	return "Swiss"
}

// GeneratePairings pairs neighbours in the standings: (0,1), (2,3), ...
// It does not avoid rematches. With an odd field the last player is left
// out and returned as Round.Unpaired.
func (g *SwissGenerator) GeneratePairings(ctx context.Context, standings []models.Standing) (*Round, error) {
	round := &Round{Pairings: make([]models.Pairing, 0, len(standings)/2)}

	for i := 0; i+1 < len(standings); i += 2 {
		p1, p2 := standings[i], standings[i+1]
		round.Pairings = append(round.Pairings, models.Pairing{
			Player1ID:   p1.PlayerID,
			Player1Name: p1.Name,
			Player2ID:   p2.PlayerID,
			Player2Name: p2.Name,
		})
	}

	if len(standings)%2 == 1 {
		last := standings[len(standings)-1]
		round.Unpaired = &last
	}
	return round, nil
}
