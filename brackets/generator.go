package brackets

import (
	"context"

	"github.com/Dosada05/swiss-tournament/models"
)

// Round is the outcome of pairing one set of standings.
type Round struct {
	Pairings []models.Pairing `json:"pairings"`
	// Unpaired is the last-ranked player when the field is odd. No bye is recorded.
	Unpaired *models.Standing `json:"unpaired,omitempty"`
}

type PairingGenerator interface {
	GeneratePairings(ctx context.Context, standings []models.Standing) (*Round, error)

	GetName() string
}
