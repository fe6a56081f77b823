package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
)

type StandingsService interface {
	PlayerStandings(ctx context.Context) ([]models.Standing, error)
	SwissPairings(ctx context.Context) (*brackets.Round, error)
	CurrentRound(ctx context.Context) (*RoundSnapshot, error)
}

// RoundSnapshot holds standings and the pairings derived from exactly those standings.
type RoundSnapshot struct {
	Standings []models.Standing `json:"standings"`
	Round     *brackets.Round   `json:"round"`
}

type standingsService struct {
	tx         repositories.Transactor
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
	generator  brackets.PairingGenerator
	logger     *slog.Logger
}

func NewStandingsService(
	tx repositories.Transactor,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	generator brackets.PairingGenerator,
	logger *slog.Logger,
) StandingsService {
	return &standingsService{
		tx:         tx,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		generator:  generator,
		logger:     logger,
	}
}

func (s *standingsService) PlayerStandings(ctx context.Context) ([]models.Standing, error) {
	var (
		players []models.Player
		matches []models.Match
	)
	err := s.tx.WithinSnapshot(ctx, func(exec repositories.SQLExecutor) error {
		var err error
		if players, err = s.playerRepo.GetAll(ctx, exec); err != nil {
			return err
		}
		matches, err = s.matchRepo.GetAll(ctx, exec)
		return err
	})
	if err != nil {
		return nil, storageError("load standings snapshot", err)
	}

	return brackets.ComputeStandings(players, matches), nil
}

func (s *standingsService) SwissPairings(ctx context.Context) (*brackets.Round, error) {
	snapshot, err := s.CurrentRound(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Round, nil
}

func (s *standingsService) CurrentRound(ctx context.Context) (*RoundSnapshot, error) {
	standings, err := s.PlayerStandings(ctx)
	if err != nil {
		return nil, err
	}

	round, err := s.generator.GeneratePairings(ctx, standings)
	if err != nil {
		return nil, fmt.Errorf("%s pairing failed: %w", s.generator.GetName(), err)
	}
	if round.Unpaired != nil {
		s.logger.Warn("odd number of players, last-ranked player left unpaired",
			slog.Int("player_id", round.Unpaired.PlayerID),
			slog.Int("players", len(standings)))
	}

	return &RoundSnapshot{Standings: standings, Round: round}, nil
}
