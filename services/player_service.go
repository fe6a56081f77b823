package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
)

type PlayerService interface {
	RegisterPlayer(ctx context.Context, input RegisterPlayerInput) (*models.Player, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	CountPlayers(ctx context.Context) (int, error)
	DeletePlayers(ctx context.Context) error
}

type RegisterPlayerInput struct {
	Name string `json:"name"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	standings  StandingsService
	notifier   Notifier
	logger     *slog.Logger
}

func NewPlayerService(
	playerRepo repositories.PlayerRepository,
	standings StandingsService,
	notifier Notifier,
	logger *slog.Logger,
) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		standings:  standings,
		notifier:   notifier,
		logger:     logger,
	}
}

func (s *playerService) RegisterPlayer(ctx context.Context, input RegisterPlayerInput) (*models.Player, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validationError(ErrPlayerNameRequired)
	}

	player := &models.Player{Name: name}
	if err := s.playerRepo.Create(ctx, nil, player); err != nil {
		return nil, storageError("register player", err)
	}

	s.logger.Info("player registered", slog.Int("player_id", player.ID))
	broadcastStandings(ctx, s.standings, s.notifier, s.logger)
	return player, nil
}

func (s *playerService) ListPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, storageError("list players", err)
	}
	if players == nil {
		return []models.Player{}, nil
	}
	return players, nil
}

func (s *playerService) CountPlayers(ctx context.Context) (int, error) {
	count, err := s.playerRepo.Count(ctx, nil)
	if err != nil {
		return 0, storageError("count players", err)
	}
	return count, nil
}

func (s *playerService) DeletePlayers(ctx context.Context) error {
	if err := s.playerRepo.DeleteAll(ctx, nil); err != nil {
		if errors.Is(err, repositories.ErrPlayersHaveMatches) {
			return ErrPlayersHaveMatches
		}
		return storageError("delete players", err)
	}

	s.logger.Info("all players deleted")
	broadcastStandings(ctx, s.standings, s.notifier, s.logger)
	return nil
}
