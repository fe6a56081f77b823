package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
)

type MatchService interface {
	ReportMatch(ctx context.Context, input ReportMatchInput) (*models.Match, error)
	ListMatches(ctx context.Context) ([]models.Match, error)
	DeleteMatches(ctx context.Context) error
}

type ReportMatchInput struct {
	WinnerID int `json:"winner_id"`
	LoserID  int `json:"loser_id"`
}

type matchService struct {
	matchRepo repositories.MatchRepository
	standings StandingsService
	notifier  Notifier
	logger    *slog.Logger
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	standings StandingsService,
	notifier Notifier,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		standings: standings,
		notifier:  notifier,
		logger:    logger,
	}
}

// ReportMatch records one result. Input is validated before anything is written.
func (s *matchService) ReportMatch(ctx context.Context, input ReportMatchInput) (*models.Match, error) {
	if input.WinnerID <= 0 || input.LoserID <= 0 {
		return nil, validationError(ErrInvalidPlayerID)
	}
	if input.WinnerID == input.LoserID {
		return nil, validationError(ErrSamePlayer)
	}

	match := &models.Match{WinnerID: input.WinnerID, LoserID: input.LoserID}
	if err := s.matchRepo.Create(ctx, nil, match); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMatchPlayerNotFound):
			return nil, ErrMatchPlayerNotFound
		case errors.Is(err, repositories.ErrMatchSamePlayer):
			return nil, validationError(ErrSamePlayer)
		default:
			return nil, storageError("report match", err)
		}
	}

	s.logger.Info("match reported",
		slog.Int("match_id", match.ID),
		slog.Int("winner_id", match.WinnerID),
		slog.Int("loser_id", match.LoserID))
	broadcastStandings(ctx, s.standings, s.notifier, s.logger)
	return match, nil
}

func (s *matchService) ListMatches(ctx context.Context) ([]models.Match, error) {
	matches, err := s.matchRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, storageError("list matches", err)
	}
	if matches == nil {
		return []models.Match{}, nil
	}
	return matches, nil
}

func (s *matchService) DeleteMatches(ctx context.Context) error {
	if err := s.matchRepo.DeleteAll(ctx, nil); err != nil {
		return storageError("delete matches", err)
	}

	s.logger.Info("all matches deleted")
	broadcastStandings(ctx, s.standings, s.notifier, s.logger)
	return nil
}
