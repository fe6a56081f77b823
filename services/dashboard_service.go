package services

import (
	"context"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
)

type DashboardService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	tx         repositories.Transactor
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
}

func NewDashboardService(
	tx repositories.Transactor,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
) DashboardService {
	return &dashboardService{
		tx:         tx,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	err := s.tx.WithinSnapshot(ctx, func(exec repositories.SQLExecutor) error {
		var err error
		if stats.PlayersTotal, err = s.playerRepo.Count(ctx, exec); err != nil {
			return err
		}
		stats.MatchesTotal, err = s.matchRepo.Count(ctx, exec)
		return err
	})
	if err != nil {
		return models.DashboardStats{}, storageError("load dashboard stats", err)
	}
	return stats, nil
}
