package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/lib/pq"
)

var (
	ErrMatchPlayerNotFound = errors.New("match references a player that does not exist")
	ErrMatchSamePlayer     = errors.New("match winner and loser must differ")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetAll(ctx context.Context, exec SQLExecutor) ([]models.Match, error)
	Count(ctx context.Context, exec SQLExecutor) (int, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	query := `
		INSERT INTO matches (winner_id, loser_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := executorOr(exec, r.db).QueryRowContext(ctx, query, match.WinnerID, match.LoserID).
		Scan(&match.ID, &match.CreatedAt)
	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) GetAll(ctx context.Context, exec SQLExecutor) ([]models.Match, error) {
	query := `SELECT id, winner_id, loser_id, created_at FROM matches ORDER BY id ASC`

	rows, err := executorOr(exec, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		if scanErr := rows.Scan(&m.ID, &m.WinnerID, &m.LoserID, &m.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan match: %w", scanErr)
		}
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) Count(ctx context.Context, exec SQLExecutor) (int, error) {
	var count int
	err := executorOr(exec, r.db).QueryRowContext(ctx, `SELECT COUNT(*) FROM matches`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

func (r *postgresMatchRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	if _, err := executorOr(exec, r.db).ExecContext(ctx, `DELETE FROM matches`); err != nil {
		return fmt.Errorf("failed to delete matches: %w", err)
	}
	return nil
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23503": // foreign_key_violation
			return ErrMatchPlayerNotFound
		case "23514": // check_violation
			if pqErr.Constraint == "matches_distinct_players" {
				return ErrMatchSamePlayer
			}
		}
	}
	return fmt.Errorf("failed to insert match: %w", err)
}
