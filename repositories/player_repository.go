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
	ErrPlayersHaveMatches = errors.New("players cannot be deleted while match results reference them")
)

type PlayerRepository interface {
	Create(ctx context.Context, exec SQLExecutor, player *models.Player) error
	GetAll(ctx context.Context, exec SQLExecutor) ([]models.Player, error)
	Count(ctx context.Context, exec SQLExecutor) (int, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, exec SQLExecutor, player *models.Player) error {
	query := `INSERT INTO players (name) VALUES ($1) RETURNING id, created_at`

	err := executorOr(exec, r.db).QueryRowContext(ctx, query, player.Name).Scan(&player.ID, &player.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

func (r *postgresPlayerRepository) GetAll(ctx context.Context, exec SQLExecutor) ([]models.Player, error) {
	query := `SELECT id, name, created_at FROM players ORDER BY id ASC`

	rows, err := executorOr(exec, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var p models.Player
		if scanErr := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan player: %w", scanErr)
		}
		players = append(players, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) Count(ctx context.Context, exec SQLExecutor) (int, error) {
	var count int
	err := executorOr(exec, r.db).QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}

func (r *postgresPlayerRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	_, err := executorOr(exec, r.db).ExecContext(ctx, `DELETE FROM players`)
	if err != nil {
		// foreign_key_violation: matches still point at these players
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrPlayersHaveMatches
		}
		return fmt.Errorf("failed to delete players: %w", err)
	}
	return nil
}
