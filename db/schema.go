package db

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements are applied in order and must stay idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS players (
		id         SERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		id         SERIAL PRIMARY KEY,
		winner_id  INTEGER NOT NULL REFERENCES players (id),
		loser_id   INTEGER NOT NULL REFERENCES players (id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT matches_distinct_players CHECK (winner_id <> loser_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_winner_id ON matches (winner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_loser_id ON matches (loser_id)`,
}

// EnsureSchema creates the players and matches tables if they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer tx.Rollback()

	for i, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}
	return nil
}
