package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/swiss-tournament/brackets"
)

// Notifier receives typed updates for live clients.
type Notifier interface {
	Publish(messageType string, payload interface{})
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
}

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidationFailed, err)
}

// broadcastStandings pushes fresh standings to live clients. Failures are
// logged and never reach the writer that triggered them.
func broadcastStandings(ctx context.Context, standings StandingsService, notifier Notifier, logger *slog.Logger) {
	if notifier == nil || standings == nil {
		return
	}
	current, err := standings.PlayerStandings(ctx)
	if err != nil {
		logger.Warn("failed to load standings for broadcast", slog.Any("error", err))
		return
	}
	notifier.Publish(brackets.MessageStandingsUpdated, current)
}
