package services

import "errors"

// Shared errors used across services and by the HTTP error mapping.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrValidationFailed     = errors.New("validation failed")
	ErrPlayerNameRequired   = errors.New("player name is required")
	ErrSamePlayer           = errors.New("winner and loser cannot be the same player")
	ErrInvalidPlayerID      = errors.New("player id must be positive")
	ErrMatchPlayerNotFound  = errors.New("match references an unknown player")
	ErrPlayersHaveMatches   = errors.New("players cannot be deleted while matches are recorded")
	ErrInvalidCredentials   = errors.New("invalid password")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")

	// The storage layer could not be reached or failed mid-call. Never retried.
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrExportDisabled     = errors.New("round export is not configured")
)
