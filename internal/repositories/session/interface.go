package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/linewidth/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/linewidth/internal/models"
)

// Repository holds the in-session game state
type Repository interface {
	// SaveSession stores the session, replacing any previous version
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
