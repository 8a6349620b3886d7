package session

import (
	"errors"

	"github.com/KirkDiggler/linewidth/internal/models"
)

// ErrSessionNotFound is returned when no session is stored under the ID
var ErrSessionNotFound = errors.New("session not found")

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type DeleteSessionInput struct {
	SessionID string
}
