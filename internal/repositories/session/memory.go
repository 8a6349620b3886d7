package session

import (
	"context"
	"errors"

	"github.com/KirkDiggler/linewidth/internal/models"
)

// memoryRepository keeps sessions in a map. It stores the caller's pointer
// as is: the round service is the single owner, so no copies are made and
// no locking is done. It is not safe for concurrent use.
type memoryRepository struct {
	sessions map[string]*models.Session
}

// NewMemory creates an in-process session repository
func NewMemory() Repository {
	return &memoryRepository{
		sessions: make(map[string]*models.Session),
	}
}

// SaveSession stores the session under its ID
func (r *memoryRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	r.sessions[input.Session.ID] = input.Session
	return nil
}

// GetSession returns the stored session
func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	s, ok := r.sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// DeleteSession forgets the session. Deleting an unknown ID is not an error.
func (r *memoryRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	delete(r.sessions, input.SessionID)
	return nil
}
