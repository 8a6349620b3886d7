package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/linewidth/internal/common/uuid UUID

// UUID hands out session IDs, which double as Redis key suffixes, and
// stroke IDs, which only need to be unique within one drawing.
type UUID interface {
	NewUUID() string
}

// DefaultUUID issues random version 4 UUIDs in canonical string form
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a fresh ID
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}
