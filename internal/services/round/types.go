package round

import (
	"github.com/KirkDiggler/linewidth/internal/common/clock"
	"github.com/KirkDiggler/linewidth/internal/common/uuid"
	"github.com/KirkDiggler/linewidth/internal/dice"
	"github.com/KirkDiggler/linewidth/internal/models"
	sessionRepo "github.com/KirkDiggler/linewidth/internal/repositories/session"
	"github.com/KirkDiggler/linewidth/internal/services/messaging"
)

const (
	// DefaultMinThickness is the thinnest hidden line width
	DefaultMinThickness = 1

	// DefaultMaxThickness is the thickest hidden line width
	DefaultMaxThickness = 50

	// DefaultMaxGuesses is the number of attempts per round
	DefaultMaxGuesses = 3
)

// Config holds configuration for the round service
type Config struct {
	// Inclusive range the hidden thickness is drawn from
	MinThickness int
	MaxThickness int

	// Number of guesses per round
	MaxGuesses int

	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	MessagingService messaging.Service
	DiceRoller       dice.Roller
	Clock            clock.Clock
	UUIDGenerator    uuid.UUID
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	// SessionID is optional; one is generated when empty
	SessionID string
}

// StartSessionOutput contains the new session
type StartSessionOutput struct {
	Session *models.Session
}

// StartNewRoundInput contains parameters for starting a round
type StartNewRoundInput struct {
	SessionID string
}

// StartNewRoundOutput contains the session after the reset
type StartNewRoundOutput struct {
	Session *models.Session
}

// SetGuessInput contains parameters for recording a guess
type SetGuessInput struct {
	SessionID string

	// Thickness is the slider value
	Thickness int
}

// SetGuessOutput contains the session after the update
type SetGuessOutput struct {
	Session *models.Session
}

// CheckGuessInput contains parameters for checking the guess
type CheckGuessInput struct {
	SessionID string
}

// CheckGuessOutput contains the result of checking the guess
type CheckGuessOutput struct {
	Session *models.Session

	// Correct is true when the guess matched exactly
	Correct bool

	// RoundOver is true when this check ended the round
	RoundOver bool

	// Diff is the absolute difference between guess and target
	Diff int
}

// ClearDrawingInput contains parameters for clearing the drawing
type ClearDrawingInput struct {
	SessionID string
}

// ClearDrawingOutput contains the session after clearing
type ClearDrawingOutput struct {
	Session *models.Session
}

// BeginStrokeInput contains parameters for a pointer going down
type BeginStrokeInput struct {
	SessionID string

	// PointerID identifies the captured pointer
	PointerID int64

	// Point is the first sample
	Point models.Point
}

// BeginStrokeOutput contains the new stroke
type BeginStrokeOutput struct {
	Session *models.Session
	Stroke  *models.Stroke
}

// ExtendStrokeInput contains parameters for pointer movement
type ExtendStrokeInput struct {
	SessionID string
	PointerID int64
	Points    []models.Point
}

// ExtendStrokeOutput contains the extended stroke
type ExtendStrokeOutput struct {
	Session *models.Session
	Stroke  *models.Stroke
}

// EndStrokeInput contains parameters for a pointer going up
type EndStrokeInput struct {
	SessionID string
	PointerID int64
}

// EndStrokeOutput contains the finalised stroke
type EndStrokeOutput struct {
	Session *models.Session
	Stroke  *models.Stroke
}

// GetSessionInput contains parameters for reading a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the session
type GetSessionOutput struct {
	Session *models.Session
}

// EndSessionInput contains parameters for discarding a session
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput contains the final tally of the discarded session
type EndSessionOutput struct {
	Stats models.SessionStats
}
