package messaging

import (
	"github.com/KirkDiggler/linewidth/internal/models"
)

// Outcome is the result of comparing a guess to the target
type Outcome string

const (
	// OutcomeCorrect means the guess matched the target exactly
	OutcomeCorrect Outcome = "correct"

	// OutcomeTooThick means the guess was larger than the target
	OutcomeTooThick Outcome = "too_thick"

	// OutcomeTooThin means the guess was smaller than the target
	OutcomeTooThin Outcome = "too_thin"

	// OutcomeOutOfGuesses means the last guess was wrong
	OutcomeOutOfGuesses Outcome = "out_of_guesses"
)

// DefaultWayOffThreshold is the difference above which a hint says "Way too"
const DefaultWayOffThreshold = 10

// Config for the messaging service
type Config struct {
	// WayOffThreshold switches "A little too" to "Way too" when exceeded
	WayOffThreshold int
}

// GetFeedbackMessageInput contains parameters for building feedback
type GetFeedbackMessageInput struct {
	// Outcome of the guess
	Outcome Outcome

	// Diff is the absolute difference between guess and target
	Diff int

	// TargetThickness is revealed on success and when guesses run out
	TargetThickness int
}

// GetFeedbackMessageOutput contains the feedback to show
type GetFeedbackMessageOutput struct {
	Feedback models.Feedback
}

// GetStatusMessageInput contains parameters for the status line
type GetStatusMessageInput struct {
	Round *models.Round
	Stats *models.SessionStats
}

// GetStatusMessageOutput contains the status line
type GetStatusMessageOutput struct {
	Message string
}
