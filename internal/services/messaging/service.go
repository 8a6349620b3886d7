package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/linewidth/internal/models"
)

// ErrUnknownOutcome is returned for an outcome the service has no text for
var ErrUnknownOutcome = errors.New("unknown outcome")

type service struct {
	wayOffThreshold int
}

// New creates a messaging service
func New(cfg *Config) Service {
	threshold := DefaultWayOffThreshold
	if cfg != nil && cfg.WayOffThreshold > 0 {
		threshold = cfg.WayOffThreshold
	}

	return &service{
		wayOffThreshold: threshold,
	}
}

// GetFeedbackMessage returns the feedback for a checked guess
func (s *service) GetFeedbackMessage(ctx context.Context, input *GetFeedbackMessageInput) (*GetFeedbackMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var fb models.Feedback
	switch input.Outcome {
	case OutcomeCorrect:
		fb = models.Feedback{
			Message: fmt.Sprintf("Correct! The thickness was %d.", input.TargetThickness),
			Kind:    models.FeedbackSuccess,
		}
	case OutcomeOutOfGuesses:
		fb = models.Feedback{
			Message: fmt.Sprintf("Out of guesses! The thickness was %d.", input.TargetThickness),
			Kind:    models.FeedbackHint,
		}
	case OutcomeTooThick, OutcomeTooThin:
		direction := "thick"
		if input.Outcome == OutcomeTooThin {
			direction = "thin"
		}
		tier := "A little too"
		if input.Diff > s.wayOffThreshold {
			tier = "Way too"
		}
		fb = models.Feedback{
			Message: fmt.Sprintf("%s %s.", tier, direction),
			Kind:    models.FeedbackHint,
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutcome, input.Outcome)
	}

	return &GetFeedbackMessageOutput{Feedback: fb}, nil
}

// GetStatusMessage returns e.g. "Round 2 · Guesses left: 3 · Wins: 1"
func (s *service) GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error) {
	if input == nil || input.Round == nil || input.Stats == nil {
		return nil, errors.New("round and stats cannot be nil")
	}

	guesses := fmt.Sprintf("Guesses left: %d", input.Round.GuessesRemaining)
	if input.Round.GuessesRemaining == 1 {
		guesses = "Last guess"
	}

	return &GetStatusMessageOutput{
		Message: fmt.Sprintf("Round %d · %s · Wins: %d", input.Round.Number, guesses, input.Stats.WinCount),
	}, nil
}
