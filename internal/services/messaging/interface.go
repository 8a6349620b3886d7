package messaging

import "context"

// Service turns round outcomes into player-facing text
type Service interface {
	// GetFeedbackMessage returns the feedback shown after a guess is checked
	GetFeedbackMessage(ctx context.Context, input *GetFeedbackMessageInput) (*GetFeedbackMessageOutput, error)

	// GetStatusMessage returns the guesses/wins status line
	GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error)
}
