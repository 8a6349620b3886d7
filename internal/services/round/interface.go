package round

import "context"

// Service drives a guessing session. Every method loads the session,
// applies one transition and stores it again before returning.
type Service interface {
	// StartSession creates a session and its first round
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// StartNewRound resets the drawing and picks a new hidden thickness
	StartNewRound(ctx context.Context, input *StartNewRoundInput) (*StartNewRoundOutput, error)

	// SetGuess records the slider value
	SetGuess(ctx context.Context, input *SetGuessInput) (*SetGuessOutput, error)

	// CheckGuess compares the guess with the hidden thickness
	CheckGuess(ctx context.Context, input *CheckGuessInput) (*CheckGuessOutput, error)

	// ClearDrawing empties the drawing of the current round
	ClearDrawing(ctx context.Context, input *ClearDrawingInput) (*ClearDrawingOutput, error)

	// BeginStroke starts a stroke for a pointer that went down
	BeginStroke(ctx context.Context, input *BeginStrokeInput) (*BeginStrokeOutput, error)

	// ExtendStroke appends samples to the pointer's stroke
	ExtendStroke(ctx context.Context, input *ExtendStrokeInput) (*ExtendStrokeOutput, error)

	// EndStroke finalises the pointer's stroke
	EndStroke(ctx context.Context, input *EndStrokeInput) (*EndStrokeOutput, error)

	// GetSession returns the current session state
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// EndSession discards the session
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)
}
