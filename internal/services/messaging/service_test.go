package messaging

import (
	"context"
	"testing"

	"github.com/KirkDiggler/linewidth/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeedbackMessage(t *testing.T) {
	svc := New(nil)

	tests := []struct {
		name    string
		input   *GetFeedbackMessageInput
		message string
		kind    models.FeedbackKind
	}{
		{
			name:    "correct reveals target",
			input:   &GetFeedbackMessageInput{Outcome: OutcomeCorrect, TargetThickness: 10},
			message: "Correct! The thickness was 10.",
			kind:    models.FeedbackSuccess,
		},
		{
			name:    "way too thick",
			input:   &GetFeedbackMessageInput{Outcome: OutcomeTooThick, Diff: 20, TargetThickness: 10},
			message: "Way too thick.",
			kind:    models.FeedbackHint,
		},
		{
			name:    "a little too thick",
			input:   &GetFeedbackMessageInput{Outcome: OutcomeTooThick, Diff: 2, TargetThickness: 10},
			message: "A little too thick.",
			kind:    models.FeedbackHint,
		},
		{
			name:    "threshold itself is a little",
			input:   &GetFeedbackMessageInput{Outcome: OutcomeTooThin, Diff: 10, TargetThickness: 30},
			message: "A little too thin.",
			kind:    models.FeedbackHint,
		},
		{
			name:    "way too thin",
			input:   &GetFeedbackMessageInput{Outcome: OutcomeTooThin, Diff: 11, TargetThickness: 30},
			message: "Way too thin.",
			kind:    models.FeedbackHint,
		},
		{
			name:    "out of guesses reveals target",
			input:   &GetFeedbackMessageInput{Outcome: OutcomeOutOfGuesses, Diff: 4, TargetThickness: 33},
			message: "Out of guesses! The thickness was 33.",
			kind:    models.FeedbackHint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.GetFeedbackMessage(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.message, out.Feedback.Message)
			assert.Equal(t, tt.kind, out.Feedback.Kind)
		})
	}
}

func TestGetFeedbackMessage_CustomThreshold(t *testing.T) {
	svc := New(&Config{WayOffThreshold: 3})

	out, err := svc.GetFeedbackMessage(context.Background(), &GetFeedbackMessageInput{Outcome: OutcomeTooThick, Diff: 4})
	require.NoError(t, err)
	assert.Equal(t, "Way too thick.", out.Feedback.Message)
}

func TestGetFeedbackMessage_Errors(t *testing.T) {
	svc := New(nil)

	_, err := svc.GetFeedbackMessage(context.Background(), nil)
	assert.Error(t, err)

	_, err = svc.GetFeedbackMessage(context.Background(), &GetFeedbackMessageInput{Outcome: "nope"})
	assert.ErrorIs(t, err, ErrUnknownOutcome)
}

func TestGetStatusMessage(t *testing.T) {
	svc := New(nil)

	out, err := svc.GetStatusMessage(context.Background(), &GetStatusMessageInput{
		Round: &models.Round{Number: 2, GuessesRemaining: 3},
		Stats: &models.SessionStats{WinCount: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "Round 2 · Guesses left: 3 · Wins: 1", out.Message)

	out, err = svc.GetStatusMessage(context.Background(), &GetStatusMessageInput{
		Round: &models.Round{Number: 4, GuessesRemaining: 1},
		Stats: &models.SessionStats{WinCount: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, "Round 4 · Last guess · Wins: 0", out.Message)

	_, err = svc.GetStatusMessage(context.Background(), &GetStatusMessageInput{})
	assert.Error(t, err)
}
