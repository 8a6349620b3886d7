package models

import (
	"time"
)

// RoundStatus represents where a round is in its lifecycle
type RoundStatus string

const (
	// RoundStatusReady indicates a freshly initialised round
	RoundStatusReady RoundStatus = "ready"

	// RoundStatusInProgress indicates the player has started drawing or guessing
	RoundStatusInProgress RoundStatus = "in_progress"

	// RoundStatusOver indicates the round was won or ran out of guesses
	RoundStatusOver RoundStatus = "round_over"
)

// FeedbackKind classifies the feedback shown after a guess
type FeedbackKind string

const (
	FeedbackNone    FeedbackKind = "none"
	FeedbackHint    FeedbackKind = "hint"
	FeedbackSuccess FeedbackKind = "success"
)

// Feedback is the message shown under the canvas
type Feedback struct {
	Message string       `json:"message"`
	Kind    FeedbackKind `json:"kind"`
}

// Round is the guess cycle from reset to success or exhaustion
type Round struct {
	// Number counts rounds within the session, starting at 1
	Number int `json:"number"`

	// Status is the current state of the round
	Status RoundStatus `json:"status"`

	// TargetThickness is the hidden line width
	TargetThickness int `json:"target_thickness"`

	// GuessThickness is the slider value
	GuessThickness int `json:"guess_thickness"`

	// GuessesRemaining only decreases within a round
	GuessesRemaining int `json:"guesses_remaining"`

	// Feedback from the last checked guess
	Feedback Feedback `json:"feedback"`

	// HasDrawn is set once a point is recorded and reset by clear
	HasDrawn bool `json:"has_drawn"`

	// StartedAt is when the round was initialised
	StartedAt time.Time `json:"started_at"`
}

// IsOver reports whether the round accepts no more input
func (r *Round) IsOver() bool {
	return r.Status == RoundStatusOver
}

// IsReady reports whether the round is untouched
func (r *Round) IsReady() bool {
	return r.Status == RoundStatusReady
}
