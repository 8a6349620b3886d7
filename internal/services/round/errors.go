package round

// RoundError is a custom error type for round-related errors
type RoundError string

// Error implements the error interface
func (e RoundError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound     RoundError = "session not found"
	ErrRoundOver           RoundError = "round is over"
	ErrNothingDrawn        RoundError = "nothing drawn this round"
	ErrGuessOutOfRange     RoundError = "guess is outside the thickness range"
	ErrStrokeNotActive     RoundError = "no active stroke for pointer"
	ErrInvalidInput        RoundError = "invalid input"
	ErrInvalidRange        RoundError = "min thickness must not exceed max thickness"
	ErrInvalidMaxGuesses   RoundError = "max guesses must be positive"
	ErrNilConfig           RoundError = "config cannot be nil"
	ErrNilSessionRepo      RoundError = "session repository cannot be nil"
	ErrNilMessagingService RoundError = "messaging service cannot be nil"
	ErrNilDiceRoller       RoundError = "dice roller cannot be nil"
	ErrNilClock            RoundError = "clock cannot be nil"
	ErrNilUUIDGenerator    RoundError = "UUID generator cannot be nil"
)
