package round

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/linewidth/internal/common/clock"
	"github.com/KirkDiggler/linewidth/internal/common/uuid"
	"github.com/KirkDiggler/linewidth/internal/dice"
	"github.com/KirkDiggler/linewidth/internal/models"
	sessionRepo "github.com/KirkDiggler/linewidth/internal/repositories/session"
	"github.com/KirkDiggler/linewidth/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	minThickness     int
	maxThickness     int
	maxGuesses       int
	sessionRepo      sessionRepo.Repository
	messagingService messaging.Service
	diceRoller       dice.Roller
	clock            clock.Clock
	uuidGenerator    uuid.UUID
}

// New creates a new round service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	minThickness, maxThickness := cfg.MinThickness, cfg.MaxThickness
	if minThickness == 0 && maxThickness == 0 {
		minThickness, maxThickness = DefaultMinThickness, DefaultMaxThickness
	}
	if minThickness < 1 || minThickness > maxThickness {
		return nil, ErrInvalidRange
	}

	maxGuesses := cfg.MaxGuesses
	if maxGuesses == 0 {
		maxGuesses = DefaultMaxGuesses
	}
	if maxGuesses < 0 {
		return nil, ErrInvalidMaxGuesses
	}

	return &service{
		minThickness:     minThickness,
		maxThickness:     maxThickness,
		maxGuesses:       maxGuesses,
		sessionRepo:      cfg.SessionRepo,
		messagingService: cfg.MessagingService,
		diceRoller:       cfg.DiceRoller,
		clock:            cfg.Clock,
		uuidGenerator:    cfg.UUIDGenerator,
	}, nil
}

// StartSession creates a session with a zero tally and its first round
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	id := input.SessionID
	if id == "" {
		id = s.uuidGenerator.NewUUID()
	}

	sess := &models.Session{
		ID:        id,
		CreatedAt: s.clock.Now(),
	}
	s.resetRound(sess)

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	return &StartSessionOutput{
		Session: sess,
	}, nil
}

// StartNewRound resets the drawing, the counters and the feedback, then
// draws a new hidden thickness. The tally is kept.
func (s *service) StartNewRound(ctx context.Context, input *StartNewRoundInput) (*StartNewRoundOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	sess, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	s.resetRound(sess)

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	return &StartNewRoundOutput{
		Session: sess,
	}, nil
}

// SetGuess records the slider value while the round is open
func (s *service) SetGuess(ctx context.Context, input *SetGuessInput) (*SetGuessOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	sess, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Round.IsOver() {
		return nil, ErrRoundOver
	}

	if input.Thickness < s.minThickness || input.Thickness > s.maxThickness {
		return nil, ErrGuessOutOfRange
	}

	sess.Round.GuessThickness = input.Thickness
	if sess.Round.IsReady() {
		sess.Round.Status = models.RoundStatusInProgress
	}

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	return &SetGuessOutput{
		Session: sess,
	}, nil
}

// CheckGuess compares the guess with the target. An exact match wins the
// round; a miss costs one guess and the last miss reveals the target.
func (s *service) CheckGuess(ctx context.Context, input *CheckGuessInput) (*CheckGuessOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	sess, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	rnd := &sess.Round
	if rnd.IsOver() {
		return nil, ErrRoundOver
	}

	if !rnd.HasDrawn {
		return nil, ErrNothingDrawn
	}

	diff := rnd.GuessThickness - rnd.TargetThickness
	if diff < 0 {
		diff = -diff
	}

	var outcome messaging.Outcome
	switch {
	case diff == 0:
		outcome = messaging.OutcomeCorrect
	case rnd.GuessesRemaining <= 1:
		outcome = messaging.OutcomeOutOfGuesses
	case rnd.GuessThickness > rnd.TargetThickness:
		outcome = messaging.OutcomeTooThick
	default:
		outcome = messaging.OutcomeTooThin
	}

	msg, err := s.messagingService.GetFeedbackMessage(ctx, &messaging.GetFeedbackMessageInput{
		Outcome:         outcome,
		Diff:            diff,
		TargetThickness: rnd.TargetThickness,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build feedback: %w", err)
	}

	if diff != 0 && rnd.GuessesRemaining > 0 {
		rnd.GuessesRemaining--
	}

	rnd.Feedback = msg.Feedback
	roundOver := outcome == messaging.OutcomeCorrect || outcome == messaging.OutcomeOutOfGuesses
	if roundOver {
		rnd.Status = models.RoundStatusOver
		sess.Stats.RoundsPlayed++
		// Strokes still held down are cut off where they are
		s.finishActiveStrokes(sess)
	} else {
		rnd.Status = models.RoundStatusInProgress
	}
	if outcome == messaging.OutcomeCorrect {
		sess.Stats.WinCount++
	}

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	return &CheckGuessOutput{
		Session:   sess,
		Correct:   diff == 0,
		RoundOver: roundOver,
		Diff:      diff,
	}, nil
}

// ClearDrawing empties the drawing. Rejected once the round is over so the
// judged drawing stays intact.
func (s *service) ClearDrawing(ctx context.Context, input *ClearDrawingInput) (*ClearDrawingOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	sess, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Round.IsOver() {
		return nil, ErrRoundOver
	}

	sess.ResetDrawing()

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	return &ClearDrawingOutput{
		Session: sess,
	}, nil
}

// BeginStroke appends a new stroke for the pointer. Existing strokes are
// kept; a pointer that was still captured has its old stroke finalised first.
func (s *service) BeginStroke(ctx context.Context, input *BeginStrokeInput) (*BeginStrokeOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	sess, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Round.IsOver() {
		return nil, ErrRoundOver
	}

	now := s.clock.Now()
	if prev, ok := sess.ActiveStroke(input.PointerID); ok {
		prev.EndedAt = now
	}

	stroke := &models.Stroke{
		ID:        s.uuidGenerator.NewUUID(),
		PointerID: input.PointerID,
		Points:    []models.Point{input.Point},
		StartedAt: now,
	}
	sess.Drawing.Strokes = append(sess.Drawing.Strokes, stroke)
	if sess.ActivePointers == nil {
		sess.ActivePointers = make(map[int64]int)
	}
	sess.ActivePointers[input.PointerID] = len(sess.Drawing.Strokes) - 1

	sess.Round.HasDrawn = true
	if sess.Round.IsReady() {
		sess.Round.Status = models.RoundStatusInProgress
	}

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	return &BeginStrokeOutput{
		Session: sess,
		Stroke:  stroke,
	}, nil
}

// ExtendStroke appends samples to the stroke captured by the pointer
func (s *service) ExtendStroke(ctx context.Context, input *ExtendStrokeInput) (*ExtendStrokeOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	sess, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Round.IsOver() {
		return nil, ErrRoundOver
	}

	stroke, ok := sess.ActiveStroke(input.PointerID)
	if !ok {
		return nil, ErrStrokeNotActive
	}

	if len(input.Points) > 0 {
		stroke.Points = append(stroke.Points, input.Points...)

		if err := s.save(ctx, sess); err != nil {
			return nil, err
		}
	}

	return &ExtendStrokeOutput{
		Session: sess,
		Stroke:  stroke,
	}, nil
}

// EndStroke finalises the pointer's stroke and releases the capture
func (s *service) EndStroke(ctx context.Context, input *EndStrokeInput) (*EndStrokeOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	sess, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	stroke, ok := sess.ActiveStroke(input.PointerID)
	if !ok {
		return nil, ErrStrokeNotActive
	}

	stroke.EndedAt = s.clock.Now()
	delete(sess.ActivePointers, input.PointerID)

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	return &EndStrokeOutput{
		Session: sess,
		Stroke:  stroke,
	}, nil
}

// GetSession returns the current session state
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	sess, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		Session: sess,
	}, nil
}

// EndSession discards the session and reports its tally
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	sess, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	err = s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}

	return &EndSessionOutput{
		Stats: sess.Stats,
	}, nil
}

// resetRound puts the session at the start of a fresh round
func (s *service) resetRound(sess *models.Session) {
	sess.ResetDrawing()
	sess.Round = models.Round{
		Number:           sess.Round.Number + 1,
		Status:           models.RoundStatusReady,
		TargetThickness:  s.diceRoller.Between(s.minThickness, s.maxThickness),
		GuessThickness:   (s.minThickness + s.maxThickness) / 2,
		GuessesRemaining: s.maxGuesses,
		Feedback:         models.Feedback{Kind: models.FeedbackNone},
		StartedAt:        s.clock.Now(),
	}
}

func (s *service) finishActiveStrokes(sess *models.Session) {
	if len(sess.ActivePointers) == 0 {
		return
	}
	now := s.clock.Now()
	for pointerID := range sess.ActivePointers {
		if stroke, ok := sess.ActiveStroke(pointerID); ok {
			stroke.EndedAt = now
		}
	}
	sess.ActivePointers = make(map[int64]int)
}

func (s *service) load(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, ErrInvalidInput
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return sess, nil
}

func (s *service) save(ctx context.Context, sess *models.Session) error {
	err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
