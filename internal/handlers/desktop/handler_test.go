package desktop

import (
	"context"
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/KirkDiggler/linewidth/internal/common/clock"
	"github.com/KirkDiggler/linewidth/internal/common/uuid"
	"github.com/KirkDiggler/linewidth/internal/dice"
	sessionRepo "github.com/KirkDiggler/linewidth/internal/repositories/session"
	"github.com/KirkDiggler/linewidth/internal/services/messaging"
	"github.com/KirkDiggler/linewidth/internal/services/round"
	"github.com/KirkDiggler/linewidth/internal/services/share"
	shareMocks "github.com/KirkDiggler/linewidth/internal/services/share/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockShareService *shareMocks.MockService
	app              fyne.App
	repo             sessionRepo.Repository
	handler          *Handler
	ctx              context.Context
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockShareService = shareMocks.NewMockService(s.mockCtrl)
	s.app = test.NewApp()
	s.repo = sessionRepo.NewMemory()
	s.ctx = context.Background()

	roundSvc, err := round.New(&round.Config{
		SessionRepo:      s.repo,
		MessagingService: messaging.New(nil),
		DiceRoller:       dice.New(&dice.Config{Seed: 42}),
		Clock:            clock.New(),
		UUIDGenerator:    uuid.New(),
	})
	s.Require().NoError(err)

	h, err := New(&Config{
		App:              s.app,
		RoundService:     roundSvc,
		MessagingService: messaging.New(nil),
		ShareService:     s.mockShareService,
		MinThickness:     round.DefaultMinThickness,
		MaxThickness:     round.DefaultMaxThickness,
		CanvasWidth:      200,
		CanvasHeight:     150,
		Logger:           zap.NewNop(),
	})
	s.Require().NoError(err)
	s.Require().NoError(h.Start(s.ctx))
	s.handler = h
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.app.Quit()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) draw() {
	b := s.handler.board
	b.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)},
		Button:     desktop.MouseButtonPrimary,
	})
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(40, 40)}})
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(60, 30)}})
	b.DragEnd()
}

// wrongGuess returns a slider value that misses the target
func (s *HandlerTestSuite) wrongGuess() float64 {
	if s.handler.session.Round.TargetThickness == round.DefaultMaxThickness {
		return round.DefaultMinThickness
	}
	return round.DefaultMaxThickness
}

func (s *HandlerTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{App: s.app})
	s.Error(err)

	_, err = New(&Config{
		App:              s.app,
		RoundService:     s.handler.roundService,
		MessagingService: messaging.New(nil),
		ShareService:     s.mockShareService,
		MinThickness:     10,
		MaxThickness:     5,
		CanvasWidth:      10,
		CanvasHeight:     10,
	})
	s.Error(err)
}

func (s *HandlerTestSuite) TestStart_ShowsFreshRound() {
	h := s.handler

	s.Equal(25.0, h.slider.Value)
	s.Equal("Guess: 25", h.guessLabel.Text)
	s.Empty(h.feedbackLabel.Text)
	s.Contains(h.statusLabel.Text, "Round 1")
	s.Contains(h.statusLabel.Text, "Wins: 0")
	s.True(h.checkButton.Disabled())
	s.False(h.clearButton.Disabled())
	s.False(h.slider.Disabled())
}

func (s *HandlerTestSuite) TestDrawing_RecordsOneStrokePerPress() {
	s.draw()
	s.draw()

	h := s.handler
	s.Len(h.session.Drawing.Strokes, 2)
	s.Len(h.session.Drawing.Strokes[0].Points, 3)
	s.True(h.session.Drawing.Strokes[0].IsFinished())
	s.Equal(10.0, h.session.Drawing.Strokes[0].Points[0].X)
	s.False(h.checkButton.Disabled())
}

func (s *HandlerTestSuite) TestDrawing_IgnoresSecondaryButtonAndStrayDrags() {
	b := s.handler.board
	b.MouseDown(&desktop.MouseEvent{Button: desktop.MouseButtonSecondary})
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(5, 5)}})
	b.DragEnd()

	s.True(s.handler.session.Drawing.IsEmpty())
	s.False(s.handler.session.Round.HasDrawn)
}

func (s *HandlerTestSuite) TestSlider_SetsGuess() {
	s.handler.slider.SetValue(12)

	s.Equal(12, s.handler.session.Round.GuessThickness)
	s.Equal("Guess: 12", s.handler.guessLabel.Text)
}

func (s *HandlerTestSuite) TestCheckGuess_MissesEndRound() {
	h := s.handler
	s.draw()
	h.slider.SetValue(s.wrongGuess())

	test.Tap(h.checkButton)
	s.Equal(2, h.session.Round.GuessesRemaining)
	s.NotEmpty(h.feedbackLabel.Text)

	test.Tap(h.checkButton)
	test.Tap(h.checkButton)

	s.True(h.session.Round.IsOver())
	s.Contains(h.feedbackLabel.Text, "Out of guesses!")
	s.True(h.checkButton.Disabled())
	s.True(h.clearButton.Disabled())
	s.True(h.slider.Disabled())
	s.False(h.nextButton.Disabled())
	s.False(h.saveButton.Disabled())
}

func (s *HandlerTestSuite) TestCheckGuess_Win() {
	h := s.handler
	s.draw()
	h.slider.SetValue(float64(h.session.Round.TargetThickness))

	test.Tap(h.checkButton)

	s.True(h.session.Round.IsOver())
	s.Contains(h.feedbackLabel.Text, "Correct!")
	s.Contains(h.statusLabel.Text, "Wins: 1")

	// Drawing is rejected once the round is over
	s.draw()
	s.Len(h.session.Drawing.Strokes, 1)
}

func (s *HandlerTestSuite) TestClear_DisablesCheckUntilRedrawn() {
	h := s.handler
	s.draw()

	test.Tap(h.clearButton)
	s.True(h.session.Drawing.IsEmpty())
	s.True(h.checkButton.Disabled())

	s.draw()
	s.False(h.checkButton.Disabled())
}

func (s *HandlerTestSuite) TestNextRound_ResetsRoundKeepsWins() {
	h := s.handler
	s.draw()
	h.slider.SetValue(float64(h.session.Round.TargetThickness))
	test.Tap(h.checkButton)

	test.Tap(h.nextButton)

	s.Equal(2, h.session.Round.Number)
	s.False(h.session.Round.IsOver())
	s.True(h.session.Drawing.IsEmpty())
	s.Empty(h.feedbackLabel.Text)
	s.Equal(25.0, h.slider.Value)
	s.False(h.slider.Disabled())
	s.Contains(h.statusLabel.Text, "Wins: 1")
}

func (s *HandlerTestSuite) TestSaveShare_ReportsDownload() {
	h := s.handler
	s.draw()
	before := h.session.Round

	done := make(chan *share.ExportResult, 1)
	done <- &share.ExportResult{Delivery: &share.DeliverOutput{Method: share.MethodDownload, Location: "/tmp/linewidth.jpg"}}
	close(done)

	s.mockShareService.EXPECT().
		ExportAsync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *share.ExportAsyncInput) <-chan *share.ExportResult {
			s.Equal(200, in.Width)
			s.Equal(150, in.Height)
			s.Len(in.Drawing.Strokes, 1)
			return done
		})

	test.Tap(h.saveButton)

	s.Eventually(func() bool {
		return h.exportLabel.Text == "Saved to /tmp/linewidth.jpg"
	}, 2*time.Second, 10*time.Millisecond)
	s.Equal(before, h.session.Round)
}

func (s *HandlerTestSuite) TestSaveShare_FailureIsSilent() {
	h := s.handler

	done := make(chan *share.ExportResult, 1)
	done <- &share.ExportResult{Err: errors.New("encode failed")}
	close(done)

	s.mockShareService.EXPECT().ExportAsync(gomock.Any(), gomock.Any()).Return((<-chan *share.ExportResult)(done))

	test.Tap(h.saveButton)

	s.Eventually(func() bool {
		return h.exportLabel.Text == ""
	}, 2*time.Second, 10*time.Millisecond)
	s.False(h.session.Round.IsOver())
}

func (s *HandlerTestSuite) TestSaveShare_OneExportAtATime() {
	h := s.handler
	s.draw()

	done := make(chan *share.ExportResult)
	s.mockShareService.EXPECT().
		ExportAsync(gomock.Any(), gomock.Any()).
		Return((<-chan *share.ExportResult)(done)).
		Times(1)

	test.Tap(h.saveButton)
	s.True(h.saveButton.Disabled())

	// A second tap while the first export is running does nothing
	test.Tap(h.saveButton)

	done <- &share.ExportResult{Delivery: &share.DeliverOutput{Method: share.MethodDownload, Location: "a.jpg"}}
	close(done)

	s.Eventually(func() bool {
		return !h.saveButton.Disabled()
	}, 2*time.Second, 10*time.Millisecond)
	s.Equal("Saved to a.jpg", h.exportLabel.Text)
}

func (s *HandlerTestSuite) TestSaveShare_PassesSurfaceScale() {
	h := s.handler
	s.draw()
	h.surface.SetScale(2)

	done := make(chan *share.ExportResult, 1)
	done <- &share.ExportResult{Err: errors.New("stop")}
	close(done)

	s.mockShareService.EXPECT().
		ExportAsync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *share.ExportAsyncInput) <-chan *share.ExportResult {
			s.Equal(2.0, in.Scale)
			s.Equal(float64(h.session.Round.TargetThickness), in.StrokeWidth)
			return done
		})

	test.Tap(h.saveButton)

	s.Eventually(func() bool {
		return !h.saveButton.Disabled()
	}, 2*time.Second, 10*time.Millisecond)
}

func (s *HandlerTestSuite) TestDrawing_PointsStayInWidgetUnits() {
	h := s.handler
	h.surface.SetScale(2)

	s.draw()

	points := h.session.Drawing.Strokes[0].Points
	s.Equal(10.0, points[0].X)
	s.Equal(10.0, points[0].Y)
	s.Equal(60.0, points[2].X)
	s.Equal(30.0, points[2].Y)
}

func (s *HandlerTestSuite) TestResizeSurface_KeepsDrawing() {
	h := s.handler
	s.draw()

	h.resizeSurface(400, 300)

	w, hgt := h.surface.Size()
	s.Equal(400, w)
	s.Equal(300, hgt)
	s.Len(h.session.Drawing.Strokes, 1)
}

func (s *HandlerTestSuite) TestResizeSurface_TracksPixelRatio() {
	h := s.handler
	s.draw()
	h.board.Resize(fyne.NewSize(100, 75))

	// Same pixel size, new ratio: the drawing is redrawn at 2x
	h.resizeSurface(200, 150)

	s.Equal(2.0, h.surface.Scale())
	s.Equal(10.0, h.session.Drawing.Strokes[0].Points[0].X)
}

func (s *HandlerTestSuite) TestStop_EndsSession() {
	id := s.handler.session.ID

	s.Require().NoError(s.handler.Stop(s.ctx))

	_, err := s.repo.GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: id})
	s.ErrorIs(err, sessionRepo.ErrSessionNotFound)
	s.NoError(s.handler.Stop(s.ctx))
}

func (s *HandlerTestSuite) TestExportStatus() {
	s.Empty(exportStatus(nil))
	s.Empty(exportStatus(&share.ExportResult{Err: errors.New("x")}))
	s.Empty(exportStatus(&share.ExportResult{Delivery: &share.DeliverOutput{Method: share.MethodShare, Canceled: true}}))
	s.Equal("Shared", exportStatus(&share.ExportResult{Delivery: &share.DeliverOutput{Method: share.MethodShare}}))
	s.Equal("Saved to a.jpg", exportStatus(&share.ExportResult{Delivery: &share.DeliverOutput{Method: share.MethodDownload, Location: "a.jpg"}}))
}
