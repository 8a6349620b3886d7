package desktop

import (
	"context"
	"errors"
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/KirkDiggler/linewidth/internal/models"
	"github.com/KirkDiggler/linewidth/internal/obslog"
	"github.com/KirkDiggler/linewidth/internal/services/messaging"
	"github.com/KirkDiggler/linewidth/internal/services/render"
	"github.com/KirkDiggler/linewidth/internal/services/round"
	"github.com/KirkDiggler/linewidth/internal/services/share"
	"go.uber.org/zap"
)

const (
	ButtonCheckGuess = "Check Guess"
	ButtonClear      = "Clear"
	ButtonNextRound  = "Next Round"
	ButtonSaveShare  = "Save / Share"

	windowTitle = "Line Width"
)

// Config holds the configuration for the desktop handler
type Config struct {
	App fyne.App

	RoundService     round.Service
	MessagingService messaging.Service
	ShareService     share.Service

	// Slider bounds, matching the round service range
	MinThickness int
	MaxThickness int

	// Initial drawing surface size
	CanvasWidth  int
	CanvasHeight int

	Logger *zap.Logger
}

// Handler owns the window and the single game session. Every method runs on
// the fyne UI goroutine.
type Handler struct {
	app              fyne.App
	window           fyne.Window
	roundService     round.Service
	messagingService messaging.Service
	shareService     share.Service
	logger           *zap.Logger
	config           *Config

	ctx     context.Context
	session *models.Session
	surface *render.Surface

	board         *boardWidget
	raster        *canvas.Raster
	slider        *widget.Slider
	guessLabel    *widget.Label
	feedbackLabel *widget.Label
	statusLabel   *widget.Label
	exportLabel   *widget.Label
	checkButton   *widget.Button
	clearButton   *widget.Button
	nextButton    *widget.Button
	saveButton    *widget.Button

	// syncing suppresses slider callbacks while refresh sets the value
	syncing bool
}

// New creates a new desktop handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.App == nil {
		return nil, errors.New("app cannot be nil")
	}

	if cfg.RoundService == nil {
		return nil, errors.New("round service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.ShareService == nil {
		return nil, errors.New("share service cannot be nil")
	}

	if cfg.MinThickness < 1 || cfg.MaxThickness < cfg.MinThickness {
		return nil, fmt.Errorf("invalid thickness range %d..%d", cfg.MinThickness, cfg.MaxThickness)
	}

	if cfg.CanvasWidth <= 0 || cfg.CanvasHeight <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", cfg.CanvasWidth, cfg.CanvasHeight)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = obslog.L()
	}

	surface, err := render.NewSurface(cfg.CanvasWidth, cfg.CanvasHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to create surface: %w", err)
	}

	h := &Handler{
		app:              cfg.App,
		roundService:     cfg.RoundService,
		messagingService: cfg.MessagingService,
		shareService:     cfg.ShareService,
		logger:           logger.Named("desktop"),
		config:           cfg,
		ctx:              context.Background(),
		surface:          surface,
	}
	h.buildWidgets()

	return h, nil
}

// Start opens a session and builds the window
func (h *Handler) Start(ctx context.Context) error {
	h.ctx = ctx

	out, err := h.roundService.StartSession(ctx, &round.StartSessionInput{})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	h.session = out.Session

	h.window = h.app.NewWindow(windowTitle)
	h.window.SetContent(h.layout())
	h.window.Resize(fyne.NewSize(float32(h.config.CanvasWidth), float32(h.config.CanvasHeight)+160))

	h.logger.Info("session started",
		zap.String("session_id", h.session.ID),
		zap.Int("round", h.session.Round.Number))

	h.refresh()
	return nil
}

// Run shows the window and blocks until it is closed
func (h *Handler) Run() {
	h.window.ShowAndRun()
}

// Stop discards the session state and releases the surface
func (h *Handler) Stop(ctx context.Context) error {
	if h.session == nil {
		return nil
	}

	out, err := h.roundService.EndSession(ctx, &round.EndSessionInput{
		SessionID: h.session.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	h.logger.Info("session ended",
		zap.String("session_id", h.session.ID),
		zap.Int("wins", out.Stats.WinCount),
		zap.Int("rounds_played", out.Stats.RoundsPlayed))

	h.session = nil
	return h.surface.Close()
}

func (h *Handler) buildWidgets() {
	h.raster = canvas.NewRaster(h.generate)
	h.raster.SetMinSize(fyne.NewSize(float32(h.config.CanvasWidth), float32(h.config.CanvasHeight)))

	h.board = newBoardWidget(h.raster)
	h.board.OnPointerDown = h.pointerDown
	h.board.OnPointerMove = h.pointerMove
	h.board.OnPointerUp = h.pointerUp

	h.slider = widget.NewSlider(float64(h.config.MinThickness), float64(h.config.MaxThickness))
	h.slider.Step = 1
	h.slider.OnChanged = h.guessChanged

	h.guessLabel = widget.NewLabel("")
	h.feedbackLabel = widget.NewLabel("")
	h.feedbackLabel.Wrapping = fyne.TextWrapWord
	h.statusLabel = widget.NewLabel("")
	h.exportLabel = widget.NewLabel("")

	h.checkButton = widget.NewButton(ButtonCheckGuess, h.checkGuess)
	h.clearButton = widget.NewButton(ButtonClear, h.clearDrawing)
	h.nextButton = widget.NewButton(ButtonNextRound, h.nextRound)
	h.saveButton = widget.NewButton(ButtonSaveShare, h.saveShare)
}

func (h *Handler) layout() fyne.CanvasObject {
	controls := container.NewVBox(
		container.NewBorder(nil, nil, h.guessLabel, nil, h.slider),
		container.NewGridWithColumns(4, h.checkButton, h.clearButton, h.nextButton, h.saveButton),
		h.feedbackLabel,
		container.NewHBox(h.statusLabel, h.exportLabel),
	)
	return container.NewBorder(nil, controls, nil, nil, h.board)
}

// generate is the raster callback. It receives the pixel size the raster
// is displayed at, resizes the surface to it and returns the pixels.
func (h *Handler) generate(w, hgt int) image.Image {
	h.resizeSurface(w, hgt)
	return h.surface.Image()
}

func (h *Handler) resizeSurface(w, hgt int) {
	if w <= 0 || hgt <= 0 {
		return
	}

	// Points stay in widget units; only the pixel ratio moves when the
	// window changes size or display.
	oldScale := h.surface.Scale()
	if size := h.board.Size(); size.Width > 0 {
		h.surface.SetScale(float64(w) / float64(size.Width))
	}

	var drawing *models.Drawing
	width := 0.0
	if h.session != nil {
		drawing = &h.session.Drawing
		width = h.strokeWidth()
	}

	oldW, oldH := h.surface.Size()
	if err := h.surface.Resize(w, hgt, drawing, width); err != nil {
		h.logger.Warn("surface resize failed", zap.Int("width", w), zap.Int("height", hgt), zap.Error(err))
		return
	}
	if oldW == w && oldH == hgt && oldScale != h.surface.Scale() {
		if err := h.surface.Redraw(drawing, width); err != nil {
			h.logger.Warn("redraw failed", zap.Error(err))
		}
	}
}

// strokeWidth is the hidden thickness in widget units
func (h *Handler) strokeWidth() float64 {
	return float64(h.session.Round.TargetThickness)
}

func (h *Handler) toPoint(pos fyne.Position) models.Point {
	return models.Point{
		X: float64(pos.X),
		Y: float64(pos.Y),
	}
}
