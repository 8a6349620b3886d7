package desktop

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"github.com/KirkDiggler/linewidth/internal/models"
	"github.com/KirkDiggler/linewidth/internal/services/round"
	"github.com/KirkDiggler/linewidth/internal/services/share"
	"go.uber.org/zap"
)

func (h *Handler) pointerDown(pointerID int64, pos fyne.Position) {
	if h.session == nil {
		return
	}

	out, err := h.roundService.BeginStroke(h.ctx, &round.BeginStrokeInput{
		SessionID: h.session.ID,
		PointerID: pointerID,
		Point:     h.toPoint(pos),
	})
	if err != nil {
		h.logActionError("begin stroke", err)
		return
	}

	h.session = out.Session
	h.refresh()
}

func (h *Handler) pointerMove(pointerID int64, pos fyne.Position) {
	if h.session == nil {
		return
	}

	out, err := h.roundService.ExtendStroke(h.ctx, &round.ExtendStrokeInput{
		SessionID: h.session.ID,
		PointerID: pointerID,
		Points:    []models.Point{h.toPoint(pos)},
	})
	if err != nil {
		h.logActionError("extend stroke", err)
		return
	}

	h.session = out.Session
	h.refresh()
}

func (h *Handler) pointerUp(pointerID int64) {
	if h.session == nil {
		return
	}

	out, err := h.roundService.EndStroke(h.ctx, &round.EndStrokeInput{
		SessionID: h.session.ID,
		PointerID: pointerID,
	})
	if err != nil {
		h.logActionError("end stroke", err)
		return
	}

	h.session = out.Session
	h.refresh()
}

func (h *Handler) guessChanged(value float64) {
	if h.syncing || h.session == nil {
		return
	}

	out, err := h.roundService.SetGuess(h.ctx, &round.SetGuessInput{
		SessionID: h.session.ID,
		Thickness: int(value),
	})
	if err != nil {
		h.logActionError("set guess", err)
		h.refresh()
		return
	}

	h.session = out.Session
	h.refresh()
}

func (h *Handler) checkGuess() {
	if h.session == nil {
		return
	}

	out, err := h.roundService.CheckGuess(h.ctx, &round.CheckGuessInput{
		SessionID: h.session.ID,
	})
	if err != nil {
		h.logActionError("check guess", err)
		return
	}

	h.session = out.Session
	if out.RoundOver {
		h.logger.Info("round over",
			zap.Int("round", out.Session.Round.Number),
			zap.Bool("correct", out.Correct),
			zap.Int("target", out.Session.Round.TargetThickness),
			zap.Int("wins", out.Session.Stats.WinCount))
	}
	h.refresh()
}

func (h *Handler) clearDrawing() {
	if h.session == nil {
		return
	}

	out, err := h.roundService.ClearDrawing(h.ctx, &round.ClearDrawingInput{
		SessionID: h.session.ID,
	})
	if err != nil {
		h.logActionError("clear drawing", err)
		return
	}

	h.session = out.Session
	h.refresh()
}

func (h *Handler) nextRound() {
	if h.session == nil {
		return
	}

	out, err := h.roundService.StartNewRound(h.ctx, &round.StartNewRoundInput{
		SessionID: h.session.ID,
	})
	if err != nil {
		h.logActionError("next round", err)
		return
	}

	h.session = out.Session
	h.exportLabel.SetText("")
	h.refresh()
}

// saveShare exports a snapshot of the drawing in the background. The round
// is never touched by the outcome; only the export label is.
func (h *Handler) saveShare() {
	if h.session == nil || h.surface == nil {
		return
	}

	w, hgt := h.surface.Size()
	done := h.shareService.ExportAsync(h.ctx, &share.ExportAsyncInput{
		Drawing:     &h.session.Drawing,
		StrokeWidth: h.strokeWidth(),
		Scale:       h.surface.Scale(),
		Width:       w,
		Height:      hgt,
	})

	// One export at a time; the button comes back when this one reports.
	h.saveButton.Disable()
	h.exportLabel.SetText("Exporting…")
	go func() {
		res := <-done
		fyne.Do(func() {
			h.exportLabel.SetText(exportStatus(res))
			h.saveButton.Enable()
		})
	}()
}

// exportStatus is the label text for a finished export. Failures and
// cancellations leave it blank.
func exportStatus(res *share.ExportResult) string {
	if res == nil || res.Err != nil || res.Delivery == nil || res.Delivery.Canceled {
		return ""
	}
	if res.Delivery.Method == share.MethodDownload {
		return "Saved to " + res.Delivery.Location
	}
	return "Shared"
}

// logActionError logs a rejected action. Rejections caused by the round
// state are expected UI races and stay at debug level.
func (h *Handler) logActionError(action string, err error) {
	switch {
	case errors.Is(err, round.ErrRoundOver),
		errors.Is(err, round.ErrNothingDrawn),
		errors.Is(err, round.ErrStrokeNotActive),
		errors.Is(err, round.ErrGuessOutOfRange):
		h.logger.Debug(fmt.Sprintf("%s rejected", action), zap.Error(err))
	default:
		h.logger.Error(fmt.Sprintf("%s failed", action), zap.Error(err))
	}
}
