package desktop

import (
	"fmt"

	"github.com/KirkDiggler/linewidth/internal/services/messaging"
	"go.uber.org/zap"
)

// refresh brings every widget and the surface in line with the session.
// Called after each committed change.
func (h *Handler) refresh() {
	if h.session == nil {
		return
	}
	rnd := h.session.Round
	over := rnd.IsOver()

	h.syncing = true
	h.slider.SetValue(float64(rnd.GuessThickness))
	h.syncing = false

	h.guessLabel.SetText(fmt.Sprintf("Guess: %d", rnd.GuessThickness))
	h.feedbackLabel.SetText(rnd.Feedback.Message)

	status, err := h.messagingService.GetStatusMessage(h.ctx, &messaging.GetStatusMessageInput{
		Round: &h.session.Round,
		Stats: &h.session.Stats,
	})
	if err != nil {
		h.logger.Warn("status message failed", zap.Error(err))
	} else {
		h.statusLabel.SetText(status.Message)
	}

	setEnabled(h.slider, !over)
	setEnabled(h.clearButton, !over)
	setEnabled(h.checkButton, !over && rnd.HasDrawn)

	if err := h.surface.Redraw(&h.session.Drawing, h.strokeWidth()); err != nil {
		h.logger.Warn("redraw failed", zap.Error(err))
	}
	h.raster.Refresh()
}

type disableable interface {
	Enable()
	Disable()
}

func setEnabled(w disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
