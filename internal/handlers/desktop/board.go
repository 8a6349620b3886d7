package desktop

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// mousePointerID identifies the single desktop mouse pointer
const mousePointerID int64 = 1

// boardWidget is the drawing surface. Drag events keep going to the widget
// that saw the press, so a stroke stays with its pointer even when the
// cursor leaves and re-enters the board.
type boardWidget struct {
	widget.BaseWidget

	raster  *canvas.Raster
	pressed bool

	OnPointerDown func(pointerID int64, pos fyne.Position)
	OnPointerMove func(pointerID int64, pos fyne.Position)
	OnPointerUp   func(pointerID int64)
}

var _ fyne.Widget = (*boardWidget)(nil)
var _ fyne.Draggable = (*boardWidget)(nil)
var _ desktop.Mouseable = (*boardWidget)(nil)

func newBoardWidget(raster *canvas.Raster) *boardWidget {
	b := &boardWidget{raster: raster}
	b.ExtendBaseWidget(b)
	return b
}

func (b *boardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.pressed = true
	if b.OnPointerDown != nil {
		b.OnPointerDown(mousePointerID, e.Position)
	}
}

func (b *boardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.release()
}

func (b *boardWidget) Dragged(e *fyne.DragEvent) {
	if !b.pressed {
		return
	}
	if b.OnPointerMove != nil {
		b.OnPointerMove(mousePointerID, e.Position)
	}
}

func (b *boardWidget) DragEnd() {
	b.release()
}

func (b *boardWidget) release() {
	if !b.pressed {
		return
	}
	b.pressed = false
	if b.OnPointerUp != nil {
		b.OnPointerUp(mousePointerID)
	}
}

func (b *boardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.raster)
}
