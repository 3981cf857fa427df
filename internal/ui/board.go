package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"PixelPad/internal/raster"
	"PixelPad/internal/state"
)

// BoardWidget displays the drawing surface and translates pointer events
// into its gesture protocol. All events arrive on the fyne event goroutine,
// so the buffer is only ever touched from one goroutine.
type BoardWidget struct {
	widget.BaseWidget
	surface *state.Surface
	display *canvas.Raster

	// OnGesture fires after each completed gesture so the app shell can
	// refresh undo availability and similar chrome.
	OnGesture func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(s *state.Surface) *BoardWidget {
	b := &BoardWidget{surface: s}
	b.display = canvas.NewRasterFromImage(s.Buffer().Image())
	b.display.SetMinSize(fyne.NewSize(
		float32(s.Buffer().Width()),
		float32(s.Buffer().Height()),
	))
	b.ExtendBaseWidget(b)
	return b
}

// Surface returns the surface this widget drives.
func (b *BoardWidget) Surface() *state.Surface { return b.surface }

// toCanvas maps a widget position onto buffer coordinates. The widget may be
// stretched by the layout; the buffer itself never resizes.
func (b *BoardWidget) toCanvas(pos fyne.Position) raster.Point {
	size := b.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return raster.Point{X: pos.X, Y: pos.Y}
	}
	return raster.Point{
		X: pos.X * float32(b.surface.Buffer().Width()) / size.Width,
		Y: pos.Y * float32(b.surface.Buffer().Height()) / size.Height,
	}
}

func (b *BoardWidget) gestureDone() {
	b.Refresh()
	if b.OnGesture != nil {
		b.OnGesture()
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.surface.PointerDown(b.toCanvas(e.Position))
	if b.surface.Tool() == state.ToolBucket {
		// Fills complete on the click itself.
		b.gestureDone()
		return
	}
	b.Refresh()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.surface.PointerUp(b.toCanvas(e.Position))
	b.gestureDone()
}

// Dragged extends the open stroke, one segment per move event, in arrival
// order.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.surface.PointerMove(b.toCanvas(e.Position))
	b.Refresh()
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.display)
}

// Refresh repaints the displayed raster from the shared pixel storage.
func (b *BoardWidget) Refresh() {
	b.display.Refresh()
	b.BaseWidget.Refresh()
}
