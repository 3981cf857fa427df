package state

import (
	"image"
	"math"

	"PixelPad/internal/raster"
)

// Tool selects how pointer gestures mutate the canvas. Tools only change the
// color and width routed into the stroke renderer and region filler, never
// the buffer structure.
type Tool int

const (
	ToolPencil Tool = iota
	ToolBrush
	ToolEraser
	ToolBucket
)

// Surface owns one pixel buffer and its undo history and turns pointer
// gestures into committed mutations. All methods must be called from the
// event goroutine; the buffer is never shared across goroutines.
type Surface struct {
	buf  *raster.Buffer
	hist *History

	tool  Tool
	color raster.Color
	width float32

	drawing bool
	last    raster.Point

	// OnCommit is invoked after every committed mutation (stroke, fill,
	// clear, import, undo). The persistence layer hooks in here.
	OnCommit func()
}

// NewSurface creates a blank white surface with its initial snapshot already
// recorded.
func NewSurface(w, h int) *Surface {
	buf := raster.New(w, h)
	return &Surface{
		buf:   buf,
		hist:  NewHistory(buf.Snapshot()),
		tool:  ToolPencil,
		color: raster.Black,
		width: 2,
	}
}

// NewSurfaceFromImage creates a surface seeded from a previously stored
// bitmap, composited before the initial snapshot is taken so that undo
// bottoms out at the restored image rather than at blank white.
func NewSurfaceFromImage(w, h int, img image.Image) *Surface {
	s := NewSurface(w, h)
	s.buf.DrawImage(img)
	s.hist = NewHistory(s.buf.Snapshot())
	return s
}

// Buffer exposes the owned pixel buffer for display and export. Callers must
// not mutate it outside the gesture protocol.
func (s *Surface) Buffer() *raster.Buffer { return s.buf }

func (s *Surface) Tool() Tool        { return s.tool }
func (s *Surface) SetTool(t Tool)    { s.tool = t }
func (s *Surface) Color() raster.Color { return s.color }

func (s *Surface) SetColor(c raster.Color) { s.color = c }

// SetColorHex accepts the "#rrggbb" form used at the input boundary.
func (s *Surface) SetColorHex(hex string) error {
	c, err := raster.ParseHex(hex)
	if err != nil {
		return err
	}
	s.color = c
	return nil
}

func (s *Surface) Width() float32 { return s.width }

// SetWidth clamps non-positive widths to the minimum visible size; the
// stroke renderer relies on the caller doing this.
func (s *Surface) SetWidth(w float32) {
	if w < 1 {
		w = 1
	}
	s.width = w
}

// CanUndo reports whether an undo step is available.
func (s *Surface) CanUndo() bool { return s.hist.CanUndo() }

// HistoryLen returns the number of retained snapshots.
func (s *Surface) HistoryLen() int { return s.hist.Len() }

// commit records the buffer's state as one undo step and notifies the
// persistence hook. Called once per completed gesture, never per move event.
func (s *Surface) commit() {
	s.hist.Push(s.buf.Snapshot())
	s.notify()
}

func (s *Surface) notify() {
	if s.OnCommit != nil {
		s.OnCommit()
	}
}

// PointerDown starts a gesture. The bucket tool completes immediately; the
// drawing tools open a stroke that ends at PointerUp.
func (s *Surface) PointerDown(p raster.Point) {
	if s.tool == ToolBucket {
		raster.FloodFill(s.buf, int(math.Floor(float64(p.X))), int(math.Floor(float64(p.Y))), s.color)
		s.commit()
		return
	}
	s.drawing = true
	s.last = p
	raster.DrawSegment(s.buf, p, p, s.color, s.width, s.tool == ToolEraser)
}

// PointerMove extends the open stroke by one segment from the last recorded
// point. Moves are processed in arrival order; none are dropped or batched.
func (s *Surface) PointerMove(p raster.Point) {
	if !s.drawing {
		return
	}
	raster.DrawSegment(s.buf, s.last, p, s.color, s.width, s.tool == ToolEraser)
	s.last = p
}

// PointerUp finishes the open stroke and commits it as a single undo step.
func (s *Surface) PointerUp(p raster.Point) {
	if !s.drawing {
		return
	}
	raster.DrawSegment(s.buf, s.last, p, s.color, s.width, s.tool == ToolEraser)
	s.drawing = false
	s.commit()
}

// Undo restores the previous committed state. With no prior state it is a
// no-op. The restore cannot size-mismatch because the surface never resizes
// its buffer; if it does anyway, that is a bug worth crashing on.
func (s *Surface) Undo() {
	snap, ok := s.hist.Undo()
	if !ok {
		return
	}
	if err := s.buf.Restore(snap); err != nil {
		panic(err)
	}
	s.notify()
}

// Clear white-fills the canvas and commits.
func (s *Surface) Clear() {
	s.buf.Fill(raster.White)
	s.commit()
}

// ImportImage composites an externally produced bitmap onto the canvas,
// scaled to fit, and commits. Callers must not invoke this for failed
// collaborator results; the buffer stays untouched in that case simply by
// never reaching here.
func (s *Surface) ImportImage(img image.Image) {
	s.buf.DrawImage(img)
	s.commit()
}
