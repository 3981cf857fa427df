package raster

import (
	"errors"
	"fmt"
	"image"
	"strconv"

	xdraw "golang.org/x/image/draw"
)

var (
	// ErrOutOfBounds is returned when a pixel coordinate lies outside the buffer.
	ErrOutOfBounds = errors.New("raster: coordinate out of bounds")
	// ErrSizeMismatch is returned when restoring a snapshot taken from a
	// buffer with different dimensions. This is a programming error on the
	// caller's side; buffers are never resized.
	ErrSizeMismatch = errors.New("raster: snapshot size mismatch")
)

// Color is a single pixel value, 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

var (
	White = Color{255, 255, 255, 255}
	Black = Color{0, 0, 0, 255}
)

// ParseHex parses a "#rrggbb" color string. Alpha is implied opaque.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("raster: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("raster: invalid hex color %q: %w", s, err)
	}
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

// Snapshot is an immutable deep copy of a buffer's pixel data.
type Snapshot struct {
	w, h int
	pix  []uint8
}

// Buffer is a fixed-size RGBA pixel grid. The pixel for (x, y) occupies the
// four bytes starting at (y*W+x)*4. Buffers are owned by a single drawing
// surface and mutated in place; they are never resized.
type Buffer struct {
	w, h int
	pix  []uint8
}

// New creates a buffer of the given dimensions filled with opaque white.
func New(w, h int) *Buffer {
	if w < 1 || h < 1 {
		panic("raster: buffer dimensions must be positive")
	}
	b := &Buffer{w: w, h: h, pix: make([]uint8, w*h*4)}
	b.Fill(White)
	return b
}

func (b *Buffer) Width() int  { return b.w }
func (b *Buffer) Height() int { return b.h }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

// at reads a pixel without a bounds check. Callers must have checked.
func (b *Buffer) at(x, y int) Color {
	i := (y*b.w + x) * 4
	return Color{b.pix[i], b.pix[i+1], b.pix[i+2], b.pix[i+3]}
}

// set writes a pixel without a bounds check. Callers must have checked.
func (b *Buffer) set(x, y int, c Color) {
	i := (y*b.w + x) * 4
	b.pix[i] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
	b.pix[i+3] = c.A
}

// At returns the color at (x, y), or ErrOutOfBounds.
func (b *Buffer) At(x, y int) (Color, error) {
	if !b.inBounds(x, y) {
		return Color{}, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, b.w, b.h)
	}
	return b.at(x, y), nil
}

// Set overwrites the color at (x, y), or returns ErrOutOfBounds.
func (b *Buffer) Set(x, y int, c Color) error {
	if !b.inBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, b.w, b.h)
	}
	b.set(x, y, c)
	return nil
}

// Fill overwrites every pixel with c.
func (b *Buffer) Fill(c Color) {
	for i := 0; i < len(b.pix); i += 4 {
		b.pix[i] = c.R
		b.pix[i+1] = c.G
		b.pix[i+2] = c.B
		b.pix[i+3] = c.A
	}
}

// Snapshot returns an independent copy of the buffer's pixels.
func (b *Buffer) Snapshot() Snapshot {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return Snapshot{w: b.w, h: b.h, pix: pix}
}

// Restore overwrites the buffer from a snapshot taken from a buffer with the
// same dimensions.
func (b *Buffer) Restore(s Snapshot) error {
	if s.w != b.w || s.h != b.h {
		return fmt.Errorf("%w: snapshot %dx%d, buffer %dx%d", ErrSizeMismatch, s.w, s.h, b.w, b.h)
	}
	copy(b.pix, s.pix)
	return nil
}

// Image returns an image.RGBA sharing the buffer's pixel storage. Writes
// through either view are visible in the other.
func (b *Buffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    b.pix,
		Stride: b.w * 4,
		Rect:   image.Rect(0, 0, b.w, b.h),
	}
}

// DrawImage clears the buffer to white and composites img onto it, scaled to
// fit while preserving aspect ratio and centered.
func (b *Buffer) DrawImage(img image.Image) {
	b.Fill(White)

	src := img.Bounds()
	if src.Dx() < 1 || src.Dy() < 1 {
		return
	}
	scale := float64(b.w) / float64(src.Dx())
	if s := float64(b.h) / float64(src.Dy()); s < scale {
		scale = s
	}
	dw := int(float64(src.Dx()) * scale)
	dh := int(float64(src.Dy()) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	x0 := (b.w - dw) / 2
	y0 := (b.h - dh) / 2
	dst := image.Rect(x0, y0, x0+dw, y0+dh)
	xdraw.CatmullRom.Scale(b.Image(), dst, img, src, xdraw.Over, nil)
}
