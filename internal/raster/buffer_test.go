package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewFillsWhite(t *testing.T) {
	b := New(4, 3)
	if b.Width() != 4 || b.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", b.Width(), b.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c, err := b.At(x, y)
			if err != nil {
				t.Fatalf("At(%d, %d): %v", x, y, err)
			}
			if c != White {
				t.Fatalf("At(%d, %d): got %v, want white", x, y, c)
			}
		}
	}
}

func TestAtSetBounds(t *testing.T) {
	b := New(10, 10)
	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}, {100, 100},
	}
	for _, c := range oob {
		if _, err := b.At(c.x, c.y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%d, %d): got %v, want ErrOutOfBounds", c.x, c.y, err)
		}
		if err := b.Set(c.x, c.y, Black); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d, %d): got %v, want ErrOutOfBounds", c.x, c.y, err)
		}
	}

	if err := b.Set(3, 7, Color{1, 2, 3, 4}); err != nil {
		t.Fatalf("Set(3, 7): %v", err)
	}
	got, err := b.At(3, 7)
	if err != nil {
		t.Fatalf("At(3, 7): %v", err)
	}
	if got != (Color{1, 2, 3, 4}) {
		t.Errorf("At(3, 7): got %v, want {1 2 3 4}", got)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	b := New(8, 8)
	b.Set(2, 2, Black)
	b.Set(7, 0, Color{10, 20, 30, 40})

	snap := b.Snapshot()
	before := make([]uint8, len(b.pix))
	copy(before, b.pix)

	// Mutating the buffer must not touch the snapshot.
	b.Fill(Black)
	if err := b.Restore(snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !bytes.Equal(b.pix, before) {
		t.Error("restore(snapshot()) is not byte-identical")
	}

	// Restoring twice is idempotent.
	if err := b.Restore(snap); err != nil {
		t.Fatalf("Restore (second): %v", err)
	}
	if !bytes.Equal(b.pix, before) {
		t.Error("second restore changed the buffer")
	}
}

func TestRestoreSizeMismatch(t *testing.T) {
	b := New(8, 8)
	snap := New(8, 9).Snapshot()
	if err := b.Restore(snap); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("Restore: got %v, want ErrSizeMismatch", err)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#000000", Color{0, 0, 0, 255}, false},
		{"#ffffff", Color{255, 255, 255, 255}, false},
		{"#ff8000", Color{255, 128, 0, 255}, false},
		{"#123456", Color{0x12, 0x34, 0x56, 255}, false},
		{"123456", Color{}, true},
		{"#12345", Color{}, true},
		{"#gggggg", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q): err = %v, wantErr = %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseHex(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestImageSharesStorage(t *testing.T) {
	b := New(5, 5)
	img := b.Image()
	img.SetRGBA(1, 1, color.RGBA{9, 8, 7, 255})
	got, _ := b.At(1, 1)
	if got != (Color{9, 8, 7, 255}) {
		t.Errorf("write through Image() not visible: got %v", got)
	}
}

func TestDrawImageScaleToFit(t *testing.T) {
	b := New(100, 50)

	// A 200x200 solid black source must land as a centered 50x50 block.
	src := image.NewRGBA(image.Rect(0, 0, 200, 200))
	for i := range src.Pix {
		if i%4 == 3 {
			src.Pix[i] = 255
		} else {
			src.Pix[i] = 0
		}
	}
	b.DrawImage(src)

	center, _ := b.At(50, 25)
	if center != Black {
		t.Errorf("center pixel: got %v, want black", center)
	}
	left, _ := b.At(5, 25)
	if left != White {
		t.Errorf("margin pixel: got %v, want white", left)
	}
	top, _ := b.At(50, 0)
	if top != Black {
		t.Errorf("top of fitted block: got %v, want black", top)
	}
}
