package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"PixelPad/internal/raster"
)

// PNG serializes the buffer's current pixels to an encoded PNG. Pure read;
// the buffer is not mutated.
func PNG(b *raster.Buffer) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, b.Image()); err != nil {
		return nil, fmt.Errorf("export: encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodePNG decodes previously exported canvas bytes, e.g. when seeding a
// surface from the persistence store.
func DecodePNG(data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("export: decoding png: %w", err)
	}
	return img, nil
}
