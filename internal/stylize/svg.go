package stylize

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// RenderSVG rasterizes a vector-image description at its natural size. The
// surface scales the result to fit the canvas when compositing, so no
// canvas dimensions are needed here.
func RenderSVG(svg []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("stylize: parsing svg: %w", err)
	}

	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("stylize: svg has degenerate size %dx%d", w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.SetTarget(0, 0, float64(w), float64(h))
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}
