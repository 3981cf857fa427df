package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"PixelPad/internal/raster"
)

// PDF writes the canvas to w as a single-page A4 PDF, with the bitmap
// scaled to the printable width.
func PDF(w io.Writer, b *raster.Buffer) error {
	data, err := PNG(b)
	if err != nil {
		return err
	}

	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("canvas", opts, bytes.NewReader(data))

	const margin = 10.0
	pageW, _ := p.GetPageSize()
	imgW := pageW - 2*margin
	imgH := imgW * float64(b.Height()) / float64(b.Width())
	p.ImageOptions("canvas", margin, margin, imgW, imgH, false, opts, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("export: writing pdf: %w", err)
	}
	return nil
}
