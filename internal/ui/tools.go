package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"PixelPad/internal/raster"
	"PixelPad/internal/state"
)

// swatchPalette is the fixed set of color swatches, in "#rrggbb" form.
var swatchPalette = []string{
	"#000000", // black
	"#ff0000", // red
	"#00a000", // green
	"#0000ff", // blue
	"#ffff00", // yellow
	"#ff8000", // orange
	"#8000ff", // purple
	"#808080", // gray
}

// --- Custom Widget for Color Swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func()
}

func newColorSwatch(c color.Color, tapped func()) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

// --- The Main Toolbar ---

// toolbarActions are the app-level operations triggered from the toolbar.
type toolbarActions struct {
	Undo    func()
	Clear   func()
	Stylize func()
	Export  func()
}

// NewToolbar assembles the tool buttons, color swatches and width slider.
func NewToolbar(board *BoardWidget, actions toolbarActions) fyne.CanvasObject {
	surf := board.Surface()

	// Remember the drawing color across eraser use, so switching back to a
	// drawing tool does not paint white.
	lastColor := surf.Color()

	selectTool := func(t state.Tool) {
		surf.SetTool(t)
		if t == state.ToolEraser {
			surf.SetColor(raster.White)
		} else {
			surf.SetColor(lastColor)
		}
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			selectTool(state.ToolPencil)
			surf.SetWidth(2)
		}),
		widget.NewToolbarAction(theme.ColorPaletteIcon(), func() {
			selectTool(state.ToolBrush)
			surf.SetWidth(8)
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			selectTool(state.ToolEraser)
			surf.SetWidth(20)
		}),
		widget.NewToolbarAction(theme.ColorChromaticIcon(), func() {
			selectTool(state.ToolBucket)
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), actions.Undo),
		widget.NewToolbarAction(theme.ContentClearIcon(), actions.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.MediaPhotoIcon(), actions.Stylize),
		widget.NewToolbarAction(theme.DownloadIcon(), actions.Export),
	)

	// --- Color Palette ---
	colorBox := container.NewHBox()
	for _, hex := range swatchPalette {
		c, err := raster.ParseHex(hex)
		if err != nil {
			continue
		}
		picked := c
		colorBox.Add(newColorSwatch(color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, func() {
			lastColor = picked
			if surf.Tool() != state.ToolEraser {
				surf.SetColor(picked)
			}
		}))
	}

	// --- Stroke Width Slider ---
	widthSlider := widget.NewSlider(1, 50)
	widthSlider.SetValue(float64(surf.Width()))
	widthSlider.OnChanged = func(v float64) {
		surf.SetWidth(float32(v))
	}
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), widthSlider)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderBox,
		layout.NewSpacer(),
	)
}
