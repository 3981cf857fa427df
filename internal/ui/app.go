package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"PixelPad/internal/export"
	"PixelPad/internal/raster"
	"PixelPad/internal/state"
	"PixelPad/internal/stylize"
)

const stylizeTimeout = 60 * time.Second

// App owns the window chrome around the drawing board.
type App struct {
	win    fyne.Window
	board  *BoardWidget
	status *widget.Label
	styler *stylize.Client

	// busy blocks further stylize requests while one is pending. Only
	// touched on the event goroutine.
	busy bool
}

// RunApp builds the main window around the surface and blocks until it is
// closed. styler may be nil when no service is configured or discovered.
func RunApp(surf *state.Surface, styler *stylize.Client) {
	fyneApp := app.New()
	win := fyneApp.NewWindow("PixelPad")

	a := &App{
		win:    win,
		board:  NewBoardWidget(surf),
		status: widget.NewLabel("Ready"),
		styler: styler,
	}
	a.board.OnGesture = func() { a.setStatus("Ready") }

	toolbar := NewToolbar(a.board, toolbarActions{
		Undo:    a.undo,
		Clear:   a.clear,
		Stylize: a.stylizeCanvas,
		Export:  a.exportCanvas,
	})

	win.SetContent(container.NewBorder(toolbar, a.status, nil, nil, a.board))
	win.Resize(fyne.NewSize(1024, 768))
	win.ShowAndRun()
}

func (a *App) setStatus(text string) {
	a.status.SetText(text)
}

func (a *App) undo() {
	surf := a.board.Surface()
	if !surf.CanUndo() {
		a.setStatus("Nothing to undo")
		return
	}
	surf.Undo()
	a.board.Refresh()
	a.setStatus("Undone")
}

func (a *App) clear() {
	a.board.Surface().Clear()
	a.board.Refresh()
	a.setStatus("Canvas cleared")
}

// stylizeCanvas sends the current canvas to the styler service and imports
// the rendered result. The canvas stays untouched until the response
// arrives, and a failure pushes no history.
func (a *App) stylizeCanvas() {
	if a.styler == nil {
		a.setStatus("No styler service configured")
		return
	}
	if a.busy {
		a.setStatus("Stylize already in progress")
		return
	}

	encoded, err := export.PNG(a.board.Surface().Buffer())
	if err != nil {
		dialog.ShowError(err, a.win)
		return
	}

	a.busy = true
	a.setStatus("Stylizing…")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), stylizeTimeout)
		defer cancel()
		img, err := a.styler.Stylize(ctx, encoded)

		fyne.Do(func() {
			a.busy = false
			if err != nil {
				log.Printf("stylize request failed: %v", err)
				a.setStatus("Stylize failed, try again")
				dialog.ShowError(fmt.Errorf("stylize failed, canvas unchanged: %w", err), a.win)
				return
			}
			a.board.Surface().ImportImage(img)
			a.board.Refresh()
			a.setStatus("Stylized image imported")
		})
	}()
}

func (a *App) exportCanvas() {
	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.win)
			return
		}
		if writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("closing export writer: %v", err)
			}
		}()

		if err := writeExport(writer, a.board.Surface().Buffer()); err != nil {
			log.Printf("export failed: %v", err)
			a.setStatus("Export failed")
			dialog.ShowError(err, a.win)
			return
		}
		a.setStatus("Exported " + writer.URI().Name())
	}, a.win)
	save.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".pdf"}))
	save.Show()
}

// writeExport serializes the canvas in the format chosen by the target's
// extension. PNG is the default when no extension is given; anything else
// unsupported is an error rather than silently mislabeled PNG bytes.
func writeExport(writer fyne.URIWriteCloser, buf *raster.Buffer) error {
	switch ext := writer.URI().Extension(); ext {
	case ".pdf":
		return export.PDF(writer, buf)
	case ".png", "":
		data, err := export.PNG(buf)
		if err != nil {
			return err
		}
		_, err = writer.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported export format %q", ext)
	}
}
