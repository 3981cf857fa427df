package main

import (
	"errors"
	"log"
	"time"

	"PixelPad/internal/config"
	"PixelPad/internal/export"
	"PixelPad/internal/state"
	"PixelPad/internal/store"
	"PixelPad/internal/stylize"
	"PixelPad/internal/ui"
)

const discoverTimeout = 2 * time.Second

func main() {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		log.Fatalf("Failed to locate config: %v", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	storeDir := cfg.StoreDir
	if storeDir == "" {
		if storeDir, err = config.DefaultStoreDir(); err != nil {
			log.Fatalf("Failed to locate store dir: %v", err)
		}
	}
	st, err := store.Open(storeDir)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	surf := restoreSurface(cfg, st)

	// Persist the canvas on every committed mutation so the next session
	// picks up where this one left off.
	surf.OnCommit = func() {
		data, err := export.PNG(surf.Buffer())
		if err != nil {
			log.Printf("Failed to encode canvas for persistence: %v", err)
			return
		}
		if err := st.Put(store.CanvasKey, data); err != nil {
			log.Printf("Failed to persist canvas: %v", err)
		}
	}

	ui.RunApp(surf, buildStyler(cfg))
}

// restoreSurface seeds the surface from the stored canvas when one exists,
// falling back to a blank canvas on any problem.
func restoreSurface(cfg config.Config, st *store.Store) *state.Surface {
	data, err := st.Get(store.CanvasKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("Failed to read stored canvas, starting blank: %v", err)
		}
		return state.NewSurface(cfg.CanvasWidth, cfg.CanvasHeight)
	}
	img, err := export.DecodePNG(data)
	if err != nil {
		log.Printf("Stored canvas unreadable, starting blank: %v", err)
		return state.NewSurface(cfg.CanvasWidth, cfg.CanvasHeight)
	}
	log.Println("Restored canvas from previous session")
	return state.NewSurfaceFromImage(cfg.CanvasWidth, cfg.CanvasHeight, img)
}

// buildStyler prefers a configured endpoint over LAN discovery. Without
// either, the stylize action is simply unavailable.
func buildStyler(cfg config.Config) *stylize.Client {
	if cfg.StylerURL != "" {
		return stylize.NewClient(cfg.StylerURL)
	}
	if !cfg.Discover {
		return nil
	}
	endpoint, err := stylize.Discover(discoverTimeout)
	if err != nil {
		log.Printf("No styler service on the network: %v", err)
		return nil
	}
	log.Printf("Discovered styler service at %s", endpoint)
	return stylize.NewClient(endpoint)
}
