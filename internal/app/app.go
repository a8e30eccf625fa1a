//go:build ebiten

// Package app opens a mosaic grid in an ebiten window. The window loop
// owns all drawing; writers on other goroutines reach it through the
// surface's task runner.
package app

import (
	"errors"
	"log"
	"os"

	"mosaic/internal/canvas"
	"mosaic/internal/raster"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minBlockSize is the smallest usable cell edge in pixels; smaller
// requested sizes are raised to it.
const minBlockSize = 5

// game adapts a mosaic surface to the ebiten.Game interface.
type game struct {
	sfc     *raster.Surface
	cv      *canvas.Canvas
	w, h    int
	img     *ebiten.Image
	ready   chan struct{}
	started bool
}

// Update drains deferred draws and handles the quit keys.
func (g *game) Update() error {
	if !g.started {
		g.started = true
		g.sfc.Runner.Bind()
		g.cv.ForceRedraw()
		close(g.ready)
	}
	g.sfc.Runner.Drain()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw uploads the raster when it changed and blits it to the screen.
func (g *game) Draw(screen *ebiten.Image) {
	if g.sfc.TakeDirty() {
		g.img.WritePixels(g.sfc.Raster().Pix())
	}
	screen.DrawImage(g.img, nil)
}

// Layout returns the fixed logical screen size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

// Launch opens a rows x cols mosaic window with the given preferred cell
// size and returns its canvas plus a channel closed once the first frame
// has run. The window loop runs on its own goroutine so the caller can
// block until readiness; closing the window ends the process.
func Launch(rows, cols, blockHeight, blockWidth int) (*canvas.Canvas, <-chan struct{}, error) {
	if blockHeight < minBlockSize {
		blockHeight = minBlockSize
	}
	if blockWidth < minBlockSize {
		blockWidth = minBlockSize
	}
	w, h := cols*blockWidth, rows*blockHeight

	sfc := raster.NewSurface(w, h)
	cv, err := canvas.New(rows, cols, sfc)
	if err != nil {
		return nil, nil, err
	}

	g := &game{
		sfc:   sfc,
		cv:    cv,
		w:     w,
		h:     h,
		img:   ebiten.NewImage(w, h),
		ready: make(chan struct{}),
	}

	go func() {
		ebiten.SetWindowTitle("Mosaic")
		ebiten.SetWindowSize(w, h)
		if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
			log.Fatal(err)
		}
		os.Exit(0)
	}()

	return cv, g.ready, nil
}
