// Package term renders a mosaic grid in a terminal. Each character cell
// shows two raster pixels using the upper-half-block glyph, with the top
// pixel as the foreground color and the bottom pixel as the background.
package term

import (
	"os"
	"time"

	"mosaic/internal/canvas"
	"mosaic/internal/raster"

	"github.com/gdamore/tcell/v2"
)

// halfBlock is U+2580 UPPER HALF BLOCK.
const halfBlock = '▀'

// frameInterval paces the redraw loop at roughly 30 frames per second.
const frameInterval = 33 * time.Millisecond

// defaultBlockSize keeps terminal mosaics small enough to fit a screen;
// a 16-pixel block is reasonable in a window but not at one column per
// pixel.
const defaultBlockSize = 2

// Launch opens a rows x cols mosaic in the terminal and returns its
// canvas plus a channel closed once the first frame has been shown. The
// screen loop runs on its own goroutine; pressing q, Escape or Ctrl-C
// ends the process.
func Launch(rows, cols, blockHeight, blockWidth int) (*canvas.Canvas, <-chan struct{}, error) {
	if blockHeight <= 0 {
		blockHeight = defaultBlockSize
	}
	if blockWidth <= 0 {
		blockWidth = defaultBlockSize
	}
	w, h := cols*blockWidth, rows*blockHeight

	sfc := raster.NewSurface(w, h)
	cv, err := canvas.New(rows, cols, sfc)
	if err != nil {
		return nil, nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, nil, err
	}

	ready := make(chan struct{})
	quit := make(chan struct{})

	go func() {
		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					close(quit)
					return
				}
			case nil:
				return
			}
		}
	}()

	go func() {
		sfc.Runner.Bind()
		cv.ForceRedraw()
		sfc.Runner.Drain()
		blit(screen, sfc.Raster())
		screen.Show()
		close(ready)

		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-quit:
				screen.Fini()
				os.Exit(0)
			case <-ticker.C:
				sfc.Runner.Drain()
				if sfc.TakeDirty() {
					blit(screen, sfc.Raster())
					screen.Show()
				}
			}
		}
	}()

	return cv, ready, nil
}

// blit copies the raster to the screen, two vertically stacked pixels per
// character cell.
func blit(screen tcell.Screen, ras *raster.Raster) {
	w, h := ras.Size()
	for y := 0; y < (h+1)/2; y++ {
		for x := 0; x < w; x++ {
			top := ras.At(x, y*2)
			bottom := ras.At(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}
