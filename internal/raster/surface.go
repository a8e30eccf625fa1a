package raster

import (
	"mosaic/internal/loop"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Surface pairs a Raster with a task runner bound to the goroutine that
// presents it. It satisfies the canvas drawing contract; backends bind the
// runner from their frame loop, drain it each frame and upload the pixels
// when dirty. Drawing primitives only run on the bound goroutine, so the
// dirty flag needs no locking.
type Surface struct {
	Runner loop.Runner

	ras   *Raster
	dirty bool
}

// NewSurface allocates a surface with a w x h pixel raster.
func NewSurface(w, h int) *Surface {
	return &Surface{ras: New(w, h)}
}

// Raster exposes the backing raster.
func (s *Surface) Raster() *Raster { return s.ras }

// Size returns the raster dimensions in pixels.
func (s *Surface) Size() (int, int) { return s.ras.Size() }

// FillRect fills a rectangle and marks the surface dirty.
func (s *Surface) FillRect(x, y, w, h float64, c colorful.Color) {
	s.ras.FillRect(x, y, w, h, c)
	s.dirty = true
}

// StrokeRect outlines a rectangle and marks the surface dirty.
func (s *Surface) StrokeRect(x, y, w, h float64, c colorful.Color) {
	s.ras.StrokeRect(x, y, w, h, c)
	s.dirty = true
}

// StrokeLine draws a line and marks the surface dirty.
func (s *Surface) StrokeLine(x0, y0, x1, y1 float64, c colorful.Color) {
	s.ras.StrokeLine(x0, y0, x1, y1, c)
	s.dirty = true
}

// Post schedules fn on the bound goroutine.
func (s *Surface) Post(fn func()) bool { return s.Runner.Post(fn) }

// TakeDirty reports whether the raster changed since the last call and
// clears the flag. It must run on the bound goroutine.
func (s *Surface) TakeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}
