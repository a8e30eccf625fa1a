// Package raster draws solid-color shapes into an in-memory RGBA image.
// Both display backends render mosaic cells through a Raster and then hand
// the finished pixels to their toolkit in one upload per frame.
package raster

import (
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Raster is a fixed-size RGBA pixel buffer with a one-pixel pen. Stroke
// coordinates follow the half-unit convention: a line centered on x=3.5
// lights pixel column 3.
type Raster struct {
	img *image.RGBA
	w   int
	h   int
}

// New allocates a raster of the given size. Non-positive dimensions are
// raised to 1.
func New(w, h int) *Raster {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, w, h)), w: w, h: h}
}

// Size returns the raster dimensions in pixels.
func (r *Raster) Size() (int, int) { return r.w, r.h }

// Pix exposes the backing pixel buffer in RGBA order, 4 bytes per pixel.
func (r *Raster) Pix() []byte { return r.img.Pix }

// RGBA exposes the backing image.
func (r *Raster) RGBA() *image.RGBA { return r.img }

// At returns the pixel at (x, y), or opaque black when out of bounds.
func (r *Raster) At(x, y int) color.RGBA {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		return color.RGBA{A: 0xff}
	}
	return r.img.RGBAAt(x, y)
}

// FillRect fills the rectangle with corner (x, y), width w and height h.
func (r *Raster) FillRect(x, y, w, h float64, c colorful.Color) {
	x0, y0 := int(math.Round(x)), int(math.Round(y))
	x1, y1 := int(math.Round(x+w)), int(math.Round(y+h))
	rgba := toRGBA(c)
	for py := max(y0, 0); py < min(y1, r.h); py++ {
		for px := max(x0, 0); px < min(x1, r.w); px++ {
			r.img.SetRGBA(px, py, rgba)
		}
	}
}

// StrokeRect outlines the rectangle with corner (x, y), width w and height
// h, pen centered on the rectangle boundary.
func (r *Raster) StrokeRect(x, y, w, h float64, c colorful.Color) {
	r.StrokeLine(x, y, x+w, y, c)
	r.StrokeLine(x, y+h, x+w, y+h, c)
	r.StrokeLine(x, y, x, y+h, c)
	r.StrokeLine(x+w, y, x+w, y+h, c)
}

// StrokeLine draws a one-pixel line between the two endpoints, inclusive.
func (r *Raster) StrokeLine(x0, y0, x1, y1 float64, c colorful.Color) {
	rgba := toRGBA(c)
	switch {
	case x0 == x1:
		px := pixel(x0)
		a, b := pixel(math.Min(y0, y1)), pixel(math.Max(y0, y1))
		for py := a; py <= b; py++ {
			r.set(px, py, rgba)
		}
	case y0 == y1:
		py := pixel(y0)
		a, b := pixel(math.Min(x0, x1)), pixel(math.Max(x0, x1))
		for px := a; px <= b; px++ {
			r.set(px, py, rgba)
		}
	default:
		// Mosaic drawing only ever strokes axis-aligned edges; the DDA
		// path keeps the primitive general.
		dx, dy := x1-x0, y1-y0
		steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			r.set(pixel(x0+t*dx), pixel(y0+t*dy), rgba)
		}
	}
}

func (r *Raster) set(x, y int, c color.RGBA) {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		return
	}
	r.img.SetRGBA(x, y, c)
}

// pixel maps a center coordinate to the pixel index it covers.
func pixel(v float64) int { return int(math.Round(v - 0.5)) }

func toRGBA(c colorful.Color) color.RGBA {
	rr, gg, bb := c.Clamped().RGB255()
	return color.RGBA{R: rr, G: gg, B: bb, A: 0xff}
}
