// Package canvas implements the mosaic grid: storage for the cell colors
// and the drawing logic that renders them onto a display surface. A Canvas
// may be written to from any goroutine; all drawing is funnelled onto the
// surface's owning goroutine through Surface.Post.
package canvas

import (
	"errors"
	"math"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Surface is the drawing target a Canvas renders to. Coordinates are in
// pixels; stroke primitives use a one-pixel pen centered on the given
// coordinates. Post schedules fn on the surface's owning goroutine,
// running it synchronously when the caller already is that goroutine.
type Surface interface {
	Size() (w, h int)
	FillRect(x, y, w, h float64, c colorful.Color)
	StrokeRect(x, y, w, h float64, c colorful.Color)
	StrokeLine(x0, y0, x1, y1 float64, c colorful.Color)
	Post(fn func()) bool
}

// Default appearance at construction.
var (
	Black = colorful.Color{}
	Gray  = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
)

// drawThrottle is how long a writer yields after scheduling a draw, so a
// tight update loop cannot starve the display goroutine's queue.
const drawThrottle = time.Millisecond

// Canvas is a grid of rows x cols colored rectangles. Cells without an
// assigned color render in the default color. Optional "grouting" draws a
// one-pixel outline around each cell, and set cells may render with a
// raised 3D bevel.
type Canvas struct {
	rows, cols int
	cells      []*colorful.Color // row-major; nil means unset

	defaultColor       colorful.Color
	grouting           *colorful.Color
	alwaysDrawGrouting bool
	use3D              bool
	autopaint          bool

	surface  Surface
	throttle time.Duration
}

// New constructs a Canvas drawing on the given surface. The default cell
// color is black, grouting is gray, the 3D effect is on and every write
// repaints its cell.
func New(rows, cols int, surface Surface) (*Canvas, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.New("canvas: rows and columns must be greater than zero")
	}
	grout := Gray
	return &Canvas{
		rows:         rows,
		cols:         cols,
		cells:        make([]*colorful.Color, rows*cols),
		defaultColor: Black,
		grouting:     &grout,
		use3D:        true,
		autopaint:    true,
		surface:      surface,
		throttle:     drawThrottle,
	}, nil
}

// Rows returns the number of rows in the grid.
func (c *Canvas) Rows() int { return c.rows }

// Cols returns the number of columns in the grid.
func (c *Canvas) Cols() int { return c.cols }

// SetColor assigns a color to the cell at (row, col), clamping every
// channel to [0, 1], and repaints that cell. Out-of-range coordinates are
// ignored; bounds checking belongs to the caller-facing facade.
func (c *Canvas) SetColor(row, col int, color colorful.Color) {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return
	}
	clamped := color.Clamped()
	c.cells[row*c.cols+col] = &clamped
	if c.autopaint {
		c.drawCell(row, col)
	}
}

// At returns the effective color of the cell at (row, col): its assigned
// color, or the default color when the cell is unset or out of range.
func (c *Canvas) At(row, col int) colorful.Color {
	if row >= 0 && row < c.rows && col >= 0 && col < c.cols {
		if cell := c.cells[row*c.cols+col]; cell != nil {
			return *cell
		}
	}
	return c.defaultColor
}

// Red returns the red channel of the effective color at (row, col) in [0, 1].
func (c *Canvas) Red(row, col int) float64 { return c.At(row, col).R }

// Green returns the green channel of the effective color at (row, col) in [0, 1].
func (c *Canvas) Green(row, col int) float64 { return c.At(row, col).G }

// Blue returns the blue channel of the effective color at (row, col) in [0, 1].
func (c *Canvas) Blue(row, col int) float64 { return c.At(row, col).B }

// SetDefaultColor changes the color used for unset cells and repaints the
// grid if the value changed.
func (c *Canvas) SetDefaultColor(color colorful.Color) {
	color = color.Clamped()
	if color == c.defaultColor {
		return
	}
	c.defaultColor = color
	c.ForceRedraw()
}

// DefaultColor returns the color used for unset cells.
func (c *Canvas) DefaultColor() colorful.Color { return c.defaultColor }

// SetGroutingColor changes the grouting color. A nil color disables
// grouting and the cells fill the whole grid. The grid repaints only if
// the value changed.
func (c *Canvas) SetGroutingColor(color *colorful.Color) {
	if color == nil {
		if c.grouting == nil {
			return
		}
		c.grouting = nil
	} else {
		clamped := color.Clamped()
		if c.grouting != nil && *c.grouting == clamped {
			return
		}
		c.grouting = &clamped
	}
	c.ForceRedraw()
}

// GroutingColor returns the grouting color, or nil when grouting is off.
func (c *Canvas) GroutingColor() *colorful.Color {
	if c.grouting == nil {
		return nil
	}
	grout := *c.grouting
	return &grout
}

// SetUse3D toggles the raised bevel on set cells and repaints the grid if
// the value changed. Unset cells always render flat.
func (c *Canvas) SetUse3D(use3D bool) {
	if use3D == c.use3D {
		return
	}
	c.use3D = use3D
	c.ForceRedraw()
}

// Use3D reports whether set cells render with the raised bevel.
func (c *Canvas) Use3D() bool { return c.use3D }

// SetAlwaysDrawGrouting controls whether grouting is drawn around unset
// cells too, repainting the grid if the value changed.
func (c *Canvas) SetAlwaysDrawGrouting(always bool) {
	if always == c.alwaysDrawGrouting {
		return
	}
	c.alwaysDrawGrouting = always
	c.ForceRedraw()
}

// AlwaysDrawGrouting reports whether grouting is drawn around unset cells.
func (c *Canvas) AlwaysDrawGrouting() bool { return c.alwaysDrawGrouting }

// SetAutopaint controls whether SetColor repaints immediately. Turning it
// off lets a caller batch many writes and flush them with one ForceRedraw.
func (c *Canvas) SetAutopaint(autopaint bool) { c.autopaint = autopaint }

// Autopaint reports whether SetColor repaints immediately.
func (c *Canvas) Autopaint() bool { return c.autopaint }

// ForceRedraw repaints every cell.
func (c *Canvas) ForceRedraw() {
	c.surface.Post(func() {
		for row := 0; row < c.rows; row++ {
			for col := 0; col < c.cols; col++ {
				c.drawOneCell(row, col)
			}
		}
	})
	c.yield()
}

// drawCell schedules a repaint of a single cell.
func (c *Canvas) drawCell(row, col int) {
	c.surface.Post(func() { c.drawOneCell(row, col) })
	c.yield()
}

// yield briefly pauses the calling goroutine after a draw has been
// scheduled or executed, so rapid single-cell updates cannot flood the
// display goroutine.
func (c *Canvas) yield() {
	if c.throttle > 0 {
		time.Sleep(c.throttle)
	}
}

// drawOneCell renders the cell at (row, col). It must run on the
// surface's owning goroutine; drawCell and ForceRedraw guarantee that.
func (c *Canvas) drawOneCell(row, col int) {
	width, height := c.surface.Size()
	y0, y1 := span(height, c.rows, row)
	x0, x1 := span(width, c.cols, col)
	x, y := float64(x0), float64(y0)
	w, h := float64(x1-x0), float64(y1-y0)

	cell := c.cells[row*c.cols+col]
	fill := c.defaultColor
	if cell != nil {
		fill = *cell
	}
	bevel := c.use3D && cell != nil

	if c.grouting == nil || (cell == nil && !c.alwaysDrawGrouting) {
		c.fillRect(fill, bevel, x, y, w, h)
		return
	}
	c.fillRect(fill, bevel, x+1, y+1, w-2, h-2)
	c.surface.StrokeRect(x+0.5, y+0.5, w-1, h-1, *c.grouting)
}

func (c *Canvas) fillRect(color colorful.Color, bevel bool, x, y, w, h float64) {
	if bevel {
		c.fill3DRect(color, x, y, w, h)
		return
	}
	c.surface.FillRect(x, y, w, h, color)
}

// fill3DRect fills the rectangle with a raised-button appearance: a
// lightened stroke along the top and left edges and a darkened stroke
// along the bottom and right. The base brightness is kept inside
// [0.2, 0.8] so the highlight and shadow never clip at white or black.
func (c *Canvas) fill3DRect(color colorful.Color, x, y, w, h float64) {
	hue, sat, bright := color.Hsv()
	if bright > 0.8 {
		bright = 0.8
		color = colorful.Hsv(hue, sat, bright)
	} else if bright < 0.2 {
		bright = 0.2
		color = colorful.Hsv(hue, sat, bright)
	}
	c.surface.FillRect(x, y, w, h, color)

	light := colorful.Hsv(hue, sat, bright+0.2)
	c.surface.StrokeLine(x+0.5, y+0.5, x+w-0.5, y+0.5, light)
	c.surface.StrokeLine(x+0.5, y+0.5, x+0.5, y+h-0.5, light)

	dark := colorful.Hsv(hue, sat, bright-0.2)
	c.surface.StrokeLine(x+w-0.5, y+1.5, x+w-0.5, y+h-0.5, dark)
	c.surface.StrokeLine(x+1.5, y+h-0.5, x+w-0.5, y+h-0.5, dark)
}

// span returns the pixel range [lo, hi) of slot i when total pixels are
// divided into count slots. Boundaries are the rounded cumulative
// division, so adjacent slots share an edge and the widths sum exactly to
// the total. A slot is never narrower than one pixel.
func span(total, count, i int) (lo, hi int) {
	size := float64(total) / float64(count)
	lo = int(math.Round(size * float64(i)))
	hi = int(math.Round(size * float64(i+1)))
	if hi-lo < 1 {
		hi = lo + 1
	}
	return lo, hi
}
