// Package mosaic is the caller-facing API for the mosaic window: open a
// grid of colored rectangles, then read and write cell colors as 0-255
// integers from any goroutine. A process-wide default handle backs the
// package-level functions, mirroring how host programs use the mosaic as
// a global window.
package mosaic

import (
	"errors"
	"fmt"
	"time"

	"mosaic/internal/app"
	"mosaic/internal/canvas"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrOutOfRange reports a cell coordinate outside the open grid.
var ErrOutOfRange = errors.New("mosaic: cell out of range")

// LaunchFunc starts a display backend for a rows x cols grid with the
// given preferred cell size. It returns the grid's canvas and a channel
// closed once the display has shown its first frame.
type LaunchFunc func(rows, cols, blockHeight, blockWidth int) (*canvas.Canvas, <-chan struct{}, error)

// Mosaic is a handle to one open mosaic grid. The zero value is unusable;
// use New or NewWith.
type Mosaic struct {
	launch     LaunchFunc
	cv         *canvas.Canvas
	rows, cols int
}

// New returns a handle that opens the windowed backend.
func New() *Mosaic { return NewWith(app.Launch) }

// NewWith returns a handle using the given backend launcher.
func NewWith(launch LaunchFunc) *Mosaic { return &Mosaic{launch: launch} }

// Default is the process-wide handle behind the package-level functions.
var Default = New()

// Open starts the display for a rows x cols grid whose cells prefer the
// given pixel size, and blocks until the first frame has been shown. If a
// grid is already open, Open does nothing; the original dimensions stay
// in effect.
func (m *Mosaic) Open(rows, cols, blockHeight, blockWidth int) error {
	if m.cv != nil {
		return nil
	}
	cv, ready, err := m.launch(rows, cols, blockHeight, blockWidth)
	if err != nil {
		return err
	}
	<-ready
	m.rows, m.cols = rows, cols
	m.cv = cv
	return nil
}

// GetRed returns the red component of the cell at (row, col) in the range
// 0 to 255. Before any grid is open it returns 0; out-of-range
// coordinates fail with ErrOutOfRange.
func (m *Mosaic) GetRed(row, col int) (int, error) {
	if m.cv == nil {
		return 0, nil
	}
	if err := m.check(row, col); err != nil {
		return 0, err
	}
	return int(255 * m.cv.Red(row, col)), nil
}

// GetGreen is like GetRed for the green component.
func (m *Mosaic) GetGreen(row, col int) (int, error) {
	if m.cv == nil {
		return 0, nil
	}
	if err := m.check(row, col); err != nil {
		return 0, err
	}
	return int(255 * m.cv.Green(row, col)), nil
}

// GetBlue is like GetRed for the blue component.
func (m *Mosaic) GetBlue(row, col int) (int, error) {
	if m.cv == nil {
		return 0, nil
	}
	if err := m.check(row, col); err != nil {
		return 0, err
	}
	return int(255 * m.cv.Blue(row, col)), nil
}

// SetColor sets the cell at (row, col) to the color given by red, green
// and blue components in the range 0 to 255. Values outside that range
// are clamped. Before any grid is open the call does nothing;
// out-of-range coordinates fail with ErrOutOfRange.
func (m *Mosaic) SetColor(row, col, red, green, blue int) error {
	if m.cv == nil {
		return nil
	}
	if err := m.check(row, col); err != nil {
		return err
	}
	m.cv.SetColor(row, col, colorful.Color{
		R: float64(red) / 255,
		G: float64(green) / 255,
		B: float64(blue) / 255,
	})
	return nil
}

// Delay pauses the calling goroutine for at least the given number of
// milliseconds. Non-positive values do nothing.
func (m *Mosaic) Delay(milliseconds int) {
	if milliseconds > 0 {
		time.Sleep(time.Duration(milliseconds) * time.Millisecond)
	}
}

// Canvas exposes the open grid's canvas for appearance settings such as
// grouting or the 3D bevel, or nil before Open.
func (m *Mosaic) Canvas() *canvas.Canvas { return m.cv }

func (m *Mosaic) check(row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fmt.Errorf("%w: (row,col) = (%d,%d) is not in the mosaic", ErrOutOfRange, row, col)
	}
	return nil
}

// Open opens the default mosaic window.
func Open(rows, cols, blockHeight, blockWidth int) error {
	return Default.Open(rows, cols, blockHeight, blockWidth)
}

// GetRed reads the red component of a cell of the default mosaic.
func GetRed(row, col int) (int, error) { return Default.GetRed(row, col) }

// GetGreen reads the green component of a cell of the default mosaic.
func GetGreen(row, col int) (int, error) { return Default.GetGreen(row, col) }

// GetBlue reads the blue component of a cell of the default mosaic.
func GetBlue(row, col int) (int, error) { return Default.GetBlue(row, col) }

// SetColor sets a cell color of the default mosaic.
func SetColor(row, col, red, green, blue int) error {
	return Default.SetColor(row, col, red, green, blue)
}

// Delay pauses the calling goroutine for at least the given number of
// milliseconds.
func Delay(milliseconds int) { Default.Delay(milliseconds) }
