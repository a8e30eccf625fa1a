//go:build !ebiten

package app

import (
	"fmt"

	"mosaic/internal/canvas"
)

// Launch always fails in the headless build; the windowed backend needs
// the ebiten build tag.
func Launch(rows, cols, blockHeight, blockWidth int) (*canvas.Canvas, <-chan struct{}, error) {
	return nil, nil, fmt.Errorf("app.Launch requires building with the 'ebiten' tag")
}
