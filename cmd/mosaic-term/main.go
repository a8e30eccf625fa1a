// Command mosaic-term runs the blinking-squares demo in the terminal,
// rendering the grid with half-block glyphs instead of a window.
package main

import (
	"flag"
	"log"
	"math/rand"

	"mosaic/internal/app"
	"mosaic/internal/term"
	"mosaic/pkg/mosaic"
)

func main() {
	cfg := app.NewConfig()
	cfg.BlockWidth = 2
	cfg.BlockHeight = 2
	cfg.Rows = 24
	cfg.Cols = 24
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	m := mosaic.NewWith(term.Launch)
	if err := m.Open(cfg.Rows, cfg.Cols, cfg.BlockHeight, cfg.BlockWidth); err != nil {
		log.Fatal(err)
	}

	cv := m.Canvas()
	cv.SetUse3D(cfg.Use3D)
	if !cfg.Grouting {
		cv.SetGroutingColor(nil)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for {
		row, col := rng.Intn(cfg.Rows), rng.Intn(cfg.Cols)
		if err := m.SetColor(row, col, rng.Intn(256), rng.Intn(256), rng.Intn(256)); err != nil {
			log.Fatal(err)
		}
		m.Delay(cfg.DelayMS)
	}
}
