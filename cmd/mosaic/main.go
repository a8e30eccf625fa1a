//go:build ebiten

// Command mosaic opens a mosaic window and blinks random cells in random
// colors, the classic demo for the grid.
package main

import (
	"flag"
	"log"
	"math/rand"

	"mosaic/internal/app"
	"mosaic/pkg/mosaic"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := mosaic.Open(cfg.Rows, cfg.Cols, cfg.BlockHeight, cfg.BlockWidth); err != nil {
		log.Fatal(err)
	}

	cv := mosaic.Default.Canvas()
	cv.SetUse3D(cfg.Use3D)
	if !cfg.Grouting {
		cv.SetGroutingColor(nil)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for {
		row, col := rng.Intn(cfg.Rows), rng.Intn(cfg.Cols)
		if err := mosaic.SetColor(row, col, rng.Intn(256), rng.Intn(256), rng.Intn(256)); err != nil {
			log.Fatal(err)
		}
		mosaic.Delay(cfg.DelayMS)
	}
}
