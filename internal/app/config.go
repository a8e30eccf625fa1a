package app

import "flag"

// Config represents the command-line parameters for the demo programs.
type Config struct {
	Rows        int
	Cols        int
	BlockWidth  int
	BlockHeight int
	Use3D       bool
	Grouting    bool
	DelayMS     int
	Seed        int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:        42,
		Cols:        42,
		BlockWidth:  16,
		BlockHeight: 16,
		Use3D:       true,
		Grouting:    true,
		DelayMS:     20,
		Seed:        42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of grid columns")
	fs.IntVar(&c.BlockWidth, "blockw", c.BlockWidth, "cell width in pixels")
	fs.IntVar(&c.BlockHeight, "blockh", c.BlockHeight, "cell height in pixels")
	fs.BoolVar(&c.Use3D, "bevel", c.Use3D, "draw set cells with a raised bevel")
	fs.BoolVar(&c.Grouting, "grouting", c.Grouting, "draw grouting between cells")
	fs.IntVar(&c.DelayMS, "delay", c.DelayMS, "milliseconds between demo updates")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the demo's random colors")
}
