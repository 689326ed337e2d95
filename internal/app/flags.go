package app

import (
	"flag"
	"fmt"
	"time"

	"termlife/pkg/core"
	"termlife/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Life life.Config

	Rounds  int
	Delay   time.Duration
	Plain   bool
	Pattern string

	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults. A zero seed
// means the seed is taken from the clock.
func NewConfig() *Config {
	lc := life.DefaultConfig()
	lc.Seed = 0
	return &Config{
		Life:   lc,
		Rounds: 500,
		Delay:  20 * time.Millisecond,
		Scale:  8,
		TPS:    10,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Life.Width, "w", c.Life.Width, "board width in cells")
	fs.IntVar(&c.Life.Height, "h", c.Life.Height, "board height in cells")
	fs.Float64Var(&c.Life.Density, "density", c.Life.Density, "chance a cell starts alive")
	fs.Int64Var(&c.Life.Seed, "seed", c.Life.Seed, "seed for the initial board (0 uses the clock)")
	fs.IntVar(&c.Rounds, "rounds", c.Rounds, "maximum number of rounds to simulate")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between rounds")
	fs.BoolVar(&c.Plain, "plain", c.Plain, "write frames to stdout instead of driving the terminal")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "plaintext pattern file to center on the board instead of a random fill")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "rounds per second (GUI)")
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Life.Width <= 0 || c.Life.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", life.ErrInvalidSize, c.Life.Width, c.Life.Height)
	}
	if c.Life.Density < 0 || c.Life.Density > 1 {
		return fmt.Errorf("density %v outside [0, 1]", c.Life.Density)
	}
	if c.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	}
	return nil
}

// NewLife builds the simulation described by the configuration.
func (c *Config) NewLife() (*life.Life, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Life.Seed == 0 {
		c.Life.Seed = core.TimeSeed()
	}
	if c.Pattern == "" {
		return life.NewWithConfig(c.Life)
	}
	pattern, err := life.LoadPattern(c.Pattern)
	if err != nil {
		return nil, err
	}
	g, err := life.Embed(c.Life.Width, c.Life.Height, pattern)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Pattern, err)
	}
	return life.NewFromGridConfig(g, c.Life), nil
}
