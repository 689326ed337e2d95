package life

import (
	"termlife/pkg/core"
)

// Next applies Conway's rule to every cell of g and returns the following
// generation. Cells beyond the edge count as dead; there is no wrapping.
func Next(g *Grid) *Grid {
	w, h := g.w, g.h
	nxt := &Grid{w: w, h: h, cells: make([]uint8, len(g.cells))}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := g.Neighbors(x, y)
			idx := y*w + x
			alive := g.cells[idx] == 1
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt.cells[idx] = 1
			}
		}
	}
	return nxt
}

// Converged reports whether two consecutive generations are identical.
// Oscillators and gliders never converge.
func Converged(prev, cur *Grid) bool {
	if prev == nil || cur == nil {
		return false
	}
	return prev.Equal(cur)
}

// Life implements Conway's Game of Life on a bounded grid.
type Life struct {
	cfg   Config
	start *Grid
	cur   *Grid
	prev  *Grid
	round int
}

// New returns a Life simulation with the provided dimensions and a freshly
// randomized grid.
func New(w, h int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = core.TimeSeed()
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation seeded from cfg.
func NewWithConfig(cfg Config) (*Life, error) {
	g, err := RandomGrid(cfg.Width, cfg.Height, cfg.Density, core.NewRNG(cfg.Seed).Source())
	if err != nil {
		return nil, err
	}
	return &Life{cfg: cfg, cur: g}, nil
}

// NewFromGrid returns a Life simulation starting at the given generation.
func NewFromGrid(g *Grid) *Life {
	return NewFromGridConfig(g, DefaultConfig())
}

// NewFromGridConfig returns a Life simulation starting at g that reports cfg's
// seed and density. Reset returns to g instead of drawing a random board.
func NewFromGridConfig(g *Grid, cfg Config) *Life {
	cfg.Width, cfg.Height = g.w, g.h
	return &Life{cfg: cfg, start: g, cur: g}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Grid returns the current generation.
func (l *Life) Grid() *Grid { return l.cur }

// Previous returns the generation replaced by the last Advance, or nil before
// the first round.
func (l *Life) Previous() *Grid { return l.prev }

// Round returns the number of rounds advanced since construction or Reset.
func (l *Life) Round() int { return l.round }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Config returns the configuration the simulation was built from.
func (l *Life) Config() Config { return l.cfg }

// Advance computes the next generation, makes it current and returns the
// generation it replaced.
func (l *Life) Advance() *Grid {
	l.prev = l.cur
	l.cur = Next(l.cur)
	l.round++
	return l.prev
}

// Step advances the simulation by one generation.
func (l *Life) Step() { l.Advance() }

// Converged reports whether the last round left the grid unchanged.
func (l *Life) Converged() bool { return Converged(l.prev, l.cur) }

// Reset randomizes the board using the provided seed. A simulation built from
// a grid goes back to that grid.
func (l *Life) Reset(seed int64) {
	l.cfg.Seed = seed
	if l.start != nil {
		l.cur, l.prev, l.round = l.start, nil, 0
		return
	}
	s := l.cur.Size()
	g, err := RandomGrid(s.W, s.H, l.cfg.Density, core.NewRNG(seed).Source())
	if err != nil {
		return
	}
	l.cur, l.prev, l.round = g, nil, 0
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
