package life

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"termlife/pkg/core"
)

var (
	// ErrInvalidSize is returned when a grid dimension is not positive.
	ErrInvalidSize = errors.New("life: grid dimensions must be positive")
	// ErrPattern is returned when a textual pattern cannot be parsed.
	ErrPattern = errors.New("life: malformed pattern")
)

const (
	// AliveRune marks a live cell in patterns and rendered frames.
	AliveRune = 'x'
	// DeadRune marks a dead cell.
	DeadRune = '.'
)

// Grid is one generation of cell states stored row-major. A Grid is never
// modified after it has been returned to a caller.
type Grid struct {
	w, h  int
	cells []uint8
}

func newGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &Grid{w: w, h: h, cells: make([]uint8, w*h)}, nil
}

// NewGrid returns an all-dead grid.
func NewGrid(w, h int) (*Grid, error) {
	return newGrid(w, h)
}

// RandomGrid returns a grid where every cell is independently alive with
// probability p.
func RandomGrid(w, h int, p float64, rng *rand.Rand) (*Grid, error) {
	g, err := newGrid(w, h)
	if err != nil {
		return nil, err
	}
	core.FillBinary(rng, g.cells, p)
	return g, nil
}

// ParseGrid builds a grid from rows of 'x' (alive) and '.' (dead). 'O' and '*'
// are accepted as alive and ' ' as dead so common plaintext patterns load too.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrPattern)
	}
	w := len([]rune(rows[0]))
	g, err := newGrid(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrPattern, y, len(runes), w)
		}
		for x, r := range runes {
			switch r {
			case AliveRune, 'X', 'O', '*':
				g.cells[y*w+x] = 1
			case DeadRune, ' ':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrPattern, r, x, y)
			}
		}
	}
	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Alive reports whether the cell at (x, y) is alive. Coordinates off the grid
// are always dead.
func (g *Grid) Alive(x, y int) bool {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return false
	}
	return g.cells[y*g.w+x] == 1
}

// Neighbors counts live cells in the Moore neighborhood of (x, y).
func (g *Grid) Neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// Cells returns a copy of the cell states as 0/1 values in row-major order.
func (g *Grid) Cells() []uint8 {
	return append([]uint8(nil), g.cells...)
}

func (g *Grid) writeRow(b *strings.Builder, y int) {
	for _, c := range g.cells[y*g.w : (y+1)*g.w] {
		if c == 1 {
			b.WriteRune(AliveRune)
			continue
		}
		b.WriteRune(DeadRune)
	}
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		g.writeRow(&b, y)
	}
	return b.String()
}
