// Package term draws simulation frames as text, either to a tcell screen or
// to a plain writer using ANSI escapes.
package term

import (
	"termlife/pkg/core"
	"termlife/pkg/sims/life"
)

// Title is printed above every frame.
const Title = "Conway's Game of Life"

// GameOver is printed below the final frame once the board stops changing.
const GameOver = "Game over"

// Board is the read-only view of a generation a renderer needs.
type Board interface {
	Size() core.Size
	Alive(x, y int) bool
}

// Frame is one rendered round.
type Frame struct {
	Round     int
	Board     Board
	Converged bool
}

// Renderer draws frames.
type Renderer interface {
	Render(f Frame) error
}

func cellRune(b Board, x, y int) rune {
	if b.Alive(x, y) {
		return life.AliveRune
	}
	return life.DeadRune
}
