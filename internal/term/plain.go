package term

import (
	"bufio"
	"fmt"
	"io"
)

// clearScreen moves the cursor home after wiping the terminal.
const clearScreen = "\x1b[2J\x1b[1;1H"

// Plain writes frames to an io.Writer.
type Plain struct {
	w     *bufio.Writer
	clear bool
}

// NewPlain returns a renderer writing to w. When clear is set every frame is
// preceded by an ANSI clear-screen sequence.
func NewPlain(w io.Writer, clear bool) *Plain {
	return &Plain{w: bufio.NewWriter(w), clear: clear}
}

// Render writes the header, the board and, for the last frame, the game over
// line.
func (p *Plain) Render(f Frame) error {
	if p.clear {
		p.w.WriteString(clearScreen)
	}
	fmt.Fprintf(p.w, "%s\nRound %d\n\n", Title, f.Round)
	size := f.Board.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			p.w.WriteRune(cellRune(f.Board, x, y))
		}
		p.w.WriteByte('\n')
	}
	p.w.WriteByte('\n')
	if f.Converged {
		fmt.Fprintf(p.w, "%s\n\n", GameOver)
	}
	return p.w.Flush()
}
