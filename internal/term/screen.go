package term

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen renders frames onto a tcell screen.
type Screen struct {
	s     tcell.Screen
	alive tcell.Style
	dead  tcell.Style
	text  tcell.Style

	once sync.Once
	keys chan *tcell.EventKey
}

// OpenScreen initializes the terminal and returns a renderer for it.
func OpenScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return NewScreen(s), nil
}

// NewScreen wraps an initialized tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	s.HideCursor()
	s.Clear()
	return &Screen{
		s:     s,
		alive: tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		dead:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		text:  tcell.StyleDefault,
	}
}

// Render draws the frame, clipped to the terminal size.
func (s *Screen) Render(f Frame) error {
	s.s.Clear()
	row := 0
	s.line(row, Title)
	row++
	s.line(row, "Round "+strconv.Itoa(f.Round))
	row += 2

	size := f.Board.Size()
	cols, rows := s.s.Size()
	for y := 0; y < size.H && row+y < rows; y++ {
		for x := 0; x < size.W && x < cols; x++ {
			style := s.dead
			if f.Board.Alive(x, y) {
				style = s.alive
			}
			s.s.SetContent(x, row+y, cellRune(f.Board, x, y), nil, style)
		}
	}
	if f.Converged {
		s.line(row+size.H+1, GameOver)
	}
	s.s.Show()
	return nil
}

func (s *Screen) line(y int, text string) {
	for x, r := range []rune(text) {
		s.s.SetContent(x, y, r, nil, s.text)
	}
}

// Keys returns key events read from the terminal. Resize events redraw the
// screen. The channel is closed once the screen is closed.
func (s *Screen) Keys() <-chan *tcell.EventKey {
	s.once.Do(func() {
		s.keys = make(chan *tcell.EventKey, 8)
		go func() {
			defer close(s.keys)
			for {
				switch ev := s.s.PollEvent().(type) {
				case nil:
					return
				case *tcell.EventResize:
					s.s.Sync()
				case *tcell.EventKey:
					s.keys <- ev
				}
			}
		}()
	})
	return s.keys
}

// IsQuit reports whether ev asks the program to stop.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.s.Fini()
}
