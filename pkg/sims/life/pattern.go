package life

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ReadPattern parses a plaintext pattern: one row per line, '!' starts a
// comment line, and short rows are padded with dead cells.
func ReadPattern(r io.Reader) (*Grid, error) {
	var rows []string
	width := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		rows = append(rows, line)
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	for i, row := range rows {
		if pad := width - utf8.RuneCountInString(row); pad > 0 {
			rows[i] = row + strings.Repeat(string(DeadRune), pad)
		}
	}
	return ParseGrid(rows...)
}

// LoadPattern reads a plaintext pattern file.
func LoadPattern(path string) (*Grid, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	g, err := ReadPattern(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Embed returns a w x h grid with pattern centered on an otherwise dead board.
func Embed(w, h int, pattern *Grid) (*Grid, error) {
	g, err := newGrid(w, h)
	if err != nil {
		return nil, err
	}
	if pattern.w > w || pattern.h > h {
		return nil, fmt.Errorf("%w: %dx%d pattern does not fit %dx%d board", ErrPattern, pattern.w, pattern.h, w, h)
	}
	ox, oy := (w-pattern.w)/2, (h-pattern.h)/2
	for y := 0; y < pattern.h; y++ {
		copy(g.cells[(oy+y)*w+ox:], pattern.cells[y*pattern.w:(y+1)*pattern.w])
	}
	return g, nil
}
