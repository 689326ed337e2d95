package life

import (
	"errors"
	"testing"

	"termlife/pkg/core"
)

func mustParse(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := ParseGrid(rows...)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}

func TestBlockStillLife(t *testing.T) {
	block := mustParse(t,
		"....",
		".xx.",
		".xx.",
		"....",
	)
	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		if n := block.Neighbors(p[0], p[1]); n != 3 {
			t.Fatalf("live cell (%d,%d) has %d neighbors, want 3", p[0], p[1], n)
		}
	}
	dead := map[[2]int]int{
		{0, 0}: 1, {1, 0}: 2, {2, 0}: 2, {3, 0}: 1,
		{0, 1}: 2, {3, 1}: 2,
		{0, 2}: 2, {3, 2}: 2,
		{0, 3}: 1, {1, 3}: 2, {2, 3}: 2, {3, 3}: 1,
	}
	for p, want := range dead {
		if n := block.Neighbors(p[0], p[1]); n != want {
			t.Fatalf("dead cell (%d,%d) has %d neighbors, want %d", p[0], p[1], n, want)
		}
	}

	next := Next(block)
	if !next.Equal(block) {
		t.Fatalf("block changed:\n%s", next)
	}
	if !Converged(block, next) {
		t.Fatal("still life not reported as converged")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	horizontal := mustParse(t,
		".....",
		".....",
		".xxx.",
		".....",
		".....",
	)
	vertical := mustParse(t,
		".....",
		"..x..",
		"..x..",
		"..x..",
		".....",
	)

	l := NewFromGrid(horizontal)
	prev := l.Advance()
	if !prev.Equal(horizontal) {
		t.Fatal("Advance did not return the replaced generation")
	}
	if !l.Grid().Equal(vertical) {
		t.Fatalf("after first step:\n%s", l.Grid())
	}
	if l.Converged() {
		t.Fatal("blinker reported converged after first step")
	}

	l.Advance()
	if !l.Grid().Equal(horizontal) {
		t.Fatalf("after second step:\n%s", l.Grid())
	}
	if l.Converged() || Converged(vertical, horizontal) || Converged(horizontal, vertical) {
		t.Fatal("blinker phases reported converged")
	}
	if l.Round() != 2 {
		t.Fatalf("Round() = %d, want 2", l.Round())
	}
}

func TestEdgesDoNotWrap(t *testing.T) {
	top := mustParse(t,
		"xxx",
		"...",
		"...",
	)
	want := mustParse(t,
		".x.",
		".x.",
		"...",
	)
	if got := Next(top); !got.Equal(want) {
		t.Fatalf("edge row evolved to:\n%s\nwant:\n%s", got, want)
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 7}, {16, 9}, {80, 30}} {
		g, err := NewGrid(dims[0], dims[1])
		if err != nil {
			t.Fatalf("NewGrid: %v", err)
		}
		l := NewFromGrid(g)
		if l.Converged() {
			t.Fatal("converged before any round")
		}
		l.Advance()
		l.Advance()
		if l.Grid().Population() != 0 {
			t.Fatalf("%dx%d empty grid grew %d cells", dims[0], dims[1], l.Grid().Population())
		}
		if !Converged(l.Previous(), l.Grid()) || !l.Converged() {
			t.Fatalf("%dx%d empty grid not converged", dims[0], dims[1])
		}
	}
}

func TestNextIsDeterministicAndPure(t *testing.T) {
	g, err := RandomGrid(32, 24, 0.3, core.NewRNG(5).Source())
	if err != nil {
		t.Fatalf("RandomGrid: %v", err)
	}
	before := g.String()
	a := Next(g)
	b := Next(g)
	if !a.Equal(b) {
		t.Fatal("Next produced different results for the same input")
	}
	if g.String() != before {
		t.Fatal("Next modified its input")
	}
	if s := a.Size(); s != g.Size() {
		t.Fatalf("Next changed size to %+v", s)
	}
}

func TestNewValidatesSize(t *testing.T) {
	if _, err := New(0, 10); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("New(0,10) err=%v, want ErrInvalidSize", err)
	}
	l, err := New(12, 5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s := l.Size(); s.W != 12 || s.H != 5 {
		t.Fatalf("Size() = %+v", s)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 20, 10
	l, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	initial := l.Grid()

	l.Step()
	l.Step()
	l.Reset(cfg.Seed)
	if !l.Grid().Equal(initial) {
		t.Fatal("Reset with the config seed did not rebuild the initial grid")
	}
	if l.Round() != 0 || l.Previous() != nil || l.Converged() {
		t.Fatal("Reset did not clear round state")
	}
}

func TestResetRestoresStartingGrid(t *testing.T) {
	glider := mustParse(t,
		".x...",
		"..x..",
		"xxx..",
		".....",
		".....",
	)
	cfg := DefaultConfig()
	cfg.Seed, cfg.Density = 7, 0.9
	l := NewFromGridConfig(glider, cfg)
	if got := l.Config(); got.Seed != 7 || got.Density != 0.9 || got.Width != 5 || got.Height != 5 {
		t.Fatalf("Config() = %+v", got)
	}
	l.Step()
	l.Step()
	l.Reset(7)
	if !l.Grid().Equal(glider) {
		t.Fatalf("Reset did not restore the starting grid:\n%s", l.Grid())
	}
	if l.Round() != 0 || l.Previous() != nil {
		t.Fatal("Reset did not clear round state")
	}
	if l.Config().Seed != 7 {
		t.Fatalf("seed = %d, want 7", l.Config().Seed)
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life not registered")
	}
	sim, err := factory(map[string]string{"w": "10", "h": "4", "density": "0"})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if s := sim.Size(); s.W != 10 || s.H != 4 {
		t.Fatalf("Size() = %+v", s)
	}
	for i, c := range sim.Cells() {
		if c != 0 {
			t.Fatalf("cell %d alive with density 0", i)
		}
	}
	if _, ok := sim.(core.Settler); !ok {
		t.Fatal("life does not report convergence")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "12", "h": "-3", "density": "0.5", "seed": "x"})
	def := DefaultConfig()
	if c.Width != 12 || c.Height != def.Height || c.Density != 0.5 || c.Seed != def.Seed {
		t.Fatalf("FromMap = %+v", c)
	}
	if got := FromMap(c.Map()); got != c {
		t.Fatalf("FromMap(Map()) = %+v, want %+v", got, c)
	}
}

func TestParameters(t *testing.T) {
	l := NewFromGrid(mustParse(t, "xx", "x."))
	p, ok := l.Parameters().Lookup("population")
	if !ok || p.Value != "3" {
		t.Fatalf("population param = %+v, ok=%v", p, ok)
	}
	if !l.SetFloatParameter("density", 0.4) {
		t.Fatal("density update rejected")
	}
	if l.SetFloatParameter("density", 2) || l.SetFloatParameter("speed", 1) {
		t.Fatal("invalid update accepted")
	}
	if d, _ := l.Parameters().Lookup("density"); d.Value != "0.40" {
		t.Fatalf("density param = %q", d.Value)
	}
}
