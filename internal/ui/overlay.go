//go:build ebiten

package ui

import (
	"termlife/internal/render"
	"termlife/pkg/core"
	"termlife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type generationProvider interface {
	Grid() *life.Grid
	Previous() *life.Grid
}

// Overlay highlights the cells that changed during the last round.
type Overlay struct {
	sim         core.Sim
	scale       int
	showChanges bool
	painter     *render.GridPainter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	return &Overlay{sim: sim, scale: scale, painter: render.NewGridPainter(size.W, size.H)}
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showChanges = !o.showChanges
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showChanges {
		return
	}
	provider, ok := o.sim.(generationProvider)
	if !ok {
		return
	}
	prev := provider.Previous()
	if prev == nil {
		return
	}
	o.painter.BlitChanges(screen, prev.Cells(), provider.Grid().Cells(), render.BornColor, render.DiedColor, o.scale)
}
