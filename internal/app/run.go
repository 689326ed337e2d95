package app

import (
	"context"

	"termlife/internal/term"
	"termlife/pkg/core"
	"termlife/pkg/sims/life"
)

// Result summarizes a finished run.
type Result struct {
	Rounds     int
	Converged  bool
	Population int
}

// Run advances sim once per frame and renders every generation until the
// board stops changing, the round budget is spent or ctx is cancelled.
func Run(ctx context.Context, sim *life.Life, r term.Renderer, rounds int, pace *core.FixedStep) (Result, error) {
	var res Result
	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		sim.Advance()
		res.Rounds = round + 1
		res.Converged = sim.Converged()
		res.Population = sim.Grid().Population()

		if err := r.Render(term.Frame{Round: res.Rounds, Board: sim.Grid(), Converged: res.Converged}); err != nil {
			return res, err
		}
		if res.Converged {
			return res, nil
		}
		if err := pace.Wait(ctx); err != nil {
			return res, err
		}
	}
	return res, nil
}
