package app

import (
	"context"

	"termlife/internal/term"
	"termlife/pkg/core"
	"termlife/pkg/sims/life"
)

// RunScreen drives the simulation on the interactive terminal. q, Esc or
// Ctrl-C stop the run. When the board settles the last frame stays up until a
// key is pressed; keys pressed while the board was still changing do not
// count. A run that ends on the round budget returns immediately.
func RunScreen(ctx context.Context, scr *term.Screen, sim *life.Life, cfg *Config) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pressed := make(chan struct{}, 1)
	go func() {
		for ev := range scr.Keys() {
			if term.IsQuit(ev) {
				cancel()
				return
			}
			select {
			case pressed <- struct{}{}:
			default:
			}
		}
	}()

	res, err := Run(ctx, sim, scr, cfg.Rounds, core.NewFixedStep(cfg.Delay))
	if err != nil || !res.Converged {
		return res, err
	}
	select {
	case <-pressed:
	default:
	}
	select {
	case <-pressed:
	case <-ctx.Done():
	}
	return res, nil
}
