package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"termlife/internal/survey"
	"termlife/pkg/core"
	"termlife/pkg/sims/life"
)

func main() {
	lc := life.DefaultConfig()
	sim := flag.String("sim", "life", "simulation to survey")
	runs := flag.Int("runs", 200, "number of seeded boards")
	rounds := flag.Int("rounds", 500, "round budget per board")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first board")
	flag.IntVar(&lc.Width, "w", lc.Width, "board width in cells")
	flag.IntVar(&lc.Height, "h", lc.Height, "board height in cells")
	flag.Float64Var(&lc.Density, "density", lc.Density, "chance a cell starts alive")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Surveying %d %dx%d boards (%d workers, %d rounds, sims: %v)\n", *runs, lc.Width, lc.Height, *workers, *rounds, core.Names())
	start := time.Now()
	s, err := survey.Run(ctx, survey.Options{
		Sim:       *sim,
		Base:      lc.Map(),
		Runs:      *runs,
		Rounds:    *rounds,
		Workers:   *workers,
		FirstSeed: *seed,
	})
	if err != nil {
		log.Fatalf("survey: %v", err)
	}

	fmt.Printf("\nFinished %d boards in %s\n", len(s.Outcomes), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Settled: %d  still changing after %d rounds: %d\n", s.Converged, *rounds, len(s.Outcomes)-s.Converged-s.Failed)
	if s.Failed > 0 {
		for _, o := range s.Outcomes {
			if o.Err != nil {
				log.Printf("seed %d: %v", o.Seed, o.Err)
			}
		}
		fmt.Printf("Failed to build: %d\n", s.Failed)
	}
	if s.Converged > 0 {
		fmt.Printf("Rounds to settle: min=%d max=%d mean=%.1f\n", s.MinRounds, s.MaxRounds, s.Mean)
	}
}
