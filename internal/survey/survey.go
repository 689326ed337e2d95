// Package survey runs many independently seeded boards and summarizes how
// long they take to settle.
package survey

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync"

	"termlife/pkg/core"
)

// Options controls a survey.
type Options struct {
	Sim       string
	Base      map[string]string
	Runs      int
	Rounds    int
	Workers   int
	FirstSeed int64
}

// Outcome records a single seeded run. Err is set when the board could not be
// built; such runs are excluded from the statistics.
type Outcome struct {
	Seed      int64
	Rounds    int
	Converged bool
	Err       error
}

// Summary aggregates the outcomes of a survey.
type Summary struct {
	Outcomes  []Outcome
	Converged int
	Failed    int
	MinRounds int
	MaxRounds int
	Mean      float64
}

// Run simulates opts.Runs boards with consecutive seeds across a worker pool.
// The sim must report convergence and count rounds.
func Run(ctx context.Context, opts Options) (Summary, error) {
	factory, ok := core.Sims()[opts.Sim]
	if !ok {
		return Summary{}, fmt.Errorf("unknown sim %q", opts.Sim)
	}
	if opts.Runs <= 0 || opts.Rounds <= 0 {
		return Summary{}, fmt.Errorf("runs and rounds must be positive, got %d and %d", opts.Runs, opts.Rounds)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	// Fail on bad configuration before starting workers.
	probe, err := factory(withSeed(opts.Base, opts.FirstSeed))
	if err != nil {
		return Summary{}, err
	}
	if _, ok := probe.(core.Settler); !ok {
		return Summary{}, fmt.Errorf("sim %q does not report convergence", opts.Sim)
	}

	jobs := make(chan int64)
	results := make(chan Outcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				sim, err := factory(withSeed(opts.Base, seed))
				if err != nil {
					results <- Outcome{Seed: seed, Err: err}
					continue
				}
				results <- runOne(sim, seed, opts.Rounds)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for i := 0; i < opts.Runs; i++ {
			select {
			case jobs <- opts.FirstSeed + int64(i):
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []Outcome
	for res := range results {
		all = append(all, res)
	}
	if err := ctx.Err(); err != nil {
		return Summarize(all), err
	}
	return Summarize(all), nil
}

func runOne(sim core.Sim, seed int64, rounds int) Outcome {
	settler := sim.(core.Settler)
	out := Outcome{Seed: seed}
	for out.Rounds < rounds {
		sim.Step()
		out.Rounds++
		if settler.Converged() {
			out.Converged = true
			break
		}
	}
	return out
}

func withSeed(base map[string]string, seed int64) map[string]string {
	cfg := make(map[string]string, len(base)+1)
	for k, v := range base {
		cfg[k] = v
	}
	cfg["seed"] = strconv.FormatInt(seed, 10)
	return cfg
}

// Summarize sorts outcomes by seed and computes statistics over the runs
// that converged.
func Summarize(outcomes []Outcome) Summary {
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].Seed < outcomes[j].Seed })
	s := Summary{Outcomes: outcomes, MinRounds: math.MaxInt}
	total := 0
	for _, o := range outcomes {
		if o.Err != nil {
			s.Failed++
			continue
		}
		if !o.Converged {
			continue
		}
		s.Converged++
		total += o.Rounds
		s.MinRounds = min(s.MinRounds, o.Rounds)
		s.MaxRounds = max(s.MaxRounds, o.Rounds)
	}
	if s.Converged == 0 {
		s.MinRounds = 0
		return s
	}
	s.Mean = float64(total) / float64(s.Converged)
	return s
}
