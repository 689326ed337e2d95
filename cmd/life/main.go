package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"termlife/internal/app"
	"termlife/internal/term"
	"termlife/pkg/core"
	"termlife/pkg/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := cfg.NewLife()
	if err != nil {
		log.Fatalf("setting up board: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := run(ctx, cfg, sim)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	if !cfg.Plain {
		fmt.Printf("%s: %d rounds, %d alive, seed %d", term.Title, res.Rounds, res.Population, cfg.Life.Seed)
		if res.Converged {
			fmt.Printf(" (%s)", term.GameOver)
		}
		fmt.Println()
	}
}

func run(ctx context.Context, cfg *app.Config, sim *life.Life) (app.Result, error) {
	if cfg.Plain {
		return app.Run(ctx, sim, term.NewPlain(os.Stdout, true), cfg.Rounds, core.NewFixedStep(cfg.Delay))
	}
	scr, err := term.OpenScreen()
	if err != nil {
		return app.Result{}, err
	}
	defer scr.Close()
	return app.RunScreen(ctx, scr, sim, cfg)
}
