package core

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
)

func TestChanceSaturates(t *testing.T) {
	r := NewRNG(1).Source()
	for i := 0; i < 100; i++ {
		if Chance(r, 0) || Chance(r, -1) {
			t.Fatal("Chance(<=0) returned true")
		}
		if !Chance(r, 1) || !Chance(r, 2) {
			t.Fatal("Chance(>=1) returned false")
		}
	}
}

func TestFillBinaryDeterministic(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	FillBinary(NewRNG(3).Source(), a, 0.5)
	FillBinary(NewRNG(3).Source(), b, 0.5)
	if !slices.Equal(a, b) {
		t.Fatal("same seed filled different buffers")
	}
	for i, v := range a {
		if v > 1 {
			t.Fatalf("cell %d = %d, want 0 or 1", i, v)
		}
	}
}

func TestFixedStepWaits(t *testing.T) {
	fs := NewFixedStep(20 * time.Millisecond)
	start := time.Now()
	if err := fs.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if err := fs.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Fatalf("two waits took %s, want at least 40ms", elapsed)
	}
}

func TestFixedStepCancelled(t *testing.T) {
	fs := NewFixedStep(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := fs.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err=%v, want DeadlineExceeded", err)
	}
}

func TestFixedStepDisabled(t *testing.T) {
	fs := NewFixedStep(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		if err := fs.Wait(context.Background()); err != nil {
			t.Fatalf("Wait: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("disabled pacing took %s", elapsed)
	}
}

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("zz-test", nil)
	if _, ok := Sims()[""]; ok {
		t.Fatal("empty name registered")
	}
	if _, ok := Sims()["zz-test"]; ok {
		t.Fatal("nil factory registered")
	}
	Register("zz-test", func(map[string]string) (Sim, error) { return nil, nil })
	defer delete(sims, "zz-test")
	if !slices.Contains(Names(), "zz-test") {
		t.Fatalf("Names() = %v", Names())
	}
}

func TestParameterLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "w", Value: "3"}}},
		{Name: "B", Params: []Parameter{{Key: "density", Value: "0.20"}}},
	}}
	if p, ok := snap.Lookup("density"); !ok || p.Value != "0.20" {
		t.Fatalf("Lookup(density) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key found")
	}
}
