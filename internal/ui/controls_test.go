package ui

import (
	"testing"

	"termlife/pkg/core"
)

func densityControl(v float64) *hudControlState {
	return &hudControlState{
		control:    core.ParameterControl{Key: "density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		floatValue: v,
		hasValue:   true,
	}
}

func TestCanAdjustRespectsBounds(t *testing.T) {
	if canAdjust(densityControl(0), -1) {
		t.Fatal("stepping below the minimum allowed")
	}
	if !canAdjust(densityControl(0), 1) {
		t.Fatal("stepping up from the minimum refused")
	}
	if canAdjust(densityControl(1), 1) {
		t.Fatal("stepping above the maximum allowed")
	}
	if !canAdjust(densityControl(0.95), 1) {
		t.Fatal("step landing on the maximum refused")
	}
	if canAdjust(densityControl(0.5), 0) {
		t.Fatal("zero direction accepted")
	}
}

func TestClampAndFormat(t *testing.T) {
	ctrl := densityControl(0).control
	if v := clampControl(ctrl, 1.2); v != 1 {
		t.Fatalf("clamp(1.2) = %v", v)
	}
	if v := clampControl(ctrl, -0.1); v != 0 {
		t.Fatalf("clamp(-0.1) = %v", v)
	}
	if s := formatFloat(ctrl, 0.2); s != "0.20" {
		t.Fatalf("formatFloat = %q", s)
	}
	if s := formatFloat(core.ParameterControl{Step: 0.5}, 2); s != "2.0" {
		t.Fatalf("formatFloat coarse = %q", s)
	}
}
