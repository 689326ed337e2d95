package ui

import (
	"image"
	"strconv"

	"termlife/pkg/core"
)

type hudControlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func controlStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

func clampControl(ctrl core.ParameterControl, v float64) float64 {
	if ctrl.HasMin && v < ctrl.Min {
		v = ctrl.Min
	}
	if ctrl.HasMax && v > ctrl.Max {
		v = ctrl.Max
	}
	return v
}

// canAdjust reports whether one step in direction stays inside the bounds.
func canAdjust(state *hudControlState, direction int) bool {
	if state == nil || direction == 0 || state.control.Type != core.ParamTypeFloat {
		return false
	}
	target := state.floatValue + float64(direction)*controlStep(state.control)
	const eps = 1e-9
	if state.control.HasMin && direction < 0 && target < state.control.Min-eps {
		return false
	}
	if state.control.HasMax && direction > 0 && target > state.control.Max+eps {
		return false
	}
	return true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := controlStep(ctrl)
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
