package life

import (
	"strconv"

	"termlife/pkg/core"
)

// Parameters reports the values the board was seeded with.
func (l *Life) Parameters() core.ParameterSnapshot {
	size := l.Size()
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "World",
				Params: []core.Parameter{
					intParam("w", "Width", size.W),
					intParam("h", "Height", size.H),
					{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(l.cfg.Seed, 10)},
				},
			},
			{
				Name: "Seeding",
				Params: []core.Parameter{
					floatParam("density", "Density", l.cfg.Density),
				},
			},
			{
				Name: "State",
				Params: []core.Parameter{
					intParam("round", "Round", l.round),
					intParam("population", "Population", l.cur.Population()),
				},
			},
		},
	}
}

// ParameterControls lists the values that can be tuned while running. Density
// changes apply on the next Reset.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a float parameter by key.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		if value < 0 || value > 1 {
			return false
		}
		l.cfg.Density = value
		return true
	}
	return false
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', 2, 64)}
}
