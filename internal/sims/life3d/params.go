package life3d

import "life3d/internal/core"

const (
	paramMin     = "min_neighbors"
	paramMax     = "max_neighbors"
	paramBirth   = "birth_count"
	paramDensity = "density"
)

// Parameters reports the volume and rule values for the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	s := e.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Volume",
			Params: []core.Parameter{
				core.IntParam("x", "Width", s.X),
				core.IntParam("y", "Height", s.Y),
				core.IntParam("z", "Depth", s.Z),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.IntParam(paramMin, "Min neighbors", e.rules.MinNeighbors),
				core.IntParam(paramMax, "Max neighbors", e.rules.MaxNeighbors),
				core.IntParam(paramBirth, "Birth count", e.rules.BirthCount),
				core.FloatParam(paramDensity, "Seed density", e.rules.Density),
			},
		},
	}}
}

// ParameterControls lists the thresholds adjustable at runtime.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: paramMin, Label: "Min neighbors", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxNeighbors},
		{Key: paramMax, Label: "Max neighbors", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxNeighbors},
		{Key: paramBirth, Label: "Birth count", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxNeighbors},
		{Key: paramDensity, Label: "Seed density", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 1},
	}
}

// SetIntParameter updates one neighbor threshold, clamping it into range.
func (e *Engine) SetIntParameter(key string, value int) bool {
	r := e.rules
	switch key {
	case paramMin:
		r.SetMinNeighbors(value)
	case paramMax:
		r.SetMaxNeighbors(value)
	case paramBirth:
		r.SetBirthCount(value)
	default:
		return false
	}
	e.Configure(r.MinNeighbors, r.MaxNeighbors, r.BirthCount, r.Density)
	return true
}

// SetFloatParameter updates the seeding density. The new value applies on the
// next Seed.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	if key != paramDensity {
		return false
	}
	r := e.rules
	e.Configure(r.MinNeighbors, r.MaxNeighbors, r.BirthCount, value)
	return true
}
