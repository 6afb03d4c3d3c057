package sim

import (
	"strconv"

	"cellsim/internal/core"
)

// Parameters reports the engine's configuration and live controls.
func (e *Engine) Parameters() core.ParameterSnapshot {
	size := e.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				intParam("seed", "Seed", int(e.cfg.Seed)),
				stringParam("rule", "Rule", e.cfg.Rule),
			},
		},
		{
			Name: "Clock",
			Params: []core.Parameter{
				intParam("tps", "Ticks per second", e.cfg.TPS),
				intParam("season_ticks", "Season length", e.cfg.SeasonTicks),
				intParam("max_catchup", "Catch-up cap", e.cfg.MaxCatchUp),
			},
		},
		{
			Name: "Controls",
			Params: []core.Parameter{
				floatParam("gravity", "Gravity", float64(e.gravity)),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{e.gravityControl()}
}

func (e *Engine) gravityControl() core.ParameterControl {
	return core.ParameterControl{
		Key:    "gravity",
		Label:  "Gravity",
		Type:   core.ParamTypeFloat,
		Step:   0.1,
		Min:    e.cfg.GravityMin,
		Max:    e.cfg.GravityMax,
		HasMin: true,
		HasMax: true,
	}
}

// SetFloatParameter updates a live control. Unknown keys report false.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "gravity":
		e.SetGravity(float32(value))
		return true
	default:
		return false
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 2, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
