package texture

import (
	"strconv"

	"texca/internal/core"
)

// Parameters reports the world's configuration and progress for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.cfg
	patterns := 0
	sharpness := 0.0
	if w.model != nil {
		patterns = w.model.Patterns
		sharpness = w.model.Kernel.Sharpness
	}
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("grid_size", "Grid size", w.size),
				int64Param("seed", "Seed", cfg.Seed),
				uintParam("steps", "Steps", w.steps),
			},
		},
		{
			Name: "Memory",
			Params: []core.Parameter{
				intParam("sample_count", "Sample count", cfg.SampleCount),
				intParam("patterns", "Patterns", patterns),
			},
		},
		{
			Name: "Kernel",
			Params: []core.Parameter{
				floatParam("base_sharpness", "Base sharpness", cfg.Kernel.BaseSharpness),
				floatParam("sharpness", "Sharpness", sharpness),
				stringParam("near_color", "Near colour", cfg.Kernel.NearColor),
				stringParam("far_color", "Far colour", cfg.Kernel.FarColor),
				floatParam("w_near", "Near weight", cfg.Kernel.NearWeight),
				floatParam("w_far", "Far weight", cfg.Kernel.FarWeight),
			},
		},
		{
			Name: "Clock",
			Params: []core.Parameter{
				floatParam("timestep_seconds", "Timestep (s)", cfg.TimestepSeconds),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func uintParam(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
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
