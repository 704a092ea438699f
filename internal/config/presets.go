package config

import "sort"

// Presets are representative water masses for quick evaluation. SA in
// g/kg, CT in degC, P at the core depth of the water mass in dbar.
var Presets = map[string]*Config{
	"surface-tropical": {
		Variant: "bsq", SA: 35.5, CT: 28.0, P: 0, PMax: 500, Steps: 50,
	},
	"med-outflow": {
		Variant: "bsq", SA: 38.4, CT: 13.0, P: 1100, PMax: 2000, Steps: 100,
	},
	"nadw": {
		Variant: "stif", SA: 34.95, CT: 3.0, P: 2500, PMax: 4000, Steps: 100,
	},
	"aabw": {
		Variant: "stif", SA: 34.67, CT: -0.5, P: 4500, PMax: 6000, Steps: 120,
	},
	"arctic-halocline": {
		Variant: "vol75", SA: 33.5, CT: -1.5, P: 100, PMax: 800, Steps: 80,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
