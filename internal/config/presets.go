package config

import (
	"errors"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// Presets adjust sampling and coloring only; window and render settings
// always come from the defaults or the config file.
var Presets = map[string]Preset{
	"default":  {Downsample: 10, UseColor: false, Description: "every 10th point, elevation colors"},
	"overview": {Downsample: 100, UseColor: false, Description: "every 100th point for very large tiles"},
	"full":     {Downsample: 1, UseColor: false, Description: "all points, elevation colors"},
	"rgb":      {Downsample: 10, UseColor: true, Description: "every 10th point, native colors when present"},
	"rgb-full": {Downsample: 1, UseColor: true, Description: "all points, native colors when present"},
}

type Preset struct {
	Downsample  int
	UseColor    bool
	Description string
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the preset onto cfg.
func (p Preset) Apply(cfg *Config) {
	cfg.Downsample = p.Downsample
	cfg.UseColor = p.UseColor
}
