package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultInput      = "mocked_powerline_protection.laz"
	DefaultDownsample = 10
	DefaultWidth      = 1200
	DefaultHeight     = 900
	DefaultPointSize  = 2.0
	DefaultFovY       = 60.0
	DefaultColorDepth = 16
	DefaultLASzip     = "laszip"
)

// DefaultBackground is a dark gray, RGB in [0,1].
var DefaultBackground = [3]float64{0.2, 0.2, 0.2}

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Input      string       `yaml:"input"`
	Downsample int          `yaml:"downsample"`
	UseColor   bool         `yaml:"use_color"`
	ColorDepth int          `yaml:"color_depth"`
	LASzip     string       `yaml:"laszip"`
	Window     WindowConfig `yaml:"window"`
	Render     RenderConfig `yaml:"render"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type RenderConfig struct {
	PointSize  float64    `yaml:"point_size"`
	Background [3]float64 `yaml:"background"`
	LightOn    bool       `yaml:"light_on"`
	ShowAxes   bool       `yaml:"show_axes"`
	FovY       float64    `yaml:"fov_y"`
}

func DefaultConfig() *Config {
	return &Config{
		Input:      DefaultInput,
		Downsample: DefaultDownsample,
		UseColor:   false,
		ColorDepth: DefaultColorDepth,
		LASzip:     DefaultLASzip,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  "lazview",
		},
		Render: RenderConfig{
			PointSize:  DefaultPointSize,
			Background: DefaultBackground,
			LightOn:    true,
			ShowAxes:   true,
			FovY:       DefaultFovY,
		},
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalidConfig)
	}
	if c.Downsample <= 0 {
		return fmt.Errorf("%w: downsample must be positive, got %d", ErrInvalidConfig, c.Downsample)
	}
	if c.ColorDepth != 8 && c.ColorDepth != 16 {
		return fmt.Errorf("%w: color_depth must be 8 or 16, got %d", ErrInvalidConfig, c.ColorDepth)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Render.PointSize <= 0 {
		return fmt.Errorf("%w: point_size must be positive", ErrInvalidConfig)
	}
	if c.Render.FovY <= 0 || c.Render.FovY >= 180 {
		return fmt.Errorf("%w: fov_y must be in (0, 180)", ErrInvalidConfig)
	}
	for _, v := range c.Render.Background {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: background channels must be in [0,1]", ErrInvalidConfig)
		}
	}
	return nil
}
