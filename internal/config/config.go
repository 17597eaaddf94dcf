package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt        = 1.0 / 60.0
	DefaultDuration  = 10.0
	DefaultGravity   = 0.5
	DefaultFriction  = 0.05
	DefaultStiffness = 4
	DefaultSegments  = 16
	DefaultLength    = 200.0
	DefaultSpacing   = 15.0
)

type Config struct {
	Scenario  string        `yaml:"scenario"`
	Dt        float64       `yaml:"dt"`
	Duration  float64       `yaml:"duration"`
	Gravity   float64       `yaml:"gravity"`
	Friction  float64       `yaml:"friction"`
	Stiffness int           `yaml:"stiffness"`
	Tear      float64       `yaml:"tear"` // stretch ratio; -1 disables
	Rope      RopeConfig    `yaml:"rope"`
	Cloth     ClothConfig   `yaml:"cloth"`
	Box       BoxConfig     `yaml:"box"`
	Wind      WindConfig    `yaml:"wind"`
	Attract   AttractConfig `yaml:"attract"`
}

type RopeConfig struct {
	Segments int     `yaml:"segments"`
	Length   float64 `yaml:"length"`
}

type ClothConfig struct {
	Cols    int     `yaml:"cols"`
	Rows    int     `yaml:"rows"`
	Spacing float64 `yaml:"spacing"`
}

type BoxConfig struct {
	Size float64 `yaml:"size"`
}

type WindConfig struct {
	Enabled bool    `yaml:"enabled"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Radius  float64 `yaml:"radius"`
	DirX    float64 `yaml:"dir_x"`
	DirY    float64 `yaml:"dir_y"`
	Peak    float64 `yaml:"peak"`
	Period  float64 `yaml:"period"`
}

type AttractConfig struct {
	Enabled  bool    `yaml:"enabled"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Radius   float64 `yaml:"radius"`
	Strength float64 `yaml:"strength"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario:  "rope",
		Dt:        DefaultDt,
		Duration:  DefaultDuration,
		Gravity:   DefaultGravity,
		Friction:  DefaultFriction,
		Stiffness: DefaultStiffness,
		Tear:      -1,
		Rope: RopeConfig{
			Segments: DefaultSegments,
			Length:   DefaultLength,
		},
		Cloth: ClothConfig{
			Cols:    12,
			Rows:    8,
			Spacing: DefaultSpacing,
		},
		Box: BoxConfig{
			Size: 60,
		},
		Wind: WindConfig{
			Radius: 300,
			DirX:   1,
			Peak:   4,
			Period: 2,
		},
	}
}

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
