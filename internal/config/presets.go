package config

var Presets = map[string]map[string]*Config{
	"rope": {
		"hang": {
			Scenario: "rope", Dt: DefaultDt, Duration: 10.0,
			Gravity: 0.5, Friction: 0.05, Stiffness: 4, Tear: -1,
			Rope: RopeConfig{Segments: 16, Length: 200},
		},
		"tearaway": {
			Scenario: "rope", Dt: DefaultDt, Duration: 20.0,
			Gravity: 2.0, Friction: 0.02, Stiffness: 4, Tear: 1.5,
			Rope: RopeConfig{Segments: 24, Length: 240},
			Wind: WindConfig{Enabled: true, X: 120, Y: 120, Radius: 400, DirX: 1, Peak: 8, Period: 3},
		},
	},
	"cloth": {
		"drape": {
			Scenario: "cloth", Dt: DefaultDt, Duration: 10.0,
			Gravity: 0.5, Friction: 0.05, Stiffness: 3, Tear: -1,
			Cloth: ClothConfig{Cols: 12, Rows: 8, Spacing: 15},
		},
		"banner": {
			Scenario: "cloth", Dt: DefaultDt, Duration: 30.0,
			Gravity: 0.3, Friction: 0.03, Stiffness: 3, Tear: 2.0,
			Cloth: ClothConfig{Cols: 20, Rows: 10, Spacing: 12},
			Wind:  WindConfig{Enabled: true, X: 120, Y: 80, Radius: 500, DirX: 1, DirY: 0.2, Peak: 6, Period: 2},
		},
	},
	"box": {
		"tumble": {
			Scenario: "box", Dt: DefaultDt, Duration: 10.0,
			Gravity: 5.0, Friction: 0.02, Stiffness: 6, Tear: -1,
			Box: BoxConfig{Size: 60},
		},
		"jelly": {
			Scenario: "box", Dt: DefaultDt, Duration: 15.0,
			Gravity: 3.0, Friction: 0.05, Stiffness: 2, Tear: -1,
			Box:     BoxConfig{Size: 80},
			Attract: AttractConfig{Enabled: true, X: 0, Y: 0, Radius: 200, Strength: 2},
		},
	},
}

func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	return names
}
