package config

import "github.com/umg-minai/simva/internal/physio"

func pressure(v float64) *float64 { return &v }

func preset(agent physio.Agent, mod func(*Config)) *Config {
	cfg := DefaultConfig()
	cfg.Agent = string(agent)
	mod(cfg)
	return cfg
}

// Presets are ready-made scenarios keyed by agent, then preset name.
var Presets = map[string]map[string]*Config{
	string(physio.DiethylEther): {
		// Cowles et al. (1973), Table 4 row 1.
		"table4": preset(physio.DiethylEther, func(c *Config) {
			c.Pinsp = pressure(12)
		}),
		"humidified": preset(physio.DiethylEther, func(c *Config) {
			c.Pinsp = pressure(12)
			c.Humidify = true
		}),
		"concentration": preset(physio.DiethylEther, func(c *Config) {
			c.Pinsp = pressure(12)
			c.ConcentrationEffect = true
		}),
		"shunted": preset(physio.DiethylEther, func(c *Config) {
			c.Pinsp = pressure(12)
			c.ShuntFraction = 0.1
		}),
	},
	string(physio.NitrousOxide): {
		"induction": preset(physio.NitrousOxide, func(c *Config) {
			c.Pinsp = pressure(80)
			c.TotalTime = 20
		}),
	},
	string(physio.Halothane): {
		"induction": preset(physio.Halothane, func(c *Config) {
			c.Pinsp = pressure(0.8)
			c.TotalTime = 30
		}),
	},
}

// GetPreset returns nil when the agent or preset is unknown.
func GetPreset(agent, name string) *Config {
	agentPresets, ok := Presets[agent]
	if !ok {
		return nil
	}
	cfg, ok := agentPresets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(agent string) []string {
	agentPresets, ok := Presets[agent]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(agentPresets))
	for name := range agentPresets {
		names = append(names, name)
	}
	return names
}
