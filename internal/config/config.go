package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/umg-minai/simva/internal/physio"
	"github.com/umg-minai/simva/internal/uptake"
)

// Config is the yaml description of one simulation scenario: the agent, the
// inspired pressure, the run options and the physiological constants the
// transport parameters are derived from.
type Config struct {
	Agent string   `yaml:"agent"`
	Pinsp *float64 `yaml:"pinsp"`

	DeltaTime float64 `yaml:"delta_time"`
	TotalTime float64 `yaml:"total_time"`

	Humidify            bool    `yaml:"humidify"`
	AmbientPressure     float64 `yaml:"ambient_pressure"`
	WaterVaporPressure  float64 `yaml:"water_vapor_pressure"`
	ConcentrationEffect bool    `yaml:"concentration_effect"`
	ShuntFraction       float64 `yaml:"shunt_fraction"`
	MetabolismFraction  float64 `yaml:"metabolism_fraction"`

	Physiology Physiology `yaml:"physiology"`

	// InitialState optionally seeds the seven pressures by name; it must
	// then carry the full schema.
	InitialState map[string]float64 `yaml:"initial_state,omitempty"`
}

// Physiology carries the standard-man constants; flows in l/min, volumes in
// litres.
type Physiology struct {
	CardiacOutput       float64 `yaml:"cardiac_output"`
	PropVRG             float64 `yaml:"prop_vrg"`
	PropMuscle          float64 `yaml:"prop_mus"`
	PropFat             float64 `yaml:"prop_fat"`
	AlveolarVentilation float64 `yaml:"alveolar_ventilation"`
	Volumes             Volumes `yaml:"volumes"`
}

type Volumes struct {
	AlveolarAir  float64 `yaml:"alveolar_air"`
	LungTissue   float64 `yaml:"lung_tissue"`
	LungBlood    float64 `yaml:"lung_blood"`
	VRGTissue    float64 `yaml:"vrg_tissue"`
	VRGBlood     float64 `yaml:"vrg_blood"`
	MuscleTissue float64 `yaml:"mus_tissue"`
	MuscleBlood  float64 `yaml:"mus_blood"`
	FatTissue    float64 `yaml:"fat_tissue"`
	FatBlood     float64 `yaml:"fat_blood"`
}

// DefaultConfig returns the Cowles standard man breathing diethyl ether.
// The inspired pressure has no default; it must come from the file, a flag
// or a preset.
func DefaultConfig() *Config {
	return &Config{
		Agent:              string(physio.DiethylEther),
		DeltaTime:          uptake.DefaultDeltaTime,
		TotalTime:          uptake.DefaultTotalTime,
		AmbientPressure:    physio.AmbientPressure,
		WaterVaporPressure: physio.WaterVaporPressure,
		Physiology: Physiology{
			CardiacOutput:       physio.DefaultCardiacOutput,
			PropVRG:             physio.DefaultPropVRG,
			PropMuscle:          physio.DefaultPropMuscle,
			PropFat:             physio.DefaultPropFat,
			AlveolarVentilation: physio.DefaultAlveolarVentilation,
			Volumes: Volumes{
				AlveolarAir:  physio.AlveolarAirVolume,
				LungTissue:   physio.LungTissueVolume,
				LungBlood:    physio.LungBloodVolume,
				VRGTissue:    physio.VRGTissueVolume,
				VRGBlood:     physio.VRGBloodVolume,
				MuscleTissue: physio.MuscleTissueVolume,
				MuscleBlood:  physio.MuscleBloodVolume,
				FatTissue:    physio.FatTissueVolume,
				FatBlood:     physio.FatBloodVolume,
			},
		},
	}
}

// Load reads a yaml file over the defaults.
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

// Save writes the config as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Inspired returns the mandatory inspired pressure.
func (c *Config) Inspired() (float64, error) {
	if c.Pinsp == nil {
		return 0, uptake.ErrMissingInspired
	}
	return *c.Pinsp, nil
}

// Params derives the conductance and capacitance vectors from the agent's
// partition coefficients, the cardiac output split and the volumes. Agent
// transport into the tissues runs through blood, so the tissue conductances
// use the blood:gas coefficient; the tissue:gas coefficients enter the
// capacitances.
func (c *Config) Params() (uptake.Params, error) {
	agent, err := physio.ParseAgent(c.Agent)
	if err != nil {
		return uptake.Params{}, err
	}
	pc, err := physio.PartitionCoefficients(agent)
	if err != nil {
		return uptake.Params{}, err
	}

	ph := c.Physiology
	co, err := physio.CardiacOutput(ph.CardiacOutput, physio.DefaultPropLung, ph.PropVRG, ph.PropMuscle, ph.PropFat)
	if err != nil {
		return uptake.Params{}, err
	}

	tp := physio.DefaultSTPFactor()
	bloodGas := pc[physio.Lung]
	v := ph.Volumes

	var g, cap physio.PerCompartment
	g[physio.Lung] = physio.Conductance(ph.AlveolarVentilation, 1.0, tp)
	g[physio.VRG] = physio.Conductance(co[physio.VRG], bloodGas, tp)
	g[physio.Muscle] = physio.Conductance(co[physio.Muscle], bloodGas, tp)
	g[physio.Fat] = physio.Conductance(co[physio.Fat], bloodGas, tp)

	cap[physio.Lung] = physio.LungCapacitance(v.AlveolarAir, v.LungTissue, bloodGas, v.LungBlood, bloodGas, tp)
	cap[physio.VRG] = physio.Capacitance(v.VRGTissue, pc[physio.VRG], v.VRGBlood, bloodGas, tp)
	cap[physio.Muscle] = physio.Capacitance(v.MuscleTissue, pc[physio.Muscle], v.MuscleBlood, bloodGas, tp)
	cap[physio.Fat] = physio.Capacitance(v.FatTissue, pc[physio.Fat], v.FatBlood, bloodGas, tp)

	return uptake.Params{Conductance: g, Capacitance: cap}, nil
}

// Options maps the scenario onto integrator options.
func (c *Config) Options() (uptake.Options, error) {
	opts := uptake.Options{
		DeltaTime:           c.DeltaTime,
		TotalTime:           c.TotalTime,
		Humidify:            c.Humidify,
		AmbientPressure:     c.AmbientPressure,
		WaterVaporPressure:  c.WaterVaporPressure,
		ConcentrationEffect: c.ConcentrationEffect,
		AlveolarVentilation: c.Physiology.AlveolarVentilation,
		ShuntFraction:       c.ShuntFraction,
		MetabolismFraction:  c.MetabolismFraction,
	}
	if len(c.InitialState) > 0 {
		state, err := uptake.StateFromMap(c.InitialState)
		if err != nil {
			return uptake.Options{}, err
		}
		opts.Initial = &state
	}
	return opts, nil
}
