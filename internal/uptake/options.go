package uptake

import (
	"fmt"

	"github.com/umg-minai/simva/internal/physio"
)

// Defaults mirroring the reference model.
const (
	DefaultDeltaTime = 0.1  // min
	DefaultTotalTime = 10.0 // min
)

// Options configure one integration run. The zero value of a numeric field
// means "use the default"; boolean corrections are off unless enabled.
type Options struct {
	// DeltaTime is the Euler step in minutes; TotalTime the simulated span.
	DeltaTime float64
	TotalTime float64

	// Humidify dilutes the inspired pressure once, before the loop, by
	// AmbientPressure/(AmbientPressure+WaterVaporPressure). Both pressures
	// are kPa.
	Humidify           bool
	AmbientPressure    float64
	WaterVaporPressure float64

	// ConcentrationEffect re-derives the lung conductance each step from
	// the alveolar minute ventilation plus a hundredth of the current
	// ventilatory flux.
	ConcentrationEffect bool

	// TPFactor defaults to physio.DefaultSTPFactor; AlveolarVentilation
	// defaults to Conductance[Lung]/TPFactor.
	TPFactor            float64
	AlveolarVentilation float64

	// ShuntFraction mixes venous into arterial blood; MetabolismFraction is
	// the fractional clearance of the tissue pressures per hour. Both must
	// lie in [0,1].
	ShuntFraction      float64
	MetabolismFraction float64

	// Initial overrides the start state. Nil means NewState(pinsp).
	Initial *PartialPressures
}

// DefaultOptions returns the reference defaults with every correction off.
func DefaultOptions() Options {
	return Options{
		DeltaTime:          DefaultDeltaTime,
		TotalTime:          DefaultTotalTime,
		AmbientPressure:    physio.AmbientPressure,
		WaterVaporPressure: physio.WaterVaporPressure,
	}
}

// withDefaults fills zero-valued fields and validates the ranges the
// reference validates. It fails fast: no stepping happens on error.
func (o Options) withDefaults(params Params) (Options, error) {
	if o.DeltaTime == 0 {
		o.DeltaTime = DefaultDeltaTime
	}
	if o.TotalTime == 0 {
		o.TotalTime = DefaultTotalTime
	}
	if o.DeltaTime <= 0 {
		return o, fmt.Errorf("uptake: delta time must be positive, got %g", o.DeltaTime)
	}
	if o.TotalTime <= 0 {
		return o, fmt.Errorf("uptake: total time must be positive, got %g", o.TotalTime)
	}
	if o.AmbientPressure == 0 {
		o.AmbientPressure = physio.AmbientPressure
	}
	if o.WaterVaporPressure == 0 {
		o.WaterVaporPressure = physio.WaterVaporPressure
	}
	if o.TPFactor == 0 {
		o.TPFactor = physio.DefaultSTPFactor()
	}
	if o.AlveolarVentilation == 0 {
		o.AlveolarVentilation = params.Conductance[physio.Lung] / o.TPFactor
	}
	if o.ShuntFraction < 0 || o.ShuntFraction > 1 {
		return o, fmt.Errorf("%w: shunt fraction %g", ErrFractionRange, o.ShuntFraction)
	}
	if o.MetabolismFraction < 0 || o.MetabolismFraction > 1 {
		return o, fmt.Errorf("%w: metabolism fraction %g", ErrFractionRange, o.MetabolismFraction)
	}
	return o, nil
}
