package physio

import (
	"errors"
	"fmt"
)

// Default cardiac output and its compartmental split. PropLung is the
// ventilatory pathway and deliberately excluded from the systemic sum.
const (
	DefaultCardiacOutput = 6.3 // l/min
	DefaultPropLung      = 1.0
	DefaultPropVRG       = 0.798
	DefaultPropMuscle    = 0.157
	DefaultPropFat       = 0.044
)

// ErrFlowSplit reports peripheral flow proportions that together exceed the
// whole cardiac output.
var ErrFlowSplit = errors.New("physio: peripheral flow proportions sum above 1")

// CardiacOutput allocates the total flow across the compartments. The three
// peripheral proportions must not sum above 1; the lung proportion is
// ventilation, not systemic flow, and is not part of that check.
func CardiacOutput(total, propLung, propVRG, propMuscle, propFat float64) (PerCompartment, error) {
	if sum := propVRG + propMuscle + propFat; sum > 1.0 {
		return PerCompartment{}, fmt.Errorf("%w: vrg %.3f + mus %.3f + fat %.3f = %.3f",
			ErrFlowSplit, propVRG, propMuscle, propFat, sum)
	}
	return PerCompartment{
		Lung:   propLung * total,
		VRG:    propVRG * total,
		Muscle: propMuscle * total,
		Fat:    propFat * total,
	}, nil
}

// DefaultCardiacOutputSplit is CardiacOutput with the standard-man defaults.
func DefaultCardiacOutputSplit() PerCompartment {
	co, err := CardiacOutput(DefaultCardiacOutput, DefaultPropLung, DefaultPropVRG, DefaultPropMuscle, DefaultPropFat)
	if err != nil {
		panic(err) // defaults sum to 0.999
	}
	return co
}
