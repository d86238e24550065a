package uptake

import (
	"fmt"
	"strings"
)

// PartialPressures is the seven-variable simulation state, all in atm.
// Pinsp stays constant during a run (after optional humidification), Palv is
// the lumped lung compartment, Part the arterial mix, Pvrg/Pmus/Pfat the
// tissue pressures and Pcv the flow-weighted mixed venous pressure.
type PartialPressures struct {
	Pinsp float64
	Palv  float64
	Part  float64
	Pvrg  float64
	Pmus  float64
	Pfat  float64
	Pcv   float64
}

// NewState returns the start-of-induction state: agent present only in the
// inspired gas.
func NewState(pinsp float64) PartialPressures {
	return PartialPressures{Pinsp: pinsp}
}

var stateNames = []string{"pinsp", "palv", "part", "pvrg", "pmus", "pfat", "pcv"}

// StateSchema lists the seven state entry names in model order.
func StateSchema() []string {
	return append([]string(nil), stateNames...)
}

// StateFromMap builds a state from a name-keyed map, as read from a config
// file. The map must carry exactly the seven schema names; anything else
// fails before a single step is taken.
func StateFromMap(m map[string]float64) (PartialPressures, error) {
	if len(m) != len(stateNames) {
		return PartialPressures{}, fmt.Errorf("%w: got %d (want %s)",
			ErrStateShape, len(m), strings.Join(stateNames, ", "))
	}
	for name := range m {
		if !isStateName(name) {
			return PartialPressures{}, fmt.Errorf("%w: %q (want %s)",
				ErrStateName, name, strings.Join(stateNames, ", "))
		}
	}
	return PartialPressures{
		Pinsp: m["pinsp"],
		Palv:  m["palv"],
		Part:  m["part"],
		Pvrg:  m["pvrg"],
		Pmus:  m["pmus"],
		Pfat:  m["pfat"],
		Pcv:   m["pcv"],
	}, nil
}

func isStateName(name string) bool {
	for _, n := range stateNames {
		if n == name {
			return true
		}
	}
	return false
}
