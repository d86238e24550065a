package uptake

import "github.com/umg-minai/simva/internal/physio"

// Params are the static per-compartment transport parameters of one run.
// Conductance is l/(min·atm), Capacitance is l; both are indexed by
// [physio.Compartment] and stay constant for the whole run, except that the
// lung conductance is re-derived each step when the concentration effect is
// enabled.
type Params struct {
	Conductance physio.PerCompartment
	Capacitance physio.PerCompartment
}
