// Package physio provides the physical parameter functions of the Cowles
// three-compartment uptake model.
//
// The package is purely computational: it turns static physiological
// constants (blood flows, tissue volumes, partition coefficients) into the
// conductance and capacitance vectors the integrator consumes:
//
//   - [STPFactor]: temperature/pressure normalisation ratio
//   - [Conductance]: transport capacity between two phases, l/(min·atm)
//   - [Capacitance], [LungCapacitance]: agent-holding capacity, l
//   - [PartitionCoefficients]: tabulated coefficients per agent
//   - [CardiacOutput]: compartmental allocation of total blood flow
//
// Per-compartment quantities are carried in a [PerCompartment] array indexed
// by the [Compartment] enumeration, so there is no lookup by name anywhere.
package physio
