// Package uptake integrates the Cowles three-compartment uptake model.
//
// The model tracks seven partial pressures (inspired, alveolar, arterial,
// three tissues and mixed venous) and advances them with an explicit Euler
// scheme driven by per-compartment conductances and capacitances:
//
//	sim := uptake.New(params)
//	result, err := sim.Run(ctx, pinsp, uptake.DefaultOptions())
//
// [Simulator.Stream] exposes the same loop one row at a time for callers
// that want to render or cancel mid-run.
//
// The integrator is reference-faithful: negative pressures are not clamped
// and degenerate inputs (for instance an all-zero peripheral conductance
// vector) propagate as NaN/Inf values in the result rather than as errors.
package uptake
