package uptake

import "errors"

// Domain errors raised before any stepping happens. All are detected
// synchronously; the caller fixes the inputs and re-invokes.
var (
	// ErrFractionRange indicates a shunt or metabolism fraction outside [0,1].
	ErrFractionRange = errors.New("uptake: fraction outside [0,1]")

	// ErrStateShape indicates an initial state with the wrong number of entries.
	ErrStateShape = errors.New("uptake: partial pressure state needs exactly 7 entries")

	// ErrStateName indicates an initial state keyed by an unknown name.
	ErrStateName = errors.New("uptake: unknown partial pressure name")

	// ErrMissingInspired indicates that no inspired pressure was supplied.
	ErrMissingInspired = errors.New("uptake: inspired pressure not set")
)
