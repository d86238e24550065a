package physio

// Compartment identifies one of the four lumped regions of the model.
// The ordering is fixed and shared by every per-compartment vector.
type Compartment int

const (
	// Lung lumps alveolar gas, lung tissue and pulmonary/arterial blood.
	Lung Compartment = iota
	// VRG is the vessel-rich group: brain, heart, kidney.
	VRG
	// Muscle covers muscle and other lean tissue.
	Muscle
	// Fat covers fatty tissue.
	Fat

	NumCompartments
)

var compartmentNames = [NumCompartments]string{"lung", "vrg", "mus", "fat"}

func (c Compartment) String() string {
	if c < 0 || c >= NumCompartments {
		return "unknown"
	}
	return compartmentNames[c]
}

// Compartments returns the four compartments in model order.
func Compartments() [NumCompartments]Compartment {
	return [NumCompartments]Compartment{Lung, VRG, Muscle, Fat}
}

// PerCompartment holds one value per compartment, indexed by [Compartment].
type PerCompartment [NumCompartments]float64
