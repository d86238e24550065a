package physio

// Temperature and pressure reference points, and the standard-man constants
// of Cowles et al. (1973). Volumes are litres, flows l/min, pressures atm
// unless noted otherwise.
const (
	StdTemperature  = 273.2 // K
	BodyTemperature = 310.2 // K
	StdPressure     = 1.0   // atm

	// AmbientPressure and WaterVaporPressure are in kPa and only used for
	// the humidification correction of the inspired pressure.
	AmbientPressure    = 101.325
	WaterVaporPressure = 6.26

	// DefaultAlveolarVentilation gives a lung conductance of 4.0
	// l/(min·atm) after STP correction.
	DefaultAlveolarVentilation = 4.542

	AlveolarAirVolume  = 2.68
	LungTissueVolume   = 1.0
	LungBloodVolume    = 5.9
	VRGTissueVolume    = 6.0
	VRGBloodVolume     = 4.9
	MuscleTissueVolume = 33.0
	MuscleBloodVolume  = 1.2
	FatTissueVolume    = 9.8
	FatBloodVolume     = 0.55
)

// STPFactor returns the multiplicative correction that normalises
// flow-derived quantities at tissue temperature to standard temperature and
// pressure: stdTemperature / (stdPressure * tissueTemperature).
func STPFactor(stdTemperature, tissueTemperature, stdPressure float64) float64 {
	return stdTemperature / (stdPressure * tissueTemperature)
}

// DefaultSTPFactor is STPFactor at the standard reference points,
// approximately 0.8807.
func DefaultSTPFactor() float64 {
	return STPFactor(StdTemperature, BodyTemperature, StdPressure)
}

// Conductance is the transport capacity in l/(min·atm) between two phases
// related by the given partition coefficient, for an agent carried at the
// given flow.
func Conductance(flow, partitionCoefficient, tpFactor float64) float64 {
	return flow * partitionCoefficient * tpFactor
}

// Capacitance is the agent-holding capacity in litres of a compartment made
// of a tissue and a blood fraction with their respective gas partition
// coefficients.
func Capacitance(tissueVolume, tissueCoefficient, bloodVolume, bloodCoefficient, tpFactor float64) float64 {
	return (tissueVolume*tissueCoefficient + bloodVolume*bloodCoefficient) * tpFactor
}

// LungCapacitance adds the alveolar air volume to the tissue and blood terms.
// Air holds the agent at a gas:gas coefficient of 1.
func LungCapacitance(airVolume, tissueVolume, tissueCoefficient, bloodVolume, bloodCoefficient, tpFactor float64) float64 {
	return (airVolume + tissueVolume*tissueCoefficient + bloodVolume*bloodCoefficient) * tpFactor
}
