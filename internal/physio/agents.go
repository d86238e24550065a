package physio

import (
	"errors"
	"fmt"
	"strings"
)

// Agent names an inhaled anaesthetic with tabulated partition coefficients.
type Agent string

const (
	NitrousOxide Agent = "nitrous-oxide"
	DiethylEther Agent = "diethyl-ether"
	Halothane    Agent = "halothane"
)

// ErrUnknownAgent reports a name outside the tabulated set.
var ErrUnknownAgent = errors.New("physio: unknown anaesthetic agent")

// Partition coefficients per agent. The Lung entry is the blood:gas
// coefficient, which also governs transport into the peripheral compartments;
// the VRG, Muscle and Fat entries are tissue:gas and enter the capacitances.
var partitionTable = map[Agent]PerCompartment{
	NitrousOxide: {0.463, 0.463, 0.463, 1.03},
	DiethylEther: {12.1, 12.1, 12.1, 44.1},
	Halothane:    {2.3, 6, 8, 138},
}

// Agents returns the tabulated agents in a stable order.
func Agents() []Agent {
	return []Agent{NitrousOxide, DiethylEther, Halothane}
}

// ParseAgent maps a user-supplied name onto the closed agent set.
func ParseAgent(name string) (Agent, error) {
	a := Agent(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := partitionTable[a]; !ok {
		return "", fmt.Errorf("%w: %q (allowed: %s)", ErrUnknownAgent, name, allowedAgents())
	}
	return a, nil
}

// PartitionCoefficients returns the tabulated coefficients for the agent.
func PartitionCoefficients(agent Agent) (PerCompartment, error) {
	pc, ok := partitionTable[agent]
	if !ok {
		return PerCompartment{}, fmt.Errorf("%w: %q (allowed: %s)", ErrUnknownAgent, agent, allowedAgents())
	}
	return pc, nil
}

// BloodGas returns the blood:gas coefficient for the agent.
func BloodGas(agent Agent) (float64, error) {
	pc, err := PartitionCoefficients(agent)
	if err != nil {
		return 0, err
	}
	return pc[Lung], nil
}

func allowedAgents() string {
	names := make([]string, 0, len(partitionTable))
	for _, a := range Agents() {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}
