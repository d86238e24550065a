package uptake

import (
	"context"
	"math"

	"github.com/umg-minai/simva/internal/physio"
)

// Simulator runs the explicit Euler loop of Cowles et al. (1973) for one set
// of transport parameters. A Simulator is stateless between runs and safe to
// reuse; concurrent runs each get their own cursor.
type Simulator struct {
	params Params
}

func New(params Params) *Simulator {
	return &Simulator{params: params}
}

// Run integrates n = ceil(total/dt) steps and returns the full table. The
// context is checked once per step; on cancellation the rows produced so far
// are returned together with the context error.
func (s *Simulator) Run(ctx context.Context, pinsp float64, opts Options) (*Result, error) {
	cur, err := s.Stream(pinsp, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Rows: make([]Row, 0, cur.Remaining())}
	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		row, ok := cur.Next()
		if !ok {
			return result, nil
		}
		result.Rows = append(result.Rows, row)
	}
}

// Stream validates the inputs and returns a cursor producing one row per
// call, so a caller can render progressively or stop early without running
// the whole batch.
func (s *Simulator) Stream(pinsp float64, opts Options) (*Cursor, error) {
	opts, err := opts.withDefaults(s.params)
	if err != nil {
		return nil, err
	}

	state := NewState(pinsp)
	if opts.Initial != nil {
		state = *opts.Initial
	}
	if opts.Humidify {
		// Saturated water vapor dilutes the inspired mix once, not per step.
		state.Pinsp *= opts.AmbientPressure / (opts.AmbientPressure + opts.WaterVaporPressure)
	}

	return &Cursor{
		state:         state,
		gLung:         s.params.Conductance[physio.Lung],
		gVRG:          s.params.Conductance[physio.VRG],
		gMus:          s.params.Conductance[physio.Muscle],
		gFat:          s.params.Conductance[physio.Fat],
		cLung:         s.params.Capacitance[physio.Lung],
		cVRG:          s.params.Capacitance[physio.VRG],
		cMus:          s.params.Capacitance[physio.Muscle],
		cFat:          s.params.Capacitance[physio.Fat],
		dt:            opts.DeltaTime,
		steps:         int(math.Ceil(opts.TotalTime / opts.DeltaTime)),
		metabStep:     opts.MetabolismFraction / (60.0 / opts.DeltaTime),
		shunt:         opts.ShuntFraction,
		concentration: opts.ConcentrationEffect,
		ventilation:   opts.AlveolarVentilation,
		tpFactor:      opts.TPFactor,
	}, nil
}

// Cursor is a single in-progress integration. Each Next advances one Euler
// step and yields the emitted row. Cursors are single-owner and not safe for
// concurrent use.
type Cursor struct {
	state PartialPressures

	// gLung changes across steps under the concentration effect; everything
	// else is fixed at stream time.
	gLung, gVRG, gMus, gFat float64
	cLung, cVRG, cMus, cFat float64

	dt            float64
	metabStep     float64
	shunt         float64
	concentration bool
	ventilation   float64
	tpFactor      float64

	step  int
	steps int
}

// Remaining reports how many rows the cursor will still produce.
func (c *Cursor) Remaining() int { return c.steps - c.step }

// Next advances one step. The second return is false once the run is done.
func (c *Cursor) Next() (Row, bool) {
	if c.step >= c.steps {
		return Row{}, false
	}
	c.step++
	c.state = c.advance(c.state)

	return Row{
		Time:  float64(c.step) * c.dt,
		Pinsp: c.state.Pinsp,
		Palv:  c.state.Palv,
		Part:  c.state.Part,
		Pvrg:  c.state.Pvrg,
		Pmus:  c.state.Pmus,
		Pfat:  c.state.Pfat,
		Pcv:   c.state.Pcv,
	}, true
}

// advance computes the next state from the previous one. The order of
// operations is semantically significant and must not be rearranged: the
// ventilatory flux is taken before the concentration effect adjusts the lung
// conductance, the lung flux is the mass-balance residual of the peripheral
// fluxes, metabolism clears only the tissue pressures, and the venous mix is
// recomputed last from the updated tissues.
func (c *Cursor) advance(s PartialPressures) PartialPressures {
	ventFlux := (s.Pinsp - s.Palv) * c.gLung

	if c.concentration {
		c.gLung = c.ventilation*c.tpFactor + ventFlux/100.0
	}

	part := s.Palv*(1.0-c.shunt) + s.Pcv*c.shunt

	fluxVRG := (part - s.Pvrg) * c.gVRG
	fluxMus := (part - s.Pmus) * c.gMus
	fluxFat := (part - s.Pfat) * c.gFat
	fluxLung := ventFlux - (fluxVRG + fluxMus + fluxFat)

	next := s
	next.Part = part
	next.Palv = s.Palv + fluxLung*c.dt/c.cLung
	next.Pvrg = s.Pvrg + fluxVRG*c.dt/c.cVRG
	next.Pmus = s.Pmus + fluxMus*c.dt/c.cMus
	next.Pfat = s.Pfat + fluxFat*c.dt/c.cFat

	next.Pvrg *= 1.0 - c.metabStep
	next.Pmus *= 1.0 - c.metabStep
	next.Pfat *= 1.0 - c.metabStep

	// Flow-weighted venous pool of the three draining tissues. A zero
	// conductance sum yields NaN here, as in the reference.
	next.Pcv = (next.Pvrg*c.gVRG + next.Pmus*c.gMus + next.Pfat*c.gFat) / (c.gVRG + c.gMus + c.gFat)

	return next
}
