package uptake

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/umg-minai/simva/internal/physio"
)

// etherParams are the diethyl ether transport parameters of the Cowles
// Table 4 scenario: lung conductance 4.0, tissue conductances from the
// standard cardiac output split and the ether blood:gas coefficient,
// capacitances from the standard-man volumes.
func etherParams() Params {
	return Params{
		Conductance: physio.PerCompartment{4.0, 53.5756825532, 10.5405791489, 2.95404765957},
		Capacitance: physio.PerCompartment{75.8918246293, 116.158439716, 364.460425532, 386.491689233},
	}
}

func TestRunRowCount(t *testing.T) {
	sim := New(etherParams())

	result, err := sim.Run(context.Background(), 12, DefaultOptions())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Len() != 100 {
		t.Fatalf("expected 100 rows, got %d", result.Len())
	}
	if got := result.Rows[0].Time; math.Abs(got-0.1) > 1e-12 {
		t.Errorf("expected first row at t=0.1, got %v", got)
	}
	if got := result.Final().Time; math.Abs(got-10.0) > 1e-9 {
		t.Errorf("expected final row at t=10, got %v", got)
	}
}

func TestRunCeilsPartialStep(t *testing.T) {
	sim := New(etherParams())

	opts := DefaultOptions()
	opts.DeltaTime = 0.3

	result, err := sim.Run(context.Background(), 12, opts)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	// ceil(10/0.3) = 34 steps, overshooting total time by design
	if result.Len() != 34 {
		t.Errorf("expected 34 rows, got %d", result.Len())
	}
}

func TestRunEarlyRows(t *testing.T) {
	sim := New(etherParams())

	result, err := sim.Run(context.Background(), 12, DefaultOptions())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	r1 := result.Rows[0]
	if math.Abs(r1.Palv-0.0632479193042) > 1e-9 {
		t.Errorf("row 1 palv: expected 0.0632479, got %v", r1.Palv)
	}
	if r1.Part != 0 || r1.Pvrg != 0 || r1.Pcv != 0 {
		t.Errorf("row 1: periphery should still be agent-free, got %+v", r1)
	}

	r5 := result.Rows[4]
	if math.Abs(r5.Palv-0.264153853552) > 1e-9 {
		t.Errorf("row 5 palv: expected 0.2641539, got %v", r5.Palv)
	}
	if math.Abs(r5.Pcv-0.0205363140926) > 1e-9 {
		t.Errorf("row 5 pcv: expected 0.0205363, got %v", r5.Pcv)
	}
}

func TestRunDeterminism(t *testing.T) {
	sim := New(etherParams())

	opts := DefaultOptions()
	opts.ConcentrationEffect = true
	opts.ShuntFraction = 0.05

	a, err := sim.Run(context.Background(), 12, opts)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	b, err := sim.Run(context.Background(), 12, opts)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !reflect.DeepEqual(a.Rows, b.Rows) {
		t.Error("identical inputs should produce bit-identical tables")
	}
}

func TestMassConservation(t *testing.T) {
	p := etherParams()
	sim := New(p)

	result, err := sim.Run(context.Background(), 12, DefaultOptions())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	dt := DefaultDeltaTime
	prev := NewState(12)
	for i, row := range result.Rows {
		ventFlux := (prev.Pinsp - prev.Palv) * p.Conductance[physio.Lung]

		fluxLung := (row.Palv - prev.Palv) * p.Capacitance[physio.Lung] / dt
		fluxVRG := (row.Pvrg - prev.Pvrg) * p.Capacitance[physio.VRG] / dt
		fluxMus := (row.Pmus - prev.Pmus) * p.Capacitance[physio.Muscle] / dt
		fluxFat := (row.Pfat - prev.Pfat) * p.Capacitance[physio.Fat] / dt

		total := fluxLung + fluxVRG + fluxMus + fluxFat
		if math.Abs(total-ventFlux) > 1e-6 {
			t.Fatalf("step %d: fluxes sum to %v, ventilatory flux is %v", i+1, total, ventFlux)
		}
		prev = row.State()
	}
}

func TestRunValidation(t *testing.T) {
	sim := New(etherParams())

	tests := []struct {
		name string
		mod  func(*Options)
		want error
	}{
		{"negative dt", func(o *Options) { o.DeltaTime = -0.1 }, nil},
		{"negative total", func(o *Options) { o.TotalTime = -1 }, nil},
		{"shunt above one", func(o *Options) { o.ShuntFraction = 1.5 }, ErrFractionRange},
		{"negative shunt", func(o *Options) { o.ShuntFraction = -0.1 }, ErrFractionRange},
		{"metabolism above one", func(o *Options) { o.MetabolismFraction = 2 }, ErrFractionRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mod(&opts)
			_, err := sim.Run(context.Background(), 12, opts)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRunCancellation(t *testing.T) {
	sim := New(etherParams())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := sim.Run(ctx, 12, DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result == nil {
		t.Fatal("expected partial result on cancellation")
	}
}

func TestZeroPeripheralConductance(t *testing.T) {
	// Degenerate inputs are not guarded: the venous mix denominator is zero
	// and NaN propagates into the table, matching the reference.
	p := etherParams()
	p.Conductance[physio.VRG] = 0
	p.Conductance[physio.Muscle] = 0
	p.Conductance[physio.Fat] = 0

	result, err := New(p).Run(context.Background(), 12, DefaultOptions())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !math.IsNaN(result.Rows[0].Pcv) {
		t.Errorf("expected NaN venous pressure, got %v", result.Rows[0].Pcv)
	}
}

func TestStreamMatchesRun(t *testing.T) {
	sim := New(etherParams())

	full, err := sim.Run(context.Background(), 12, DefaultOptions())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	cur, err := sim.Stream(12, DefaultOptions())
	if err != nil {
		t.Fatalf("stream failed: %v", err)
	}
	if cur.Remaining() != full.Len() {
		t.Fatalf("expected %d remaining, got %d", full.Len(), cur.Remaining())
	}

	for i := 0; ; i++ {
		row, ok := cur.Next()
		if !ok {
			if i != full.Len() {
				t.Fatalf("cursor stopped after %d rows, want %d", i, full.Len())
			}
			break
		}
		if row != full.Rows[i] {
			t.Fatalf("row %d differs between Stream and Run", i)
		}
	}

	if _, ok := cur.Next(); ok {
		t.Error("exhausted cursor should not produce rows")
	}
}

func TestInitialStateOverride(t *testing.T) {
	sim := New(etherParams())

	initial := PartialPressures{Pinsp: 12, Palv: 1.5, Pvrg: 1.2, Pmus: 0.3, Pfat: 0.1, Pcv: 1.0}
	opts := DefaultOptions()
	opts.Initial = &initial
	opts.TotalTime = 0.1

	result, err := sim.Run(context.Background(), 12, opts)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	// one step from a pre-equilibrated state barely moves the tissues
	if result.Rows[0].Pvrg < 1.2 {
		t.Errorf("vrg pressure should keep rising from 1.2, got %v", result.Rows[0].Pvrg)
	}
}

func TestHumidificationScalesOnce(t *testing.T) {
	sim := New(etherParams())

	opts := DefaultOptions()
	opts.Humidify = true

	result, err := sim.Run(context.Background(), 12, opts)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := 12 * physio.AmbientPressure / (physio.AmbientPressure + physio.WaterVaporPressure)
	for _, row := range []Row{result.Rows[0], result.Final()} {
		if math.Abs(row.Pinsp-want) > 1e-9 {
			t.Errorf("expected constant humidified pinsp %v, got %v", want, row.Pinsp)
		}
	}
}
