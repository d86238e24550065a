package analysis

import (
	"gonum.org/v1/gonum/floats"

	"github.com/umg-minai/simva/internal/uptake"
)

// Wash-in metrics computed over a finished result table.

// Ratio returns the FA/FI series: alveolar over inspired pressure per step.
// With humidification enabled the denominator is the humidified pressure.
func Ratio(result *uptake.Result) []float64 {
	fa := result.Series("palv")
	fi := result.Series("pinsp")
	floats.Div(fa, fi)
	return fa
}

// TimeToFraction returns the first time at which FA/FI reaches frac. The
// second return is false when the run never gets there.
func TimeToFraction(result *uptake.Result, frac float64) (float64, bool) {
	ratio := Ratio(result)
	for i, r := range ratio {
		if r >= frac {
			return result.Rows[i].Time, true
		}
	}
	return 0, false
}

// PeakAlveolar returns the maximum alveolar pressure of the run.
func PeakAlveolar(result *uptake.Result) float64 {
	if result.Len() == 0 {
		return 0
	}
	return floats.Max(result.Series("palv"))
}

// Summary condenses a run for display.
type Summary struct {
	FinalRatio   float64 // FA/FI at the end of the run
	PeakAlveolar float64
	VenousGap    float64 // alveolar minus mixed venous pressure at the end
	TissueSpread float64 // fastest minus slowest tissue pressure at the end
	HalfTime     float64 // time to FA/FI = 0.5, 0 when not reached
	ReachedHalf  bool
}

func Summarize(result *uptake.Result) Summary {
	if result.Len() == 0 {
		return Summary{}
	}

	final := result.Final()
	s := Summary{
		PeakAlveolar: PeakAlveolar(result),
		VenousGap:    final.Palv - final.Pcv,
		TissueSpread: final.Pvrg - final.Pfat,
	}
	if final.Pinsp != 0 {
		s.FinalRatio = final.Palv / final.Pinsp
	}
	s.HalfTime, s.ReachedHalf = TimeToFraction(result, 0.5)
	return s
}
