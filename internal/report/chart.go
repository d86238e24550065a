package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/umg-minai/simva/internal/uptake"
)

// SaveChart writes a line chart of all seven pressure series. The format
// follows the file extension (.png, .svg, .pdf).
func SaveChart(path, agent string, result *uptake.Result) error {
	if result.Len() == 0 {
		return fmt.Errorf("report: no data to chart")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s wash-in", agent)
	p.X.Label.Text = "time (min)"
	p.Y.Label.Text = "partial pressure"
	p.Legend.Top = true

	times := result.Times()
	args := make([]interface{}, 0, 2*len(seriesNames()))
	for _, name := range seriesNames() {
		values := result.Series(name)
		xys := make(plotter.XYs, len(times))
		for i := range times {
			xys[i].X = times[i]
			xys[i].Y = values[i]
		}
		args = append(args, name, xys)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
