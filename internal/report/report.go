// Package report renders a finished result table for humans and tools:
// CSV and JSON on a writer, asciigraph panes for the terminal and line
// charts via gonum/plot. Rendering never mutates the table.
package report

import "github.com/umg-minai/simva/internal/uptake"

// captions for the seven pressure series, in schema order.
var captions = map[string]string{
	"pinsp": "pinsp (inspired)",
	"palv":  "palv (alveolar)",
	"part":  "part (arterial)",
	"pvrg":  "pvrg (vessel-rich group)",
	"pmus":  "pmus (muscle)",
	"pfat":  "pfat (fat)",
	"pcv":   "pcv (mixed venous)",
}

func seriesNames() []string { return uptake.SeriesNames() }
