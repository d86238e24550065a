package report

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"

	"github.com/umg-minai/simva/internal/uptake"
)

// WriteASCII prints one terminal graph per pressure series, inspired first.
func WriteASCII(w io.Writer, result *uptake.Result, height, width int) error {
	if result.Len() == 0 {
		return fmt.Errorf("report: no data to plot")
	}

	for _, name := range seriesNames() {
		graph := asciigraph.Plot(result.Series(name),
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(captions[name]),
		)
		if _, err := fmt.Fprintln(w, graph); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
