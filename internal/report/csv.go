package report

import (
	"io"

	"github.com/gocarina/gocsv"

	"github.com/umg-minai/simva/internal/uptake"
)

// WriteCSV emits the table with a header row, one line per time step.
func WriteCSV(w io.Writer, result *uptake.Result) error {
	return gocsv.Marshal(&result.Rows, w)
}
