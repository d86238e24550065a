package report

import (
	"encoding/json"
	"io"

	"github.com/umg-minai/simva/internal/uptake"
)

// ExportData is the JSON envelope around a run.
type ExportData struct {
	Agent     string       `json:"agent"`
	Pinsp     float64      `json:"pinsp"`
	DeltaTime float64      `json:"delta_time"`
	TotalTime float64      `json:"total_time"`
	Steps     int          `json:"steps"`
	Rows      []uptake.Row `json:"rows"`
}

// WriteJSON emits the run with its scenario metadata, indented.
func WriteJSON(w io.Writer, agent string, pinsp, deltaTime, totalTime float64, result *uptake.Result) error {
	data := ExportData{
		Agent:     agent,
		Pinsp:     pinsp,
		DeltaTime: deltaTime,
		TotalTime: totalTime,
		Steps:     result.Len(),
		Rows:      result.Rows,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
