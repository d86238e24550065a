package report

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/umg-minai/simva/internal/physio"
	"github.com/umg-minai/simva/internal/uptake"
)

func etherResult(t *testing.T) *uptake.Result {
	t.Helper()

	sim := uptake.New(uptake.Params{
		Conductance: physio.PerCompartment{4.0, 53.5756825532, 10.5405791489, 2.95404765957},
		Capacitance: physio.PerCompartment{75.8918246293, 116.158439716, 364.460425532, 386.491689233},
	})
	result, err := sim.Run(context.Background(), 12, uptake.DefaultOptions())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return result
}

func TestWriteCSV(t *testing.T) {
	result := etherResult(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, result); err != nil {
		t.Fatalf("csv export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != result.Len()+1 {
		t.Fatalf("expected %d lines, got %d", result.Len()+1, len(lines))
	}
	if strings.TrimSpace(lines[0]) != "time,pinsp,palv,part,pvrg,pmus,pfat,pcv" {
		t.Errorf("unexpected header: %q", lines[0])
	}
}

func TestWriteJSON(t *testing.T) {
	result := etherResult(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, "diethyl-ether", 12, 0.1, 10, result); err != nil {
		t.Fatalf("json export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export should round-trip: %v", err)
	}
	if data.Agent != "diethyl-ether" || data.Steps != 100 || len(data.Rows) != 100 {
		t.Errorf("unexpected export envelope: agent %q steps %d rows %d",
			data.Agent, data.Steps, len(data.Rows))
	}
	if data.Rows[99].Time != 10 {
		t.Errorf("expected final row at t=10, got %v", data.Rows[99].Time)
	}
}

func TestWriteASCII(t *testing.T) {
	result := etherResult(t)

	var buf bytes.Buffer
	if err := WriteASCII(&buf, result, 10, 60); err != nil {
		t.Fatalf("ascii plot failed: %v", err)
	}
	out := buf.String()
	for _, caption := range []string{"palv (alveolar)", "pcv (mixed venous)"} {
		if !strings.Contains(out, caption) {
			t.Errorf("missing caption %q", caption)
		}
	}

	if err := WriteASCII(&buf, &uptake.Result{}, 10, 60); err == nil {
		t.Error("expected error for empty result")
	}
}

func TestSaveChart(t *testing.T) {
	result := etherResult(t)

	path := filepath.Join(t.TempDir(), "washin.png")
	if err := SaveChart(path, "diethyl-ether", result); err != nil {
		t.Fatalf("chart export failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}

	if err := SaveChart(filepath.Join(t.TempDir(), "empty.png"), "x", &uptake.Result{}); err == nil {
		t.Error("expected error for empty result")
	}
}
