package projection

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"zucit/internal/model"
)

func sampleResult(t *testing.T, years int) *model.SimulationResult {
	t.Helper()
	e := New(model.DefaultEconomicParameters())
	return e.Run(model.SimulationInput{Valuation: 5e7, Profit: 2e6, Employees: 50, GrowthRate: 0.25, Years: &years})
}

func TestWriteTrajectoryCSV(t *testing.T) {
	res := sampleResult(t, 3)

	var buf bytes.Buffer
	if err := WriteTrajectoryCSV(&buf, res); err != nil {
		t.Fatalf("write: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected header + 4 rows, got %d", len(rows))
	}
	if len(rows[0]) != len(TrajectoryHeader) || rows[0][0] != "year" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][0] != "2024" || rows[4][0] != "2027" {
		t.Fatalf("unexpected years %q..%q", rows[1][0], rows[4][0])
	}
	// year 0 baseline profit and price
	if rows[1][1] != "2000000.00" {
		t.Fatalf("baseline profit: got %q", rows[1][1])
	}
	if rows[1][3] != "100.0000" {
		t.Fatalf("baseline price: got %q", rows[1][3])
	}
	if rows[1][4] != "50" {
		t.Fatalf("baseline employees: got %q", rows[1][4])
	}
}

func TestWriteTrajectoryCSVFile(t *testing.T) {
	res := sampleResult(t, 1)
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteTrajectoryCSVFile(path, res); err != nil {
		t.Fatalf("write file: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	if err != nil {
		t.Fatalf("parse file: %v", err)
	}
	if len(rows) != 3 || rows[0][0] != "year" {
		t.Fatalf("expected header + 2 rows, got %v", rows)
	}
	if err := WriteTrajectoryCSVFile(filepath.Join(t.TempDir(), "missing", "out.csv"), res); err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}

func TestWriteTrajectoryXLSX(t *testing.T) {
	res := sampleResult(t, 2)

	f, err := WriteTrajectoryXLSX(res)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(trajectorySheet)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if rows[0][1] != "no_zucman_profit" || rows[3][0] != "2026" {
		t.Fatalf("unexpected content: %v / %v", rows[0], rows[3])
	}

	kpis, err := f.GetRows(kpiSheet)
	if err != nil {
		t.Fatalf("get kpi rows: %v", err)
	}
	if len(kpis) != len(kpiRows(res.KPIs)) {
		t.Fatalf("kpi rows: got %d", len(kpis))
	}
	if kpis[9][0] != "bankruptcy_risk" || kpis[9][1] != string(res.KPIs.Level) {
		t.Fatalf("unexpected risk row %v", kpis[9])
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("empty workbook")
	}
}
