package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Freedom18946/audio-analyzer/internal/metrics"
)

func sampleReport(t *testing.T) *Report {
	t.Helper()
	records := []metrics.Record{
		{FilePath: "音乐/perfect.flac", RmsDbAbove18k: f64(-60), LRA: f64(10),
			PeakAmplitudeDb: f64(-10), RmsDbAbove16k: f64(-55)},
		{FilePath: "empty.flac"},
	}
	rep, _ := runBatch(t, records,
		metrics.ColRmsDbAbove18k, metrics.ColLRA,
		metrics.ColPeakAmplitudeDb, metrics.ColRmsDbAbove16k)
	return rep
}

func TestWriteCSV(t *testing.T) {
	rep := sampleReport(t)
	var buf bytes.Buffer
	if err := WriteCSV(rep, &buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\ufeff") {
		t.Error("csv output missing UTF-8 BOM")
	}

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\ufeff")))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d csv rows, want header + 2", len(rows))
	}
	if rows[0][0] != ColScore || rows[0][1] != ColStatus {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "100" {
		t.Errorf("top row score = %q, want 100", rows[1][0])
	}
	if rows[1][2] != "音乐/perfect.flac" {
		t.Errorf("non-ASCII path mangled: %q", rows[1][2])
	}
	// empty.flac has no measurements: metric cells are blank
	last := rows[2]
	if last[4] != "" {
		t.Errorf("missing lra should render empty, got %q", last[4])
	}
}

func TestWriteJSON(t *testing.T) {
	rep := sampleReport(t)
	var buf bytes.Buffer
	if err := WriteJSON(rep, &buf); err != nil {
		t.Fatal(err)
	}

	var out JSONReport
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Summary.TotalRecords != 2 {
		t.Errorf("totalRecords = %d, want 2", out.Summary.TotalRecords)
	}
	if out.Summary.Statuses["good"] != 1 || out.Summary.Statuses["incomplete"] != 1 {
		t.Errorf("statuses = %v", out.Summary.Statuses)
	}
	if len(out.Results) != 2 {
		t.Fatalf("got %d results", len(out.Results))
	}
	first := out.Results[0]
	if first.Score != 100 || first.Status != "good" || first.FilePath != "音乐/perfect.flac" {
		t.Errorf("first result = %+v", first)
	}
	if out.Results[1].LRA != nil {
		t.Error("missing lra should be omitted, not zero")
	}
}

func TestWriteMarkdown(t *testing.T) {
	rep := sampleReport(t)
	var buf bytes.Buffer
	if err := WriteMarkdown(rep, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "# Audio Quality Report") {
		t.Error("missing report header")
	}
	if !strings.Contains(out, "| "+strings.Join(rep.Columns, " | ")+" |") {
		t.Error("missing results table header")
	}
	if !strings.Contains(out, "音乐/perfect.flac") {
		t.Error("missing record row")
	}
}

func TestWriteUnsupportedFormat(t *testing.T) {
	rep := sampleReport(t)
	if err := Write(rep, "xml", ""); err == nil {
		t.Error("expected error for unsupported format")
	}
}
