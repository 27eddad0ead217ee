package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// JSONReport is the top-level JSON output shape.
type JSONReport struct {
	Header  JSONHeader  `json:"header"`
	Summary JSONSummary `json:"summary"`
	Results []JSONRow   `json:"results"`
}

// JSONHeader identifies the producing tool.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary aggregates the batch.
type JSONSummary struct {
	TotalRecords int            `json:"totalRecords"`
	Statuses     map[string]int `json:"statuses"`
}

// JSONRow is one scored record. Measurement fields absent from the
// record are omitted.
type JSONRow struct {
	Score           int      `json:"score"`
	Status          string   `json:"status"`
	FilePath        string   `json:"filePath"`
	Notes           string   `json:"notes"`
	LRA             *float64 `json:"lra,omitempty"`
	PeakAmplitudeDb *float64 `json:"peakAmplitudeDb,omitempty"`
	PeakAmplitude   *float64 `json:"peakAmplitude,omitempty"`
	RmsDbAbove16k   *float64 `json:"rmsDbAbove16k,omitempty"`
	RmsDbAbove18k   *float64 `json:"rmsDbAbove18k,omitempty"`
	RmsDbAbove20k   *float64 `json:"rmsDbAbove20k,omitempty"`
	OverallRmsDb    *float64 `json:"overallRmsDb,omitempty"`
}

// WriteJSON renders the report as indented JSON.
func WriteJSON(rep *Report, w io.Writer) error {
	statuses := make(map[string]int)
	for _, sc := range rep.StatusCounts() {
		statuses[string(sc.Status)] = sc.Count
	}

	out := JSONReport{
		Header: JSONHeader{
			Tool:      "audio-quality-report",
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			TotalRecords: len(rep.Rows),
			Statuses:     statuses,
		},
		Results: make([]JSONRow, len(rep.Rows)),
	}
	for i, row := range rep.Rows {
		out.Results[i] = JSONRow{
			Score:           row.Score,
			Status:          string(row.Status),
			FilePath:        row.Record.FilePath,
			Notes:           row.Notes,
			LRA:             row.Record.LRA,
			PeakAmplitudeDb: row.Record.PeakAmplitudeDb,
			PeakAmplitude:   row.Record.PeakAmplitude,
			RmsDbAbove16k:   row.Record.RmsDbAbove16k,
			RmsDbAbove18k:   row.Record.RmsDbAbove18k,
			RmsDbAbove20k:   row.Record.RmsDbAbove20k,
			OverallRmsDb:    row.Record.OverallRmsDb,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}
