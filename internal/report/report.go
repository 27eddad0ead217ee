// Package report turns engine results into the ranked output table:
// fixed column order, deterministic sort, and CSV/JSON/markdown/console
// renderings.
package report

import (
	"sort"

	"github.com/Freedom18946/audio-analyzer/internal/engine"
	"github.com/Freedom18946/audio-analyzer/internal/metrics"
	"github.com/Freedom18946/audio-analyzer/internal/quality"
)

// Derived column names. Metric columns keep their input names.
const (
	ColScore  = "score"
	ColStatus = "status"
	ColNotes  = "notes"
)

// Row is one output line of the report.
type Row struct {
	Index        int // original input position, the sort tie-breaker
	Score        int
	Status       quality.Status
	Notes        string
	MissingCount int
	Breakdown    quality.Breakdown
	Record       metrics.Record
}

// Report is the assembled output table.
type Report struct {
	Columns []string
	Rows    []Row
}

// Assemble selects the output columns for the batch and sorts rows by
// score descending. The sort is stable, so ties keep their original
// input order; that tie-break is part of the output contract.
func Assemble(results []engine.Result, b *metrics.Batch) *Report {
	rows := make([]Row, len(results))
	for i, res := range results {
		rows[i] = Row{
			Index:        res.Index,
			Score:        res.Breakdown.Total,
			Status:       res.Verdict.Status,
			Notes:        res.Verdict.Note(),
			MissingCount: res.MissingCount,
			Breakdown:    res.Breakdown,
			Record:       res.Record,
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score > rows[j].Score
	})

	columns := []string{ColScore, ColStatus, metrics.ColFilePath, ColNotes}
	if b.HasColumn(metrics.ColLRA) {
		columns = append(columns, metrics.ColLRA)
	}
	if peak, ok := b.PeakField(); ok {
		columns = append(columns, peak)
	}
	for _, col := range []string{
		metrics.ColRmsDbAbove16k,
		metrics.ColRmsDbAbove18k,
		metrics.ColRmsDbAbove20k,
		metrics.ColOverallRmsDb,
	} {
		if b.HasColumn(col) {
			columns = append(columns, col)
		}
	}

	return &Report{Columns: columns, Rows: rows}
}

// FilterMinScore drops rows scoring below min and returns how many were
// dropped.
func (r *Report) FilterMinScore(min int) int {
	if min <= 0 {
		return 0
	}
	kept := r.Rows[:0]
	for _, row := range r.Rows {
		if row.Score >= min {
			kept = append(kept, row)
		}
	}
	dropped := len(r.Rows) - len(kept)
	r.Rows = kept
	return dropped
}

// StatusCounts returns how many rows carry each status, in the fixed
// enum order, skipping statuses with no rows.
func (r *Report) StatusCounts() []StatusCount {
	counts := make(map[quality.Status]int)
	for _, row := range r.Rows {
		counts[row.Status]++
	}
	var out []StatusCount
	for _, st := range quality.Statuses() {
		if n := counts[st]; n > 0 {
			out = append(out, StatusCount{Status: st, Count: n})
		}
	}
	return out
}

// StatusCount pairs a status with its row count.
type StatusCount struct {
	Status quality.Status
	Count  int
}

// Incomplete returns the rows flagged incomplete, in report order.
func (r *Report) Incomplete() []Row {
	var out []Row
	for _, row := range r.Rows {
		if row.Status == quality.StatusIncomplete {
			out = append(out, row)
		}
	}
	return out
}

// Top returns the n highest-scoring rows (the report is already
// sorted).
func (r *Report) Top(n int) []Row {
	if n > len(r.Rows) {
		n = len(r.Rows)
	}
	return r.Rows[:n]
}
