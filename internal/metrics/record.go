// Package metrics provides the input data model for the quality report:
// measurement records produced by the external extraction tool, grouped
// into a batch that tracks which measurement columns the input actually
// carried. This package is at the bottom of the dependency graph and
// should not import any other internal packages.
package metrics

// Measurement column names as they appear in the extractor's JSON output.
const (
	ColFilePath         = "filePath"
	ColFileSizeBytes    = "fileSizeBytes"
	ColLRA              = "lra"
	ColPeakAmplitudeDb  = "peakAmplitudeDb"
	ColPeakAmplitude    = "peakAmplitude"
	ColOverallRmsDb     = "overallRmsDb"
	ColRmsDbAbove16k    = "rmsDbAbove16k"
	ColRmsDbAbove18k    = "rmsDbAbove18k"
	ColRmsDbAbove20k    = "rmsDbAbove20k"
	ColProcessingTimeMs = "processingTimeMs"
)

// Record is one measurement record for a single analyzed file. All
// signal measurements are optional; a nil pointer means the extractor
// did not produce that value. Records are read-only once ingested.
type Record struct {
	FilePath         string   `json:"filePath"`
	FileSizeBytes    int64    `json:"fileSizeBytes,omitempty"`
	LRA              *float64 `json:"lra,omitempty"`
	PeakAmplitudeDb  *float64 `json:"peakAmplitudeDb,omitempty"`
	PeakAmplitude    *float64 `json:"peakAmplitude,omitempty"`
	OverallRmsDb     *float64 `json:"overallRmsDb,omitempty"`
	RmsDbAbove16k    *float64 `json:"rmsDbAbove16k,omitempty"`
	RmsDbAbove18k    *float64 `json:"rmsDbAbove18k,omitempty"`
	RmsDbAbove20k    *float64 `json:"rmsDbAbove20k,omitempty"`
	ProcessingTimeMs int64    `json:"processingTimeMs,omitempty"`
}

// Metric returns the named float measurement, or nil when the record
// does not carry it. Only float-valued columns are addressable this way.
func (r *Record) Metric(name string) *float64 {
	switch name {
	case ColLRA:
		return r.LRA
	case ColPeakAmplitudeDb:
		return r.PeakAmplitudeDb
	case ColPeakAmplitude:
		return r.PeakAmplitude
	case ColOverallRmsDb:
		return r.OverallRmsDb
	case ColRmsDbAbove16k:
		return r.RmsDbAbove16k
	case ColRmsDbAbove18k:
		return r.RmsDbAbove18k
	case ColRmsDbAbove20k:
		return r.RmsDbAbove20k
	}
	return nil
}

// Batch is a fixed, finite collection of records plus the set of columns
// present anywhere in the input. Column presence is a batch-level
// property: a column carried by any record in the input JSON exists for
// the whole batch, mirroring the tabular schema the extractor emits.
type Batch struct {
	Records []Record

	columns map[string]bool
}

// NewBatch builds a batch from records and the observed column set.
func NewBatch(records []Record, columns map[string]bool) *Batch {
	if columns == nil {
		columns = make(map[string]bool)
	}
	return &Batch{Records: records, columns: columns}
}

// Len returns the number of records in the batch.
func (b *Batch) Len() int { return len(b.Records) }

// HasColumn reports whether the input carried the named column at all.
func (b *Batch) HasColumn(name string) bool { return b.columns[name] }

// Columns returns a copy of the observed column set.
func (b *Batch) Columns() map[string]bool {
	out := make(map[string]bool, len(b.columns))
	for k, v := range b.columns {
		out[k] = v
	}
	return out
}

// PeakField returns the peak measurement column for this batch. The dB
// variant wins when both are present; ok is false when the input carried
// neither.
func (b *Batch) PeakField() (string, bool) {
	switch {
	case b.columns[ColPeakAmplitudeDb]:
		return ColPeakAmplitudeDb, true
	case b.columns[ColPeakAmplitude]:
		return ColPeakAmplitude, true
	}
	return "", false
}

// Merge combines batches in order into one, unioning their column sets.
func Merge(batches ...*Batch) *Batch {
	merged := NewBatch(nil, nil)
	for _, b := range batches {
		merged.Records = append(merged.Records, b.Records...)
		for col := range b.columns {
			merged.columns[col] = true
		}
	}
	return merged
}
