package engine

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/Freedom18946/audio-analyzer/internal/metrics"
	"github.com/Freedom18946/audio-analyzer/internal/quality"
)

func f64(v float64) *float64 { return &v }

func syntheticBatch(n int) *metrics.Batch {
	records := make([]metrics.Record, n)
	for i := range records {
		r := metrics.Record{FilePath: fmt.Sprintf("track-%03d.flac", i)}
		switch i % 5 {
		case 0:
			r.RmsDbAbove18k = f64(-60)
			r.LRA = f64(10)
			r.PeakAmplitudeDb = f64(-10)
			r.RmsDbAbove16k = f64(-55)
		case 1:
			r.RmsDbAbove18k = f64(-90)
			r.LRA = f64(10)
			r.PeakAmplitudeDb = f64(-10)
		case 2:
			r.RmsDbAbove18k = f64(-75)
			r.LRA = f64(2)
			r.PeakAmplitudeDb = f64(-0.05)
		case 3:
			r.LRA = f64(25)
		case 4:
			// everything missing
		}
		records[i] = r
	}
	return metrics.NewBatch(records, map[string]bool{
		metrics.ColRmsDbAbove18k:   true,
		metrics.ColRmsDbAbove16k:   true,
		metrics.ColLRA:             true,
		metrics.ColPeakAmplitudeDb: true,
	})
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	b := syntheticBatch(53)
	base, _, err := New(quality.DefaultThresholds(), 1).Run(b)
	if err != nil {
		t.Fatal(err)
	}

	for _, workers := range []int{2, 7, 64} {
		got, _, err := New(quality.DefaultThresholds(), workers).Run(b)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, base) {
			t.Errorf("results with %d workers differ from single-worker run", workers)
		}
	}
}

func TestRunResultsAreIndexAligned(t *testing.T) {
	b := syntheticBatch(10)
	results, stats, err := New(quality.DefaultThresholds(), 3).Run(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 10 {
		t.Fatalf("got %d results, want 10", len(results))
	}
	if stats.Records != 10 {
		t.Errorf("stats.Records = %d, want 10", stats.Records)
	}
	for i, res := range results {
		if res.Index != i {
			t.Errorf("results[%d].Index = %d", i, res.Index)
		}
		if res.Record.FilePath != b.Records[i].FilePath {
			t.Errorf("results[%d] carries record %q, want %q",
				i, res.Record.FilePath, b.Records[i].FilePath)
		}
	}
}

func TestRunEmptyBatch(t *testing.T) {
	b := metrics.NewBatch(nil, nil)
	results, stats, err := New(quality.DefaultThresholds(), 4).Run(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results for empty batch", len(results))
	}
	if stats.Records != 0 {
		t.Errorf("stats.Records = %d, want 0", stats.Records)
	}
}

func TestRunDoesNotMutateInput(t *testing.T) {
	b := syntheticBatch(5)
	before := make([]metrics.Record, len(b.Records))
	copy(before, b.Records)

	if _, _, err := New(quality.DefaultThresholds(), 2).Run(b); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(b.Records, before) {
		t.Error("Run mutated the input batch")
	}
}
