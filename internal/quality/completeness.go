package quality

import "github.com/Freedom18946/audio-analyzer/internal/metrics"

// MissingIncomplete is the missing-count at which a record is flagged
// incomplete: with two of the three critical measurements gone it is
// too thin to classify with confidence.
const MissingIncomplete = 2

// MissingCount counts how many critical measurements are absent or
// exactly zero for one record. The critical set is rmsDbAbove18k, lra,
// and the batch's peak column; when the batch carries no peak column at
// all, the peak slot counts as always missing. A column absent from the
// whole batch is missing for every record in it.
func MissingCount(b *metrics.Batch, r *metrics.Record) int {
	count := 0

	count += missingIn(b, r, metrics.ColRmsDbAbove18k)
	count += missingIn(b, r, metrics.ColLRA)

	if peak, ok := b.PeakField(); ok {
		count += missingIn(b, r, peak)
	} else {
		count++
	}

	return count
}

// Audit runs MissingCount over the whole batch, index-aligned with
// b.Records.
func Audit(b *metrics.Batch) []int {
	counts := make([]int, b.Len())
	for i := range b.Records {
		counts[i] = MissingCount(b, &b.Records[i])
	}
	return counts
}

func missingIn(b *metrics.Batch, r *metrics.Record, col string) int {
	if !b.HasColumn(col) {
		return 1
	}
	v := r.Metric(col)
	if v == nil || *v == 0.0 {
		return 1
	}
	return 0
}
