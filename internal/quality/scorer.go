package quality

import (
	"math"

	"github.com/Freedom18946/audio-analyzer/internal/metrics"
)

// Sub-score weights and scoring constants.
const (
	MaxIntegrity = 40
	MaxDynamics  = 30
	MaxSpectrum  = 30

	// PenaltyPerField is deducted for every missing critical field.
	PenaltyPerField = 10

	// Score caps applied after clamping, keyed on the final status.
	capSuspiciousFake = 20
	capIncomplete     = 40

	// Peak bands for the linear (0.0-1.0) peak column. The dB bands
	// live in Thresholds; the clipping cutoff doubles as the band edge.
	peakGoodLinear   = 0.5
	peakMediumLinear = 0.8

	// rmsDbAbove16k mapping range for the spectrum sub-score.
	spectrumFloorDb = -90.0
	spectrumCeilDb  = -55.0
)

// Breakdown is the scorer's full output for one record. Sub-scores are
// kept as floats; only the total is rounded.
type Breakdown struct {
	Integrity float64 // 0-40: spectral authenticity plus peak headroom
	Dynamics  float64 // 0-30: loudness range
	Spectrum  float64 // 0-30: high-frequency energy
	Penalty   int     // completeness deduction, 10 per missing field
	Total     int     // clamped, rounded, status-capped final score
}

// Scorer computes the 0-100 quality score. Scoring is a pure function
// of one record, its missing count, and its final status; absent
// measurements degrade to zero contribution rather than erroring.
type Scorer struct {
	t Thresholds
}

// NewScorer builds a scorer over the given thresholds.
func NewScorer(t Thresholds) *Scorer {
	return &Scorer{t: t}
}

// mapToScore clamps value to [inMin,inMax] and rescales it linearly to
// [outMin,outMax]. A degenerate band always yields outMin. outMin may
// exceed outMax for declining bands.
func mapToScore(value, inMin, inMax, outMin, outMax float64) float64 {
	if value < inMin {
		value = inMin
	}
	if value > inMax {
		value = inMax
	}
	if inMax == inMin {
		return outMin
	}
	return outMin + (value-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Score computes the full breakdown for one record. status must be the
// record's final status from the classifier, since the fake and
// incomplete caps depend on it.
func (s *Scorer) Score(b *metrics.Batch, r *metrics.Record, missing int, status Status) Breakdown {
	bd := Breakdown{
		Integrity: s.integrity(b, r),
		Dynamics:  s.dynamics(r),
		Spectrum:  s.spectrum(b, r),
		Penalty:   missing * PenaltyPerField,
	}

	raw := bd.Integrity + bd.Dynamics + bd.Spectrum - float64(bd.Penalty)
	total := int(math.Round(raw))
	if total < 0 {
		total = 0
	}
	switch status {
	case StatusSuspiciousFake:
		if total > capSuspiciousFake {
			total = capSuspiciousFake
		}
	case StatusIncomplete:
		if total > capIncomplete {
			total = capIncomplete
		}
	}
	bd.Total = total
	return bd
}

// integrity scores spectral authenticity (up to 25) plus peak headroom
// (up to 15). An rmsDbAbove18k of exactly zero is treated as invalid.
func (s *Scorer) integrity(b *metrics.Batch, r *metrics.Record) float64 {
	var pts float64

	if p := r.RmsDbAbove18k; p != nil && *p != 0 {
		v := *p
		switch {
		case v >= s.t.SpectrumGood:
			pts += 25
		case v >= s.t.SpectrumProcessed:
			pts += mapToScore(v, s.t.SpectrumProcessed, s.t.SpectrumGood, 15, 25)
		case v >= s.t.SpectrumFake:
			pts += mapToScore(v, s.t.SpectrumFake, s.t.SpectrumProcessed, 5, 15)
		}
	}

	peak, ok := b.PeakField()
	if !ok {
		return pts
	}
	switch peak {
	case metrics.ColPeakAmplitudeDb:
		if p := r.PeakAmplitudeDb; p != nil {
			v := *p
			switch {
			case v <= s.t.PeakGoodDb:
				pts += 15
			case v <= s.t.PeakMediumDb:
				pts += mapToScore(v, s.t.PeakGoodDb, s.t.PeakMediumDb, 15, 10)
			case v <= s.t.PeakClippingDb:
				pts += mapToScore(v, s.t.PeakMediumDb, s.t.PeakClippingDb, 10, 3)
			}
		}
	case metrics.ColPeakAmplitude:
		if p := r.PeakAmplitude; p != nil {
			v := *p
			switch {
			case v <= peakGoodLinear:
				pts += 15
			case v <= peakMediumLinear:
				pts += mapToScore(v, peakGoodLinear, peakMediumLinear, 15, 10)
			case v <= s.t.PeakClippingLinear:
				pts += mapToScore(v, peakMediumLinear, s.t.PeakClippingLinear, 10, 3)
			}
		}
	}
	return pts
}

// dynamics scores the loudness range. Flat 30 inside the excellent
// band, declining toward both extremes, flat 18 beyond the acceptable
// maximum.
func (s *Scorer) dynamics(r *metrics.Record) float64 {
	p := r.LRA
	if p == nil || *p <= 0 {
		return 0
	}
	v := *p
	switch {
	case v >= s.t.LRAExcellentMin && v <= s.t.LRAExcellentMax:
		return 30
	case v >= s.t.LRALowMax && v < s.t.LRAExcellentMin:
		return mapToScore(v, s.t.LRALowMax, s.t.LRAExcellentMin, 20, 28)
	case v > s.t.LRAExcellentMax && v <= s.t.LRAAcceptableMax:
		return mapToScore(v, s.t.LRAExcellentMax, s.t.LRAAcceptableMax, 28, 22)
	case v >= s.t.LRAPoorMax && v < s.t.LRALowMax:
		return mapToScore(v, s.t.LRAPoorMax, s.t.LRALowMax, 10, 20)
	case v < s.t.LRAPoorMax:
		return mapToScore(v, 0, s.t.LRAPoorMax, 0, 10)
	default: // v > LRAAcceptableMax
		return 18
	}
}

// spectrum maps rmsDbAbove16k onto 0-30. A value absent on the record
// falls to the floor of the mapping; a column absent from the whole
// batch contributes nothing.
func (s *Scorer) spectrum(b *metrics.Batch, r *metrics.Record) float64 {
	if !b.HasColumn(metrics.ColRmsDbAbove16k) {
		return 0
	}
	v := spectrumFloorDb
	if r.RmsDbAbove16k != nil {
		v = *r.RmsDbAbove16k
	}
	return mapToScore(v, spectrumFloorDb, spectrumCeilDb, 0, MaxSpectrum)
}
