package quality

import (
	"fmt"

	"github.com/Freedom18946/audio-analyzer/internal/metrics"
)

// Note fragments emitted by the rule chain.
const (
	noteIncomplete    = "critical data missing, analysis may be inaccurate"
	noteSpectralFake  = "hard spectral cutoff near 18kHz, strongly suspected fake/upsampled"
	noteSoftCutoff    = "low energy near 18kHz, possible soft cutoff"
	noteClipping      = "severe digital clipping risk"
	noteClippingDb    = noteClipping + " (peak near 0 dB)"
	noteSevereFormat  = "extremely low dynamic range (LRA: %.1f LU), heavily over-compressed"
	noteLowDynFormat  = "low dynamic range (LRA: %.1f LU), possibly over-compressed"
	noteHighDynFormat = "dynamic range too high (LRA: %.1f LU), may need compression"
)

// Classifier assigns a status and diagnostic notes to each record via a
// fixed-order rule chain. Later rules read the status left by earlier
// ones, so the precedence is asymmetric and order is part of the
// contract: clipping may override a soft-cutoff suspicion but never a
// fake one, severe compression may in turn override clipping, while low
// dynamics may not.
type Classifier struct {
	t Thresholds
}

// NewClassifier builds a classifier over the given thresholds.
func NewClassifier(t Thresholds) *Classifier {
	return &Classifier{t: t}
}

// ruleState is the mutable per-record state the rule chain works on.
type ruleState struct {
	batch      *metrics.Batch
	record     *metrics.Record
	incomplete bool

	status Status
	notes  []string
}

func (s *ruleState) note(fragment string) {
	s.notes = append(s.notes, fragment)
}

// value reads a measurement with a fallback for absent values, the way
// a tabular engine fills empty cells before masking.
func value(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}

// Classify runs the rule chain for one record. missing is the record's
// critical-field missing count from MissingCount.
func (c *Classifier) Classify(b *metrics.Batch, r *metrics.Record, missing int) Verdict {
	s := &ruleState{
		batch:      b,
		record:     r,
		incomplete: missing >= MissingIncomplete,
		status:     StatusGood,
	}

	rules := []func(*ruleState){
		c.ruleIncomplete,
		c.ruleSpectralFake,
		c.ruleSpectralProcessed,
		c.ruleClipping,
		c.ruleSevereCompression,
		c.ruleLowDynamic,
		c.ruleExcessDynamic,
	}
	for _, rule := range rules {
		rule(s)
	}

	return Verdict{Status: s.status, Notes: s.notes}
}

// ruleIncomplete flags records missing two or more critical fields.
// The flag is sticky: every later rule excludes incomplete records.
func (c *Classifier) ruleIncomplete(s *ruleState) {
	if s.incomplete {
		s.status = StatusIncomplete
		s.note(noteIncomplete)
	}
}

// ruleSpectralFake marks a hard cutoff near 18kHz.
func (c *Classifier) ruleSpectralFake(s *ruleState) {
	rms := value(s.record.RmsDbAbove18k, 0)
	if rms < c.t.SpectrumFake && !s.incomplete {
		s.status = StatusSuspiciousFake
		s.note(noteSpectralFake)
	}
}

// ruleSpectralProcessed marks a soft cutoff: energy above the fake
// threshold but below the processed one.
func (c *Classifier) ruleSpectralProcessed(s *ruleState) {
	rms := value(s.record.RmsDbAbove18k, 0)
	if rms >= c.t.SpectrumFake && rms < c.t.SpectrumProcessed && !s.incomplete {
		s.status = StatusSuspectedProcessed
		s.note(noteSoftCutoff)
	}
}

// ruleClipping marks peaks at or above the clipping cutoff for the
// batch's peak column. It may overwrite good or suspected-processed,
// never suspicious-fake.
func (c *Classifier) ruleClipping(s *ruleState) {
	peak, ok := s.batch.PeakField()
	if !ok {
		return
	}

	var clipped bool
	switch peak {
	case metrics.ColPeakAmplitudeDb:
		clipped = value(s.record.PeakAmplitudeDb, -144.0) >= c.t.PeakClippingDb
	case metrics.ColPeakAmplitude:
		clipped = value(s.record.PeakAmplitude, 0.0) >= c.t.PeakClippingLinear
	}
	if !clipped || s.incomplete || s.status == StatusSuspiciousFake {
		return
	}

	s.status = StatusClipped
	if peak == metrics.ColPeakAmplitudeDb {
		s.note(noteClippingDb)
	} else {
		s.note(noteClipping)
	}
}

// ruleSevereCompression marks an extremely low loudness range. Unlike
// ruleLowDynamic it does not exclude clipped records, so severe
// compression overwrites a clipped status.
func (c *Classifier) ruleSevereCompression(s *ruleState) {
	lra := value(s.record.LRA, 0)
	if lra <= 0 || lra >= c.t.LRAPoorMax || s.incomplete {
		return
	}
	if s.status == StatusSuspiciousFake {
		return
	}
	s.status = StatusSevereCompression
	s.note(fmt.Sprintf(noteSevereFormat, lra))
}

// ruleLowDynamic marks a low-but-not-extreme loudness range. It may not
// overwrite suspicious-fake, severe-compression, or clipped.
func (c *Classifier) ruleLowDynamic(s *ruleState) {
	lra := value(s.record.LRA, 0)
	if lra < c.t.LRAPoorMax || lra >= c.t.LRALowMax || s.incomplete {
		return
	}
	switch s.status {
	case StatusSuspiciousFake, StatusSevereCompression, StatusClipped:
		return
	}
	s.status = StatusLowDynamic
	s.note(fmt.Sprintf(noteLowDynFormat, lra))
}

// ruleExcessDynamic is advisory only: an unusually wide loudness range
// appends a note but never changes the status, which by this point can
// only be good or suspected-processed.
func (c *Classifier) ruleExcessDynamic(s *ruleState) {
	lra := value(s.record.LRA, 0)
	if lra <= c.t.LRATooHigh || s.incomplete {
		return
	}
	switch s.status {
	case StatusSuspiciousFake, StatusSevereCompression, StatusClipped, StatusLowDynamic:
		return
	}
	s.note(fmt.Sprintf(noteHighDynFormat, lra))
}
