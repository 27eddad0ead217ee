// Package quality implements the classification and scoring core: an
// ordered rule chain that assigns each record a status and diagnostic
// notes, and a three-factor weighted scorer that turns the raw
// measurements into a 0-100 quality score.
package quality

// Thresholds holds every cutoff used by the classifier and the scorer.
// Values are process-wide constants for a run; the zero value is not
// useful, start from DefaultThresholds.
type Thresholds struct {
	// Spectral energy above 18kHz, in dB. Below SpectrumFake the track
	// is almost certainly upsampled from a lower-bandwidth source.
	SpectrumFake      float64 `yaml:"spectrumFake" mapstructure:"spectrumFake"`
	SpectrumProcessed float64 `yaml:"spectrumProcessed" mapstructure:"spectrumProcessed"`
	SpectrumGood      float64 `yaml:"spectrumGood" mapstructure:"spectrumGood"`

	// Loudness range bands, in LU.
	LRAPoorMax       float64 `yaml:"lraPoorMax" mapstructure:"lraPoorMax"`
	LRALowMax        float64 `yaml:"lraLowMax" mapstructure:"lraLowMax"`
	LRAExcellentMin  float64 `yaml:"lraExcellentMin" mapstructure:"lraExcellentMin"`
	LRAExcellentMax  float64 `yaml:"lraExcellentMax" mapstructure:"lraExcellentMax"`
	LRAAcceptableMax float64 `yaml:"lraAcceptableMax" mapstructure:"lraAcceptableMax"`
	LRATooHigh       float64 `yaml:"lraTooHigh" mapstructure:"lraTooHigh"`

	// Peak level cutoffs. The dB values apply to peakAmplitudeDb, the
	// linear value to peakAmplitude (0.0-1.0 scale).
	PeakClippingDb     float64 `yaml:"peakClippingDb" mapstructure:"peakClippingDb"`
	PeakClippingLinear float64 `yaml:"peakClippingLinear" mapstructure:"peakClippingLinear"`
	PeakGoodDb         float64 `yaml:"peakGoodDb" mapstructure:"peakGoodDb"`
	PeakMediumDb       float64 `yaml:"peakMediumDb" mapstructure:"peakMediumDb"`
}

// DefaultThresholds returns the standard threshold profile.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SpectrumFake:      -85.0,
		SpectrumProcessed: -80.0,
		SpectrumGood:      -70.0,

		LRAPoorMax:       3.0,
		LRALowMax:        6.0,
		LRAExcellentMin:  8.0,
		LRAExcellentMax:  12.0,
		LRAAcceptableMax: 15.0,
		LRATooHigh:       20.0,

		PeakClippingDb:     -0.1,
		PeakClippingLinear: 0.999,
		PeakGoodDb:         -6.0,
		PeakMediumDb:       -3.0,
	}
}
