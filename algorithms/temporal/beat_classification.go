package temporal

import (
	"errors"

	"github.com/alexismwm/snapcuttemplate/algorithms/common"
	"github.com/alexismwm/snapcuttemplate/algorithms/spectral"
)

// OnsetClass is the perceived strength class of a detected onset
type OnsetClass string

const (
	OnsetWeak   OnsetClass = "weak"
	OnsetMedium OnsetClass = "medium"
	OnsetStrong OnsetClass = "strong"
)

// Onset is a detected and classified audio onset
type Onset struct {
	Time      float64    `json:"time"`      // seconds from signal start
	Intensity float64    `json:"intensity"` // normalized 0-1
	Class     OnsetClass `json:"class"`
}

// ClassificationParams configures beat classification
type ClassificationParams struct {
	WindowSize int `json:"window_size"`
	HopSize    int `json:"hop_size"`

	// MinOnsetInterval suppresses peaks closer than this to the previous one
	MinOnsetInterval float64 `json:"min_onset_interval"`

	// ThresholdScale sets the adaptive peak threshold at
	// mean + scale * stddev of the normalized flux curve
	ThresholdScale float64 `json:"threshold_scale"`

	// Percentile bands mapping onset intensity to strength class
	StrongPercentile float64 `json:"strong_percentile"`
	MediumPercentile float64 `json:"medium_percentile"`
}

// DefaultClassificationParams returns the reference classification tuning
func DefaultClassificationParams() ClassificationParams {
	return ClassificationParams{
		WindowSize:       1024,
		HopSize:          512,
		MinOnsetInterval: 0.05,
		ThresholdScale:   1.0,
		StrongPercentile: 0.75,
		MediumPercentile: 0.40,
	}
}

// BeatClassification detects onsets in a mono PCM signal and classifies
// each as weak, medium or strong. The flux curve locates the onsets; the
// RMS envelope is blended in so sheer loudness still counts toward the
// reported intensity.
type BeatClassification struct {
	params   ClassificationParams
	flux     *spectral.SpectralFlux
	envelope *Envelope
}

// NewBeatClassification creates a beat classifier with the given parameters
func NewBeatClassification(params ClassificationParams) *BeatClassification {
	return &BeatClassification{
		params:   params,
		flux:     spectral.NewSpectralFlux(params.WindowSize, params.HopSize),
		envelope: NewEnvelope(),
	}
}

// Classify returns the detected onsets ordered by time. Intensities are
// normalized to [0, 1] over the signal; class boundaries sit at the
// configured percentiles of the detected onset intensities.
func (bc *BeatClassification) Classify(signal []float64, sampleRate int) ([]Onset, error) {
	if sampleRate <= 0 {
		return nil, errors.New("sample rate must be positive")
	}
	if len(signal) == 0 {
		return []Onset{}, nil
	}

	strength := bc.flux.OnsetStrength(signal)
	if len(strength) == 0 {
		return []Onset{}, nil
	}
	strength = common.MinMaxNormalize(strength)

	rms := bc.envelope.ComputeRMS(signal, bc.params.WindowSize, bc.params.HopSize)
	rms = common.MinMaxNormalize(rms)

	threshold := common.Mean(strength) + bc.params.ThresholdScale*common.StandardDeviation(strength)
	peaks := bc.pickPeaks(strength, threshold, sampleRate)
	if len(peaks) == 0 {
		return []Onset{}, nil
	}

	// Blend flux strength with local loudness
	intensities := make([]float64, len(peaks))
	for i, frame := range peaks {
		intensity := strength[frame]
		if frame < len(rms) {
			intensity = 0.7*intensity + 0.3*rms[frame]
		}
		intensities[i] = intensity
	}

	strongCut := common.Percentile(intensities, bc.params.StrongPercentile)
	mediumCut := common.Percentile(intensities, bc.params.MediumPercentile)

	onsets := make([]Onset, len(peaks))
	for i, frame := range peaks {
		class := OnsetWeak
		if intensities[i] >= strongCut {
			class = OnsetStrong
		} else if intensities[i] >= mediumCut {
			class = OnsetMedium
		}
		onsets[i] = Onset{
			Time:      float64(frame*bc.params.HopSize) / float64(sampleRate),
			Intensity: intensities[i],
			Class:     class,
		}
	}

	return onsets, nil
}

// pickPeaks finds local maxima above the threshold, enforcing the minimum
// inter-onset interval
func (bc *BeatClassification) pickPeaks(flux []float64, threshold float64, sampleRate int) []int {
	if len(flux) < 3 {
		return []int{}
	}

	minIntervalFrames := int(bc.params.MinOnsetInterval * float64(sampleRate) / float64(bc.params.HopSize))
	if minIntervalFrames < 1 {
		minIntervalFrames = 1
	}

	var peaks []int
	lastPeak := -minIntervalFrames
	for i := 1; i < len(flux)-1; i++ {
		if flux[i] > flux[i-1] &&
			flux[i] > flux[i+1] &&
			flux[i] >= threshold &&
			i-lastPeak >= minIntervalFrames {
			peaks = append(peaks, i)
			lastPeak = i
		}
	}

	return peaks
}
