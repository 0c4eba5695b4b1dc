package cutplan

import (
	"github.com/alexismwm/snapcuttemplate/algorithms/temporal"
)

// ClassifyBeats runs the reference beat classifier over a mono PCM signal
// and returns markers ready for GenerateCuts. Most callers bring their own
// classifier; this one exists so the engine is usable end to end from
// decoded samples.
func ClassifyBeats(signal []float64, sampleRate int) ([]BeatMarker, error) {
	classifier := temporal.NewBeatClassification(temporal.DefaultClassificationParams())

	onsets, err := classifier.Classify(signal, sampleRate)
	if err != nil {
		return nil, err
	}

	markers := make([]BeatMarker, len(onsets))
	for i, onset := range onsets {
		markers[i] = BeatMarker{
			Time:      onset.Time,
			Intensity: onset.Intensity,
			Type:      beatTypeFor(onset.Class),
		}
	}

	return markers, nil
}

func beatTypeFor(class temporal.OnsetClass) BeatType {
	switch class {
	case temporal.OnsetStrong:
		return BeatStrong
	case temporal.OnsetMedium:
		return BeatMedium
	default:
		return BeatWeak
	}
}
