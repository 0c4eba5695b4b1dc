package temporal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clickTrack synthesizes silence with short sine bursts at the given times
func clickTrack(sampleRate int, duration float64, clicks map[float64]float64) []float64 {
	signal := make([]float64, int(duration*float64(sampleRate)))
	burstLen := sampleRate / 10 // 100ms bursts

	for start, amplitude := range clicks {
		offset := int(start * float64(sampleRate))
		for i := 0; i < burstLen && offset+i < len(signal); i++ {
			signal[offset+i] = amplitude * math.Sin(2*math.Pi*500*float64(i)/float64(sampleRate))
		}
	}

	return signal
}

func TestClassifyFindsClicks(t *testing.T) {
	bc := NewBeatClassification(DefaultClassificationParams())

	sampleRate := 8000
	clickTimes := []float64{0.5, 1.5, 2.5, 3.5}
	signal := clickTrack(sampleRate, 4.0, map[float64]float64{
		0.5: 1.0,
		1.5: 0.6,
		2.5: 1.0,
		3.5: 0.8,
	})

	onsets, err := bc.Classify(signal, sampleRate)
	require.NoError(t, err)
	require.Len(t, onsets, 4)

	for i, onset := range onsets {
		assert.InDelta(t, clickTimes[i], onset.Time, 0.15, "onset should sit near its click")
		assert.GreaterOrEqual(t, onset.Intensity, 0.0)
		assert.LessOrEqual(t, onset.Intensity, 1.0)
	}

	// Ordered ascending by time
	for i := 1; i < len(onsets); i++ {
		assert.Greater(t, onsets[i].Time, onsets[i-1].Time)
	}

	// The percentile bands always yield at least one strong onset
	hasStrong := false
	for _, onset := range onsets {
		if onset.Class == OnsetStrong {
			hasStrong = true
		}
	}
	assert.True(t, hasStrong)
}

func TestClassifyRejectsBadSampleRate(t *testing.T) {
	bc := NewBeatClassification(DefaultClassificationParams())

	_, err := bc.Classify(make([]float64, 1000), 0)
	assert.Error(t, err)
}

func TestClassifyEmptySignal(t *testing.T) {
	bc := NewBeatClassification(DefaultClassificationParams())

	onsets, err := bc.Classify(nil, 44100)
	require.NoError(t, err)
	assert.Empty(t, onsets)
}

func TestClassifySilence(t *testing.T) {
	bc := NewBeatClassification(DefaultClassificationParams())

	onsets, err := bc.Classify(make([]float64, 44100), 44100)
	require.NoError(t, err)
	assert.Empty(t, onsets)
}
