package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFFTMagnitudeLength(t *testing.T) {
	f := NewFFT()

	mag := f.Magnitude(make([]float64, 64))
	assert.Len(t, mag, 33)
	assert.Empty(t, f.Magnitude(nil))
}

func TestFFTMagnitudePureTone(t *testing.T) {
	f := NewFFT()

	// Bin 8 of a 64-sample frame holds a sine with 8 full cycles
	signal := make([]float64, 64)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 8 * float64(i) / 64)
	}

	mag := f.Magnitude(signal)
	require.Len(t, mag, 33)

	peak := 0
	for i, m := range mag {
		if m > mag[peak] {
			peak = i
		}
	}
	assert.Equal(t, 8, peak)
}

func TestOnsetStrengthSilence(t *testing.T) {
	sf := NewSpectralFlux(64, 32)

	flux := sf.OnsetStrength(make([]float64, 1024))
	require.NotEmpty(t, flux)
	for _, v := range flux {
		assert.InDelta(t, 0.0, v, 1e-12)
	}
}

func TestOnsetStrengthPeaksAtAttack(t *testing.T) {
	sf := NewSpectralFlux(64, 32)

	// Silence, then a sustained tone: flux spikes where the tone enters
	signal := make([]float64, 2048)
	for i := 1024; i < len(signal); i++ {
		signal[i] = math.Sin(2 * math.Pi * 8 * float64(i) / 64)
	}

	flux := sf.OnsetStrength(signal)
	require.NotEmpty(t, flux)

	peak := 0
	for i, v := range flux {
		if v > flux[peak] {
			peak = i
		}
	}

	// Frame transition index near sample 1024 with hop 32
	attackFrame := 1024 / 32
	assert.InDelta(t, float64(attackFrame), float64(peak), 2.5)
}

func TestOnsetStrengthShortSignal(t *testing.T) {
	sf := NewSpectralFlux(1024, 512)
	assert.Empty(t, sf.OnsetStrength(make([]float64, 100)))
}

func TestHannWindowEndpoints(t *testing.T) {
	w := hannWindow(64)
	require.Len(t, w, 64)
	assert.InDelta(t, 0.0, w[0], 1e-9)
	assert.InDelta(t, 0.0, w[63], 1e-9)
	assert.InDelta(t, 1.0, w[32], 0.01)
}
