package spectral

import (
	"math"
)

// SpectralFlux measures frame-to-frame spectral change over a short-time
// magnitude spectrogram. Only energy increases count, which makes the flux
// curve peak at note and percussion onsets.
type SpectralFlux struct {
	fft        *FFT
	windowSize int
	hopSize    int
	window     []float64
}

// NewSpectralFlux creates a flux analyzer with the given framing. A Hann
// window is applied to every frame.
func NewSpectralFlux(windowSize, hopSize int) *SpectralFlux {
	return &SpectralFlux{
		fft:        NewFFT(),
		windowSize: windowSize,
		hopSize:    hopSize,
		window:     hannWindow(windowSize),
	}
}

// OnsetStrength computes the half-wave-rectified spectral flux per frame.
// The result has one value per frame transition, frame i covering samples
// [i*hop, i*hop+window).
func (sf *SpectralFlux) OnsetStrength(signal []float64) []float64 {
	spectrogram := sf.magnitudeFrames(signal)
	if len(spectrogram) < 2 {
		return []float64{}
	}

	flux := make([]float64, len(spectrogram)-1)
	for t := 1; t < len(spectrogram); t++ {
		sum := 0.0
		for f := 0; f < len(spectrogram[t]); f++ {
			diff := spectrogram[t][f] - spectrogram[t-1][f]
			if diff > 0 { // energy increases only
				sum += diff * diff
			}
		}
		flux[t-1] = math.Sqrt(sum)
	}

	return flux
}

// HopSize returns the analysis hop in samples
func (sf *SpectralFlux) HopSize() int {
	return sf.hopSize
}

// magnitudeFrames slices the signal into windowed frames and computes the
// magnitude spectrum of each
func (sf *SpectralFlux) magnitudeFrames(signal []float64) [][]float64 {
	if len(signal) < sf.windowSize || sf.windowSize <= 0 || sf.hopSize <= 0 {
		return [][]float64{}
	}

	numFrames := (len(signal)-sf.windowSize)/sf.hopSize + 1
	frames := make([][]float64, numFrames)

	buffer := make([]float64, sf.windowSize)
	for i := 0; i < numFrames; i++ {
		start := i * sf.hopSize
		for j := range buffer {
			buffer[j] = signal[start+j] * sf.window[j]
		}
		frames[i] = sf.fft.Magnitude(buffer)
	}

	return frames
}

// hannWindow builds a Hann window of the given size
func hannWindow(size int) []float64 {
	window := make([]float64, size)
	if size == 1 {
		window[0] = 1.0
		return window
	}
	for i := range window {
		window[i] = 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/float64(size-1)))
	}
	return window
}
