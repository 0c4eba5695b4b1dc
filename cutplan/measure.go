package cutplan

import (
	"math"
	"sort"

	"github.com/alexismwm/snapcuttemplate/algorithms/common"
)

// MeasureDetector infers a periodic measure grid from inter-beat intervals
// among strong beats. The track is assumed to hold one dominant tempo over
// the active region; there is no resynchronization mid-walk.
type MeasureDetector struct {
	params MeasureParams
}

// NewMeasureDetector creates a measure detector with the given parameters
func NewMeasureDetector(params MeasureParams) *MeasureDetector {
	return &MeasureDetector{params: params}
}

// DetectMeasures returns the inferred measure starts ordered by time, or an
// empty list when no reliable periodicity is found
func (md *MeasureDetector) DetectMeasures(beats []BeatMarker) []MeasureInfo {
	p := md.params

	strong := filterStrong(beats)
	if len(beats) < p.MinBeats || len(strong) < p.MinStrongBeats {
		return []MeasureInfo{}
	}

	// Sanity gate: the track must show a plausible beat pulse at all before
	// we trust any measure-level periodicity
	beatIntervals := md.plausibleBeatIntervals(beats)
	if len(beatIntervals) < 2 {
		return []MeasureInfo{}
	}

	// Consecutive strong-beat gaps in the plausible measure range
	var measureIntervals []float64
	for i := 1; i < len(strong); i++ {
		interval := strong[i].Time - strong[i-1].Time
		if interval > p.MeasureIntervalMin && interval < p.MeasureIntervalMax {
			measureIntervals = append(measureIntervals, interval)
		}
	}
	if len(measureIntervals) < 2 {
		return []MeasureInfo{}
	}

	dominant := md.dominantCluster(measureIntervals)
	if len(dominant) < 2 {
		return []MeasureInfo{}
	}

	averageMeasureDuration := common.Mean(dominant)
	bpm := 60.0 / (averageMeasureDuration / float64(p.BeatsPerMeasure))

	// Walk the strong beats against the expected grid, starting from the
	// first strong beat as the first downbeat. Beats that miss their slot
	// are skipped; the grid itself does not shift.
	measures := make([]MeasureInfo, 0, len(strong))
	expectedNext := strong[0].Time
	for _, beat := range strong {
		timeDiff := math.Abs(beat.Time - expectedNext)
		if timeDiff < averageMeasureDuration*p.MatchTolerance {
			confidence := math.Max(0.1, 1.0-timeDiff/averageMeasureDuration)
			measures = append(measures, MeasureInfo{
				StartTime:  beat.Time,
				BPM:        bpm,
				Confidence: confidence,
			})
			expectedNext += averageMeasureDuration
		}
	}

	filtered := measures[:0]
	for _, m := range measures {
		if m.Confidence > p.MinConfidence {
			filtered = append(filtered, m)
		}
	}

	return filtered
}

// plausibleBeatIntervals collects consecutive gaps among all audible beats
// that fall in the plausible inter-beat range
func (md *MeasureDetector) plausibleBeatIntervals(beats []BeatMarker) []float64 {
	p := md.params

	var audible []BeatMarker
	for _, b := range beats {
		if b.Intensity > p.IntensityFloor {
			audible = append(audible, b)
		}
	}

	var intervals []float64
	for i := 1; i < len(audible); i++ {
		interval := audible[i].Time - audible[i-1].Time
		if interval > p.BeatIntervalMin && interval < p.BeatIntervalMax {
			intervals = append(intervals, interval)
		}
	}
	return intervals
}

// dominantCluster sorts the intervals and groups adjacent values whose gap
// stays under ClusterGap, returning the largest group
func (md *MeasureDetector) dominantCluster(intervals []float64) []float64 {
	sorted := make([]float64, len(intervals))
	copy(sorted, intervals)
	sort.Float64s(sorted)

	var best, current []float64
	current = append(current, sorted[0])
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] < md.params.ClusterGap {
			current = append(current, sorted[i])
		} else {
			if len(current) > len(best) {
				best = current
			}
			current = []float64{sorted[i]}
		}
	}
	if len(current) > len(best) {
		best = current
	}

	return best
}

// filterStrong returns the strong beats in input order
func filterStrong(beats []BeatMarker) []BeatMarker {
	var strong []BeatMarker
	for _, b := range beats {
		if b.Type == BeatStrong {
			strong = append(strong, b)
		}
	}
	return strong
}
