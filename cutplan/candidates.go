package cutplan

import (
	"math"
	"sort"

	"github.com/alexismwm/snapcuttemplate/algorithms/common"
)

// CandidateBuilder merges drops, measure starts, measure midpoints and
// remaining strong beats into one scored candidate list. Rules run in a
// fixed order; later rules skip times already covered by an earlier
// candidate, except drops which always make the list.
type CandidateBuilder struct {
	config *GeneratorConfig
}

// NewCandidateBuilder creates a candidate builder over the given config
func NewCandidateBuilder(config *GeneratorConfig) *CandidateBuilder {
	return &CandidateBuilder{config: config}
}

// Build returns the candidate list sorted by priority descending. Candidate
// times carry the per-category lead offset and are clamped to stay past the
// region start guard.
func (cb *CandidateBuilder) Build(beats []BeatMarker, measures []MeasureInfo, drops []DropMarker, regionStart, regionEnd float64) []Candidate {
	cfg := cb.config
	candidates := make([]Candidate, 0, len(beats))

	// Drops take absolute precedence and are never deduplicated
	for _, drop := range drops {
		candidates = append(candidates, Candidate{
			Time:      common.Clamp(drop.Time-cfg.DropLead, regionStart+cfg.StartGuard, regionEnd),
			Intensity: drop.Intensity,
			Type:      drop.Type,
			Priority:  100,
			Reason:    ReasonDrop,
		})
	}

	// Measure starts, anchored to an actual beat near the inferred downbeat
	for _, measure := range measures {
		beat := nearestBeat(beats, measure.StartTime, cfg.MeasureSnapWindow, nil)
		if beat == nil {
			continue
		}
		t := common.Clamp(beat.Time-cfg.MeasureLead, regionStart+cfg.StartGuard, regionEnd)
		if coveredBy(candidates, t, cfg.DedupWindow) {
			continue
		}
		candidates = append(candidates, Candidate{
			Time:      t,
			Intensity: beat.Intensity,
			Type:      beat.Type,
			Priority:  80 + measure.Confidence*20,
			Reason:    ReasonMeasureStart,
		})
	}

	// Measure midpoints: a strong beat near the half-measure position. The
	// average here comes from the spacing of the inferred measure starts,
	// which is the authoritative figure for midpoint search.
	if len(measures) > 0 {
		avgMeasureDuration := measureSpacing(measures, regionEnd-regionStart)
		isStrong := func(b BeatMarker) bool { return b.Type == BeatStrong }

		for _, measure := range measures {
			midTime := measure.StartTime + avgMeasureDuration/2
			beat := nearestBeat(beats, midTime, avgMeasureDuration*cfg.MidSnapFraction, isStrong)
			if beat == nil {
				continue
			}
			t := common.Clamp(beat.Time-cfg.MeasureLead, regionStart+cfg.StartGuard, regionEnd)
			if coveredBy(candidates, t, cfg.DedupWindow) {
				continue
			}
			candidates = append(candidates, Candidate{
				Time:      t,
				Intensity: beat.Intensity,
				Type:      beat.Type,
				Priority:  60 + beat.Intensity*20,
				Reason:    ReasonMeasureMid,
			})
		}
	}

	// Every remaining strong beat is still a usable cut point
	for _, beat := range beats {
		if beat.Type != BeatStrong {
			continue
		}
		t := common.Clamp(beat.Time-cfg.BeatLead, regionStart+cfg.StartGuard, regionEnd)
		if coveredBy(candidates, t, cfg.DedupWindow) {
			continue
		}
		candidates = append(candidates, Candidate{
			Time:      t,
			Intensity: beat.Intensity,
			Type:      beat.Type,
			Priority:  40 + beat.Intensity*20,
			Reason:    ReasonStrongBeat,
		})
	}

	// Stable: ties keep discovery order
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Priority > candidates[j].Priority
	})

	return candidates
}

// measureSpacing averages the gaps between consecutive measure starts. With
// a single measure the active duration stands in for the spacing.
func measureSpacing(measures []MeasureInfo, activeDuration float64) float64 {
	if len(measures) < 2 {
		return activeDuration / math.Max(1, float64(len(measures)))
	}

	gaps := make([]float64, 0, len(measures)-1)
	for i := 1; i < len(measures); i++ {
		gaps = append(gaps, measures[i].StartTime-measures[i-1].StartTime)
	}
	return common.Mean(gaps)
}

// nearestBeat finds the beat closest to target within the window, optionally
// restricted by a predicate. Equidistant beats resolve to the first in list
// order. Returns nil when nothing qualifies.
func nearestBeat(beats []BeatMarker, target, window float64, accept func(BeatMarker) bool) *BeatMarker {
	var best *BeatMarker
	bestDist := math.Inf(1)
	for i := range beats {
		if accept != nil && !accept(beats[i]) {
			continue
		}
		dist := math.Abs(beats[i].Time - target)
		if dist <= window && dist < bestDist {
			best = &beats[i]
			bestDist = dist
		}
	}
	return best
}

// coveredBy reports whether an existing candidate already sits within the
// dedup window of t. Linear scan; candidate lists stay small at realistic
// beat counts.
func coveredBy(candidates []Candidate, t, window float64) bool {
	for _, c := range candidates {
		if math.Abs(c.Time-t) < window {
			return true
		}
	}
	return false
}
