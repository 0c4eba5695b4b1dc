package cutplan

import (
	"math"
)

// OptimizeDurations bounds each cut's display span by the gap to the next
// cut so spans never overlap the following cut's start. The last cut is
// bounded by the region end instead. Pure and idempotent: the input slice is
// not touched.
func OptimizeDurations(cuts []CutMarker, endTime float64, cfg *GeneratorConfig) []CutMarker {
	optimized := make([]CutMarker, len(cuts))
	copy(optimized, cuts)

	for i := range optimized {
		var gap float64
		if i < len(optimized)-1 {
			gap = optimized[i+1].Time - optimized[i].Time
		} else {
			gap = endTime - optimized[i].Time
		}

		maxDuration := math.Max(cfg.MinDuration, gap-cfg.GapMargin)
		optimized[i].Duration = math.Min(optimized[i].Duration, maxDuration)
	}

	return optimized
}

// equidistantCuts spreads count cuts evenly over the region. Used wholesale
// when the active region holds no beats at all: no scoring, no lead offset.
func equidistantCuts(startTime, endTime float64, count int, cfg *GeneratorConfig) []CutMarker {
	if count <= 0 {
		return []CutMarker{}
	}

	duration := endTime - startTime
	interval := duration / float64(count+1)

	cuts := make([]CutMarker, count)
	for i := range cuts {
		cuts[i] = CutMarker{
			ID:       newCutID(),
			Time:     startTime + interval*float64(i+1),
			Color:    cfg.Palette[i%len(cfg.Palette)],
			Duration: math.Min(cfg.DefaultDuration, interval*cfg.FallbackDurationScale),
		}
	}

	return cuts
}
