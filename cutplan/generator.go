package cutplan

import (
	"github.com/alexismwm/snapcuttemplate/logging"
)

// CutGenerator places beat-synced cuts over an active timeline region. Each
// call is a pure function of its inputs (identifier generation aside):
// stateless across calls, synchronous, safe to invoke concurrently.
type CutGenerator struct {
	config     *GeneratorConfig
	measures   *MeasureDetector
	drops      *DropDetector
	candidates *CandidateBuilder
	selector   *CutSelector
	logger     logging.Logger
}

// NewCutGenerator creates a cut generator with the given configuration. A
// nil config selects the reference tuning.
func NewCutGenerator(config *GeneratorConfig) *CutGenerator {
	if config == nil {
		config = DefaultGeneratorConfig()
	}

	logger := logging.WithFields(logging.Fields{
		"component": "cut_generator",
	})

	return &CutGenerator{
		config:     config,
		measures:   NewMeasureDetector(config.Measure),
		drops:      NewDropDetector(config.Drop),
		candidates: NewCandidateBuilder(config),
		selector:   NewCutSelector(config),
		logger:     logger,
	}
}

// GenerateCuts selects planCount-1 cut positions inside (startTime, endTime)
// that land on measure boundaries and drops, offset slightly early for
// perceived synchrony. Returns an empty list when planCount < 2, when the
// region is inverted, or when the region cannot hold the requested cuts at
// the configured spacing. A region without beats falls back to equidistant
// placement instead of failing.
func (cg *CutGenerator) GenerateCuts(startTime, endTime float64, planCount int, beatMarkers []BeatMarker) []CutMarker {
	if planCount < 2 {
		cg.logger.Warn("plan count below minimum, nothing to generate", logging.Fields{
			"plan_count": planCount,
		})
		return []CutMarker{}
	}
	if endTime <= startTime {
		cg.logger.Warn("inverted or empty active region", logging.Fields{
			"start_time": startTime,
			"end_time":   endTime,
		})
		return []CutMarker{}
	}

	cutsNeeded := planCount - 1
	activeDuration := endTime - startTime

	if activeDuration < float64(cutsNeeded)*cg.config.MinCutInterval {
		cg.logger.Warn("active region too short for requested cuts", logging.Fields{
			"active_duration":  activeDuration,
			"cuts_needed":      cutsNeeded,
			"min_cut_interval": cg.config.MinCutInterval,
		})
		return []CutMarker{}
	}

	regionBeats := filterRegion(beatMarkers, startTime, endTime)
	if len(regionBeats) == 0 {
		cg.logger.Debug("no beats in active region, using equidistant fallback", logging.Fields{
			"cuts_needed": cutsNeeded,
		})
		return equidistantCuts(startTime, endTime, cutsNeeded, cg.config)
	}

	measures := cg.measures.DetectMeasures(regionBeats)
	drops := cg.drops.DetectDrops(regionBeats)

	candidates := cg.candidates.Build(regionBeats, measures, drops, startTime, endTime)
	cuts := cg.selector.Select(candidates, regionBeats, startTime, endTime, cutsNeeded)

	cg.logger.Debug("cut generation complete", logging.Fields{
		"beats":      len(regionBeats),
		"measures":   len(measures),
		"drops":      len(drops),
		"candidates": len(candidates),
		"cuts":       len(cuts),
	})

	return OptimizeDurations(cuts, endTime, cg.config)
}

// filterRegion keeps the beats inside [startTime, endTime] in input order
func filterRegion(beats []BeatMarker, startTime, endTime float64) []BeatMarker {
	var region []BeatMarker
	for _, b := range beats {
		if b.Time >= startTime && b.Time <= endTime {
			region = append(region, b)
		}
	}
	return region
}
