package cutplan

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/alexismwm/snapcuttemplate/algorithms/common"
)

// CutSelector greedily picks the requested number of cuts from the scored
// candidates. Drops go in first and unconditionally; everything else must
// keep MinCutInterval from every cut already placed. When candidates run
// short the selector backfills toward equidistant ideal positions, snapping
// to the nearest free beat when one exists.
type CutSelector struct {
	config *GeneratorConfig
}

// NewCutSelector creates a cut selector over the given config
func NewCutSelector(config *GeneratorConfig) *CutSelector {
	return &CutSelector{config: config}
}

// Select returns exactly cutsNeeded cuts sorted by time, or an empty list
// when the region is too short to hold them at the configured spacing.
// Palette colors follow selection order, not time order.
func (cs *CutSelector) Select(candidates []Candidate, beats []BeatMarker, startTime, endTime float64, cutsNeeded int) []CutMarker {
	cfg := cs.config
	activeDuration := endTime - startTime

	if cutsNeeded <= 0 {
		return []CutMarker{}
	}
	if activeDuration < float64(cutsNeeded)*cfg.MinCutInterval {
		return []CutMarker{}
	}

	times := make([]float64, 0, cutsNeeded)

	// Drops first, in candidate order, no spacing check. Detection already
	// guarantees drops sit further apart than any sane MinCutInterval.
	for _, c := range candidates {
		if len(times) >= cutsNeeded {
			break
		}
		if c.Reason == ReasonDrop {
			times = append(times, c.Time)
		}
	}

	// Remaining candidates by priority, under the spacing constraint
	for _, c := range candidates {
		if len(times) >= cutsNeeded {
			break
		}
		if c.Reason == ReasonDrop {
			continue
		}
		if spacedFrom(times, c.Time, cfg.MinCutInterval) {
			times = append(times, c.Time)
		}
	}

	// Backfill toward equidistant ideals: nearest free beat if any, else a
	// synthetic cut exactly at the ideal position
	usedBeats := make(map[int]bool)
	for len(times) < cutsNeeded {
		k := len(times) + 1
		idealTime := startTime + float64(k)*activeDuration/float64(cutsNeeded+1)

		idx := cs.nearestFreeBeat(beats, usedBeats, times, idealTime, startTime, endTime)
		if idx >= 0 {
			usedBeats[idx] = true
			times = append(times, common.Clamp(beats[idx].Time-cfg.BeatLead, startTime+cfg.StartGuard, endTime))
		} else {
			times = append(times, idealTime)
		}
	}

	cuts := make([]CutMarker, len(times))
	for i, t := range times {
		cuts[i] = CutMarker{
			ID:       newCutID(),
			Time:     t,
			Color:    cfg.Palette[i%len(cfg.Palette)],
			Duration: cfg.DefaultDuration,
		}
	}

	sort.Slice(cuts, func(i, j int) bool { return cuts[i].Time < cuts[j].Time })

	return cuts
}

// nearestFreeBeat finds the unused beat closest to idealTime whose offset
// cut position keeps the spacing constraint. Returns -1 when none works.
// Equidistant beats resolve to the first in list order.
func (cs *CutSelector) nearestFreeBeat(beats []BeatMarker, used map[int]bool, times []float64, idealTime, startTime, endTime float64) int {
	cfg := cs.config

	best := -1
	bestDist := math.Inf(1)
	for i, beat := range beats {
		if used[i] || beat.Time <= startTime || beat.Time > endTime {
			continue
		}
		t := common.Clamp(beat.Time-cfg.BeatLead, startTime+cfg.StartGuard, endTime)
		if !spacedFrom(times, t, cfg.MinCutInterval) {
			continue
		}
		if dist := math.Abs(beat.Time - idealTime); dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}

// spacedFrom reports whether t keeps at least minInterval from every
// already-selected time
func spacedFrom(times []float64, t, minInterval float64) bool {
	for _, existing := range times {
		if math.Abs(existing-t) < minInterval {
			return false
		}
	}
	return true
}

// newCutID returns a short identifier unique within a session
func newCutID() string {
	return uuid.New().String()[:8]
}
