package cutplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCandidatesDropsLeadAndOutrank(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cb := NewCandidateBuilder(cfg)

	beats := []BeatMarker{
		{Time: 2.0, Intensity: 0.9, Type: BeatStrong},
		{Time: 10.0, Intensity: 0.5, Type: BeatStrong},
	}
	drops := []DropMarker{
		{BeatMarker: beats[1], SilenceDuration: 8.0},
	}

	candidates := cb.Build(beats, nil, drops, 0, 20)
	require.NotEmpty(t, candidates)

	// Drops sort first at priority 100 with the 50ms lead
	assert.Equal(t, ReasonDrop, candidates[0].Reason)
	assert.InDelta(t, 100.0, candidates[0].Priority, 0.001)
	assert.InDelta(t, 9.95, candidates[0].Time, 0.001)
}

func TestBuildCandidatesMeasureStartSnapsToBeat(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cb := NewCandidateBuilder(cfg)

	beats := []BeatMarker{
		{Time: 4.05, Intensity: 0.8, Type: BeatStrong}, // 0.05 from the downbeat
	}
	measures := []MeasureInfo{
		{StartTime: 4.0, BPM: 120, Confidence: 0.9},
	}

	candidates := cb.Build(beats, measures, nil, 0, 20)
	require.NotEmpty(t, candidates)

	var found *Candidate
	for i := range candidates {
		if candidates[i].Reason == ReasonMeasureStart {
			found = &candidates[i]
		}
	}
	require.NotNil(t, found)

	// 80 + 0.9*20, anchored on the beat with the 30ms lead
	assert.InDelta(t, 98.0, found.Priority, 0.001)
	assert.InDelta(t, 4.05-0.03, found.Time, 0.001)
}

func TestBuildCandidatesStrongBeatBand(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cb := NewCandidateBuilder(cfg)

	beats := []BeatMarker{
		{Time: 5.0, Intensity: 0.5, Type: BeatStrong},
		{Time: 8.0, Intensity: 1.0, Type: BeatStrong},
		{Time: 9.0, Intensity: 0.4, Type: BeatWeak}, // never a candidate
	}

	candidates := cb.Build(beats, nil, nil, 0, 20)
	require.Len(t, candidates, 2)

	// Sorted by priority descending: 40 + intensity*20
	assert.InDelta(t, 60.0, candidates[0].Priority, 0.001)
	assert.InDelta(t, 8.0-0.02, candidates[0].Time, 0.001)
	assert.InDelta(t, 50.0, candidates[1].Priority, 0.001)
	for _, c := range candidates {
		assert.Equal(t, ReasonStrongBeat, c.Reason)
	}
}

func TestBuildCandidatesDeduplicates(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cb := NewCandidateBuilder(cfg)

	beat := BeatMarker{Time: 10.0, Intensity: 0.5, Type: BeatStrong}
	drops := []DropMarker{{BeatMarker: beat, SilenceDuration: 2.0}}

	// The drop covers 9.95; the same strong beat would land at 9.98,
	// inside the dedup window, so no second candidate appears
	candidates := cb.Build([]BeatMarker{beat}, nil, drops, 0, 20)
	require.Len(t, candidates, 1)
	assert.Equal(t, ReasonDrop, candidates[0].Reason)
}

func TestBuildCandidatesClampsToStartGuard(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cb := NewCandidateBuilder(cfg)

	// A drop right at the region start cannot be offset before it
	beat := BeatMarker{Time: 0.02, Intensity: 0.9, Type: BeatStrong}
	drops := []DropMarker{{BeatMarker: beat, SilenceDuration: 3.0}}

	candidates := cb.Build([]BeatMarker{beat}, nil, drops, 0, 20)
	require.Len(t, candidates, 1)
	assert.InDelta(t, 0.05, candidates[0].Time, 0.001)
}

func TestBuildCandidatesMeasureMidpoint(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cb := NewCandidateBuilder(cfg)

	measures := []MeasureInfo{
		{StartTime: 0.0, BPM: 120, Confidence: 0.9},
		{StartTime: 2.0, BPM: 120, Confidence: 0.9},
	}
	beats := []BeatMarker{
		{Time: 0.0, Intensity: 0.9, Type: BeatStrong},
		{Time: 1.0, Intensity: 0.7, Type: BeatStrong}, // exact midpoint of measure 1
		{Time: 2.0, Intensity: 0.9, Type: BeatStrong},
	}

	candidates := cb.Build(beats, measures, nil, 0, 20)

	var mid *Candidate
	for i := range candidates {
		if candidates[i].Reason == ReasonMeasureMid {
			mid = &candidates[i]
		}
	}
	require.NotNil(t, mid)

	// 60 + 0.7*20 with the 30ms lead
	assert.InDelta(t, 74.0, mid.Priority, 0.001)
	assert.InDelta(t, 1.0-0.03, mid.Time, 0.001)
}
