package cutplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeDurationsBoundsByGap(t *testing.T) {
	cfg := DefaultGeneratorConfig()

	cuts := []CutMarker{
		{ID: "a", Time: 2.0, Duration: 1.0},
		{ID: "b", Time: 2.6, Duration: 1.0}, // 0.6s gap to next
		{ID: "c", Time: 5.0, Duration: 1.0},
	}

	optimized := OptimizeDurations(cuts, 20, cfg)
	require.Len(t, optimized, 3)

	// 0.6s gap minus margin, floored at the minimum
	assert.InDelta(t, 0.5, optimized[0].Duration, 0.001)
	// 2.4s gap leaves the original duration untouched
	assert.InDelta(t, 1.0, optimized[1].Duration, 0.001)
	// Last cut is bounded by the region end, 15s away
	assert.InDelta(t, 1.0, optimized[2].Duration, 0.001)
}

func TestOptimizeDurationsFloor(t *testing.T) {
	cfg := DefaultGeneratorConfig()

	// Tight gap: max(0.3, 0.2-0.1) keeps the floor even past the next cut
	cuts := []CutMarker{
		{ID: "a", Time: 2.0, Duration: 1.0},
		{ID: "b", Time: 2.2, Duration: 1.0},
	}

	optimized := OptimizeDurations(cuts, 20, cfg)
	assert.InDelta(t, 0.3, optimized[0].Duration, 0.001)
}

func TestOptimizeDurationsIdempotent(t *testing.T) {
	cfg := DefaultGeneratorConfig()

	cuts := []CutMarker{
		{ID: "a", Time: 1.0, Duration: 1.0},
		{ID: "b", Time: 1.9, Duration: 1.0},
		{ID: "c", Time: 4.0, Duration: 1.0},
	}

	once := OptimizeDurations(cuts, 10, cfg)
	twice := OptimizeDurations(once, 10, cfg)
	assert.Equal(t, once, twice)
}

func TestOptimizeDurationsDoesNotMutateInput(t *testing.T) {
	cfg := DefaultGeneratorConfig()

	cuts := []CutMarker{
		{ID: "a", Time: 2.0, Duration: 1.0},
		{ID: "b", Time: 2.6, Duration: 1.0},
	}

	_ = OptimizeDurations(cuts, 20, cfg)
	assert.InDelta(t, 1.0, cuts[0].Duration, 0.001)
}

func TestEquidistantCuts(t *testing.T) {
	cfg := DefaultGeneratorConfig()

	cuts := equidistantCuts(0, 20, 4, cfg)
	require.Len(t, cuts, 4)

	expected := []float64{4, 8, 12, 16}
	for i, c := range cuts {
		assert.InDelta(t, expected[i], c.Time, 0.001)
		assert.InDelta(t, 1.0, c.Duration, 0.001) // min(1, 4*0.8)
		assert.Equal(t, cfg.Palette[i%len(cfg.Palette)], c.Color)
	}
}

func TestEquidistantCutsShortInterval(t *testing.T) {
	cfg := DefaultGeneratorConfig()

	// 1s intervals scale the span down to 0.8
	cuts := equidistantCuts(0, 5, 4, cfg)
	require.Len(t, cuts, 4)
	for _, c := range cuts {
		assert.InDelta(t, 0.8, c.Duration, 0.001)
	}
}
