package cutplan

// GeneratorConfig holds the tuning constants for cut generation. The lead
// times and priority bands are empirically fixed values carried over from
// listening tests, not derived quantities.
type GeneratorConfig struct {
	// MinCutInterval is the minimum spacing between two selected cuts
	MinCutInterval float64 `json:"min_cut_interval"`

	// PrioritizeStrongBeats is reserved; generation currently always
	// prioritizes strong beats
	PrioritizeStrongBeats bool `json:"prioritize_strong_beats"`

	// StartGuard keeps every cut at least this far after the region start
	StartGuard float64 `json:"start_guard"`

	// Per-category lead times: cuts land slightly before the physical beat
	// so the transition reads as on-beat
	DropLead    float64 `json:"drop_lead"`
	MeasureLead float64 `json:"measure_lead"`
	BeatLead    float64 `json:"beat_lead"`

	// DedupWindow collapses candidates closer than this to an earlier one
	DedupWindow float64 `json:"dedup_window"`

	// MeasureSnapWindow is how far a beat may sit from an inferred measure
	// start and still anchor a measure-start candidate
	MeasureSnapWindow float64 `json:"measure_snap_window"`

	// MidSnapFraction scales the measure duration into the search window
	// for a strong beat near a measure midpoint
	MidSnapFraction float64 `json:"mid_snap_fraction"`

	// DefaultDuration is the placeholder display span before optimization
	DefaultDuration float64 `json:"default_duration"`

	// MinDuration floors the optimized display span
	MinDuration float64 `json:"min_duration"`

	// GapMargin is the breathing room kept between a cut's span and the
	// next cut's start
	GapMargin float64 `json:"gap_margin"`

	// FallbackDurationScale sizes equidistant-fallback spans relative to
	// their interval
	FallbackDurationScale float64 `json:"fallback_duration_scale"`

	// Palette is cycled by selection order to color the returned cuts
	Palette []string `json:"palette"`

	Measure MeasureParams `json:"measure"`
	Drop    DropParams    `json:"drop"`
}

// MeasureParams configures measure-grid inference
type MeasureParams struct {
	// Minimum input to even attempt detection
	MinBeats       int `json:"min_beats"`
	MinStrongBeats int `json:"min_strong_beats"`

	// Plausible inter-beat interval range across all beats, used as a
	// sanity gate before measure inference
	BeatIntervalMin float64 `json:"beat_interval_min"`
	BeatIntervalMax float64 `json:"beat_interval_max"`
	IntensityFloor  float64 `json:"intensity_floor"`

	// Plausible measure duration range among strong beats
	MeasureIntervalMin float64 `json:"measure_interval_min"`
	MeasureIntervalMax float64 `json:"measure_interval_max"`

	// ClusterGap merges sorted intervals into one cluster while consecutive
	// values differ by less than this
	ClusterGap float64 `json:"cluster_gap"`

	// MatchTolerance accepts a strong beat as a measure start when it lands
	// within this fraction of the measure duration from the expected slot
	MatchTolerance float64 `json:"match_tolerance"`

	// MinConfidence filters the returned grid
	MinConfidence float64 `json:"min_confidence"`

	// BeatsPerMeasure converts measure duration to BPM (4/4 assumed)
	BeatsPerMeasure int `json:"beats_per_measure"`
}

// DropParams configures drop detection
type DropParams struct {
	// MinSilence is the minimum gap since the previous strong beat
	MinSilence float64 `json:"min_silence"`

	// MinIntensity is the minimum intensity of the beat ending the gap
	MinIntensity float64 `json:"min_intensity"`
}

// DefaultGeneratorConfig returns the reference tuning
func DefaultGeneratorConfig() *GeneratorConfig {
	return &GeneratorConfig{
		MinCutInterval:        0.8,
		PrioritizeStrongBeats: true,
		StartGuard:            0.05,
		DropLead:              0.05,
		MeasureLead:           0.03,
		BeatLead:              0.02,
		DedupWindow:           0.1,
		MeasureSnapWindow:     0.2,
		MidSnapFraction:       0.3,
		DefaultDuration:       1.0,
		MinDuration:           0.3,
		GapMargin:             0.1,
		FallbackDurationScale: 0.8,
		Palette: []string{
			"#FF6B6B", // red
			"#4ECDC4", // teal
			"#FFD93D", // yellow
			"#95E1D3", // mint
			"#A29BFE", // violet
			"#FF8FAB", // pink
		},
		Measure: MeasureParams{
			MinBeats:           8,
			MinStrongBeats:     3,
			BeatIntervalMin:    0.15,
			BeatIntervalMax:    2.0,
			IntensityFloor:     0.1,
			MeasureIntervalMin: 0.8,
			MeasureIntervalMax: 6.0,
			ClusterGap:         0.3,
			MatchTolerance:     0.3,
			MinConfidence:      0.4,
			BeatsPerMeasure:    4,
		},
		Drop: DropParams{
			MinSilence:   1.2,
			MinIntensity: 0.2,
		},
	}
}
